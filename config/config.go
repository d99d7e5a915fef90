package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL       string // empty = in-memory store
	CloudinaryURL     string
	JWTSecret         string
	AdminPasswordHash string // bcrypt; empty disables auth
	ServerPort        string
	Environment       string
	SeedData          bool
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// .env file is optional, continue without it
	}

	return &Config{
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		CloudinaryURL:     getEnv("CLOUDINARY_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		ServerPort:        getEnv("PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		SeedData:          getEnv("SEED_DATA", "") == "true",
	}, nil
}

// AuthEnabled reports whether the API requires a bearer token for
// mutating routes.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
