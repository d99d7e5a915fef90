package main

import (
	"context"
	"log"
	"net/http"

	"pipelinepro-server/config"
	"pipelinepro-server/database"
	"pipelinepro-server/handlers"
	"pipelinepro-server/services"
	"pipelinepro-server/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Pick the record store backend. An empty DATABASE_URL runs the
	// server on the in-memory store.
	var stores *store.Stores
	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL not set, using in-memory store")
		stores = store.NewMemoryStores()
	} else {
		db, err := database.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		if err := db.InitializeTables(); err != nil {
			log.Fatal("Failed to initialize tables:", err)
		}
		stores = store.NewSQLStores(db)
	}

	// Initialize Cloudinary for avatar uploads (optional)
	var cloudinary *services.CloudinaryService
	if cfg.CloudinaryURL != "" {
		cloudinary, err = services.NewCloudinary(cfg.CloudinaryURL)
		if err != nil {
			log.Printf("Failed to initialize Cloudinary, avatar uploads disabled: %v", err)
			cloudinary = nil
		}
	}

	if cfg.SeedData {
		if err := store.Seed(context.Background(), stores); err != nil {
			log.Printf("Failed to seed data: %v", err)
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// Add CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Configure this properly for production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "PipelinePro Server is running",
		})
	})

	handlers.New(cfg, stores, cloudinary).Register(router)

	// Start server
	log.Printf("Starting PipelinePro Server on 0.0.0.0:%s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.ServerPort, c.Handler(router)))
}
