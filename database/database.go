package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"pipelinepro-server/models"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// DB wraps the SQL connection together with the placeholder dialect of
// the driver it was opened with.
type DB struct {
	*sql.DB
	driver string
}

// Open connects to the record store backend named by databaseURL.
// postgres:// and postgresql:// URLs use lib/pq; any other value is
// treated as a SQLite path or DSN.
func Open(databaseURL string) (*DB, error) {
	driver := "sqlite"
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		driver = "postgres"
	}

	db, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == "sqlite" {
		// modernc sqlite allows one writer at a time
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: driver}, nil
}

// InitializeTables creates all record tables if they don't exist.
func (db *DB) InitializeTables() error {
	tables := []interface {
		TableName() string
		CreateTableSQL() string
	}{
		models.Contact{},
		models.Company{},
		models.Deal{},
		models.Activity{},
	}

	for _, t := range tables {
		if _, err := db.Exec(t.CreateTableSQL()); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.TableName(), err)
		}
	}
	return nil
}

// Rebind rewrites ?-style placeholders into the dialect the connection
// speaks ($1, $2, ... for postgres).
func (db *DB) Rebind(query string) string {
	if db.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
