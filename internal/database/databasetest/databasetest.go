// Package databasetest opens throwaway in-memory databases for tests.
package databasetest

import (
	"testing"
	"time"

	"movieclub-backend/internal/config"
	"movieclub-backend/internal/database"

	"gorm.io/driver/sqlite"
)

// New returns a migrated in-memory SQLite database with foreign keys
// enforced. It is closed when the test ends.
func New(t testing.TB) *database.Database {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		// A single connection keeps every query on the same in-memory database.
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		QueryTimeout:    5 * time.Second,
	}

	db, err := database.Open(sqlite.Open(database.SQLiteDSN("file::memory:")), cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
