package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver
)

// Open opens a connection to the SQLite database and applies pending migrations.
func Open(dbPath string) (*sql.DB, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set timezone to UTC
	if _, err := db.Exec("PRAGMA timezone = 'UTC'"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set timezone: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// dsn adds the connection pragmas to dbPath. The driver applies _pragma
// parameters to every connection it opens, so each pooled connection waits
// on locks and file databases use WAL.
func dsn(dbPath string) string {
	params := []string{"_pragma=busy_timeout(5000)"}
	if dbPath != ":memory:" {
		params = append(params, "_pragma=journal_mode(WAL)")
	}

	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + strings.Join(params, "&")
}

// HealthCheck verifies the database answers and the preference table exists.
func HealthCheck(db *sql.DB) error {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM preference").Scan(&n); err != nil {
		return fmt.Errorf("preference table unavailable: %w", err)
	}
	return nil
}
