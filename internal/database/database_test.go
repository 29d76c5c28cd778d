package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	t.Run("creates directory and applies migrations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dashboard.db")

		db, err := Open(path)
		if err != nil {
			t.Fatalf("Open() returned unexpected error: %v", err)
		}
		defer db.Close()

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM preference").Scan(&count)
		if err != nil {
			t.Fatalf("Expected preference table to exist: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected empty table, got %d rows", count)
		}

		version, err := SchemaVersion(db)
		if err != nil {
			t.Fatalf("SchemaVersion() returned unexpected error: %v", err)
		}
		if version != 1 {
			t.Errorf("Expected schema version 1, got %d", version)
		}
	})

	t.Run("migrating twice is a no-op", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dashboard.db")

		db, err := Open(path)
		if err != nil {
			t.Fatalf("Open() returned unexpected error: %v", err)
		}
		defer db.Close()

		if err := Migrate(db); err != nil {
			t.Errorf("Migrate() returned unexpected error: %v", err)
		}
		if err := HealthCheck(db); err != nil {
			t.Errorf("HealthCheck() returned unexpected error: %v", err)
		}
	})
}

func TestOpen_ConnectionPragmas(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "dashboard.db"))
	if err != nil {
		t.Fatalf("Open() returned unexpected error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Hold two connections at once so the pool must open a second one.
	first, err := db.Conn(ctx)
	if err != nil {
		t.Fatalf("Failed to get connection: %v", err)
	}
	defer first.Close()
	second, err := db.Conn(ctx)
	if err != nil {
		t.Fatalf("Failed to get connection: %v", err)
	}
	defer second.Close()

	for i, conn := range []interface {
		QueryRowContext(context.Context, string, ...any) *sql.Row
	}{first, second} {
		var timeout int
		if err := conn.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout); err != nil {
			t.Fatalf("connection %d: failed to read busy_timeout: %v", i, err)
		}
		if timeout != 5000 {
			t.Errorf("connection %d: expected busy_timeout 5000, got %d", i, timeout)
		}

		var mode string
		if err := conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err != nil {
			t.Fatalf("connection %d: failed to read journal_mode: %v", i, err)
		}
		if mode != "wal" {
			t.Errorf("connection %d: expected wal, got %s", i, mode)
		}
	}
}

func TestDSN(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{":memory:", ":memory:?_pragma=busy_timeout(5000)"},
		{"data/db.sqlite", "data/db.sqlite?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"},
		{"file:db.sqlite?cache=shared", "file:db.sqlite?cache=shared&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"},
	}

	for _, tt := range tests {
		if got := dsn(tt.path); got != tt.want {
			t.Errorf("dsn(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
