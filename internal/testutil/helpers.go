package testutil

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/catalog"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/dashboard"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/repository"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/service"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/session"
)

// NewTestFundService creates a FundService over the built-in catalog.
func NewTestFundService(t *testing.T) *service.FundService {
	t.Helper()

	return service.NewFundService(
		repository.NewFundRepository(catalog.Funds()),
	)
}

// NewTestFundServiceWithFunds creates a FundService over the given records.
// This is useful for exercising edge cases the built-in catalog does not contain.
func NewTestFundServiceWithFunds(t *testing.T, funds ...model.FundRecord) *service.FundService {
	t.Helper()

	return service.NewFundService(
		repository.NewFundRepository(funds),
	)
}

func NewTestPreferenceService(t *testing.T, db *sql.DB) *service.PreferenceService {
	t.Helper()

	return service.NewPreferenceService(
		repository.NewPreferenceRepository(db),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// NewTestSessions creates a session codec with a random key and a registry
// whose dashboards use the built-in catalog and an in-memory theme store per
// client.
func NewTestSessions(t *testing.T) (*session.Codec, *session.Registry) {
	t.Helper()

	key, err := session.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate session key: %v", err)
	}
	codec, err := session.NewCodec("test_session", time.Hour, key)
	if err != nil {
		t.Fatalf("Failed to create session codec: %v", err)
	}

	funds := NewTestFundService(t)
	registry := session.NewRegistry(func(_ string, guard sync.Locker) (*dashboard.Controller, *dashboard.Document) {
		doc := dashboard.NewDocument(800, 1280)
		opts := dashboard.Options{ScrollBreakpoint: 1024, ScrollDelay: time.Millisecond, Guard: guard}
		return dashboard.NewController(funds, NewMemoryThemeStore(), doc, opts), doc
	})
	t.Cleanup(registry.Close)

	return codec, registry
}
