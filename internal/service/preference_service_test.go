package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/testutil"
)

// TestPreferenceService_Theme tests loading and saving the theme flag.
//
// WHY: The theme must survive across visits of the same client and must
// never leak between clients.
func TestPreferenceService_Theme(t *testing.T) {
	ctx := context.Background()

	t.Run("missing theme returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPreferenceService(t, db)

		_, err := svc.LoadTheme(ctx, "client-a")

		if !errors.Is(err, apperrors.ErrPreferenceNotFound) {
			t.Errorf("Expected ErrPreferenceNotFound, got %v", err)
		}
	})

	t.Run("saved theme is loaded back", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPreferenceService(t, db)

		if err := svc.SaveTheme(ctx, "client-a", model.ThemeDark); err != nil {
			t.Fatalf("SaveTheme() returned unexpected error: %v", err)
		}

		value, err := svc.LoadTheme(ctx, "client-a")
		if err != nil {
			t.Fatalf("LoadTheme() returned unexpected error: %v", err)
		}
		if value != "dark" {
			t.Errorf("Expected 'dark', got '%s'", value)
		}

		if _, err := svc.LoadTheme(ctx, "client-b"); !errors.Is(err, apperrors.ErrPreferenceNotFound) {
			t.Errorf("Expected other client to have no theme, got %v", err)
		}
	})

	t.Run("client store is bound to one client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPreferenceService(t, db)
		store := svc.ThemeStore("client-c")

		if err := store.SaveTheme(ctx, model.ThemeDark); err != nil {
			t.Fatalf("SaveTheme() returned unexpected error: %v", err)
		}

		value, err := store.LoadTheme(ctx)
		if err != nil {
			t.Fatalf("LoadTheme() returned unexpected error: %v", err)
		}
		if value != "dark" {
			t.Errorf("Expected 'dark', got '%s'", value)
		}
	})
}

func TestPreferenceService_PruneStale(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only rows past retention", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPreferenceService(t, db)
		testutil.NewPreference().UpdatedAt(time.Now().Add(-200 * time.Hour)).Build(t, db)
		testutil.NewPreference().UpdatedAt(time.Now().Add(-10 * time.Hour)).Build(t, db)

		removed, err := svc.PruneStale(ctx, 100*time.Hour)
		if err != nil {
			t.Fatalf("PruneStale() returned unexpected error: %v", err)
		}

		if removed != 1 {
			t.Errorf("Expected 1 removed preference, got %d", removed)
		}
		if count := testutil.CountRows(t, db, "preference"); count != 1 {
			t.Errorf("Expected 1 remaining preference, got %d", count)
		}
	})

	t.Run("keeps a preference that was read recently", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPreferenceService(t, db)
		testutil.NewPreference().
			WithClientID("client-a").
			WithValue(string(model.ThemeDark)).
			UpdatedAt(time.Now().Add(-91 * 24 * time.Hour)).
			Build(t, db)

		if _, err := svc.LoadTheme(ctx, "client-a"); err != nil {
			t.Fatalf("LoadTheme() returned unexpected error: %v", err)
		}

		removed, err := svc.PruneStale(ctx, 90*24*time.Hour)
		if err != nil {
			t.Fatalf("PruneStale() returned unexpected error: %v", err)
		}
		if removed != 0 {
			t.Errorf("Expected nothing removed, got %d", removed)
		}

		value, err := svc.LoadTheme(ctx, "client-a")
		if err != nil || value != "dark" {
			t.Errorf("Expected 'dark' to survive, got '%s' (%v)", value, err)
		}
	})

	t.Run("rejects non-positive retention", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPreferenceService(t, db)

		if _, err := svc.PruneStale(ctx, 0); err == nil {
			t.Error("Expected an error for zero retention")
		}
	})
}
