package service_test

import (
	"testing"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/testutil"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/version"
)

func TestSystemService(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		if err := svc.CheckHealth(); err != nil {
			t.Errorf("CheckHealth() returned unexpected error: %v", err)
		}
	})

	t.Run("closed database is unhealthy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)
		db.Close()

		if err := svc.CheckHealth(); err == nil {
			t.Error("Expected an error from a closed database")
		}
	})

	t.Run("reports versions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		info, err := svc.CheckVersion()
		if err != nil {
			t.Fatalf("CheckVersion() returned unexpected error: %v", err)
		}

		if info.AppVersion != version.Version {
			t.Errorf("Expected app version %s, got %s", version.Version, info.AppVersion)
		}
		if info.DbVersion != "1" {
			t.Errorf("Expected db version 1, got %s", info.DbVersion)
		}
		if info.MigrationNeeded || info.MigrationMessage != nil {
			t.Error("Expected no pending migration")
		}
		if !info.Features["theme_persistence"] {
			t.Error("Expected theme_persistence feature")
		}
	})
}
