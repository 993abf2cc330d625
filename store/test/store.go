// Package test provides a throwaway sqlite-backed store for tests.
package test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hublie/hublie/internal/profile"
	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/store"
	"github.com/hublie/hublie/store/db"
)

// NewTestingStore creates a migrated store backed by a fresh sqlite file.
func NewTestingStore(ctx context.Context, t *testing.T) *store.Store {
	dataDir := t.TempDir()
	p := &profile.Profile{
		Mode:   "dev",
		Data:   dataDir,
		DSN:    filepath.Join(dataDir, "hublie_test.db"),
		Driver: getDriverFromEnv(),
	}
	if p.Driver == "postgres" {
		p.DSN = os.Getenv("POSTGRES_TEST_DSN")
		if p.DSN == "" {
			t.Skip("POSTGRES_TEST_DSN is not set")
		}
	}

	driver, err := db.NewDBDriver(p)
	if err != nil {
		t.Fatalf("failed to create db driver: %v", err)
	}
	ts := store.New(driver, p)
	if err := ts.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	t.Cleanup(func() {
		_ = ts.Close()
	})
	return ts
}

func getDriverFromEnv() string {
	driver := os.Getenv("DRIVER")
	if driver == "" {
		driver = "sqlite"
	}
	return driver
}

// CreateTestingHousehold inserts a household with a single parent member and
// returns both.
func CreateTestingHousehold(ctx context.Context, t *testing.T, ts *store.Store) (*store.Household, *store.Member) {
	household, err := ts.CreateHousehold(ctx, &store.Household{
		UID:  util.GenUID(),
		Name: "The Testers",
	})
	if err != nil {
		t.Fatalf("failed to create household: %v", err)
	}
	member, err := ts.CreateMember(ctx, &store.Member{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Name:        "Alex",
		Role:        store.RoleParent,
	})
	if err != nil {
		t.Fatalf("failed to create member: %v", err)
	}
	return household, member
}
