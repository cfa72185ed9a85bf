package system

import (
	"testing"
)

func TestMigrateCmd_UpToDate(t *testing.T) {
	ctx, store := setupTestDoctorDB(t)

	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	runner, err := store.MigrationRunner()
	if err != nil {
		t.Fatalf("MigrationRunner failed: %v", err)
	}
	pending, err := runner.PendingMigrations()
	if err != nil {
		t.Fatalf("PendingMigrations failed: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("expected no pending migrations, got %d", len(pending))
	}
}

func TestSeedCmd(t *testing.T) {
	ctx, _ := setupTestDoctorDB(t)

	if err := (&SeedCmd{}).Run(ctx); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	// second run finds everything in place
	if err := (&SeedCmd{}).Run(ctx); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
}
