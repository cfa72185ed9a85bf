package system

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
	"github.com/julianstephens/habitual/internal/tracker"
)

func setupTestDoctorDB(t *testing.T) (*cli.Context, *sqlite.Store) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "habitual.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return &cli.Context{Store: store, Tracker: tracker.New(store)}, store
}

// seedCompletion creates a user with one habit completed twice
func seedCompletion(t *testing.T, ctx *cli.Context) (userID, habitID int64) {
	t.Helper()
	bg := context.Background()

	userID, err := ctx.Tracker.Accounts.CreateAccount(bg, "alice", "secret", "")
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	habitID, err = ctx.Tracker.Catalog.CreateHabit(bg, userID, "Stretch", "", "daily")
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := ctx.Tracker.Ledger.RecordCompletion(bg, userID, habitID); err != nil {
			t.Fatalf("RecordCompletion failed: %v", err)
		}
	}
	return userID, habitID
}

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, _ := setupTestDoctorDB(t)
	seedCompletion(t, ctx)

	// Missing backups is a warning, not a failure
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command failed on healthy database: %v", err)
	}
}

func TestDoctorCmd_SeededCounters(t *testing.T) {
	ctx, _ := setupTestDoctorDB(t)
	if _, err := ctx.Tracker.Seed(context.Background()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("counters without events should pass: %v", err)
	}
}

func TestDoctorCmd_BrokenSchema(t *testing.T) {
	ctx, store := setupTestDoctorDB(t)

	db := store.GetDB()
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		t.Fatalf("failed to clear schema_version: %v", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (999)"); err != nil {
		t.Fatalf("failed to set schema version: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor should fail when the schema version is newer than supported")
	}
}

func TestDoctorCmd_CounterBelowEvents(t *testing.T) {
	ctx, store := setupTestDoctorDB(t)
	userID, habitID := seedCompletion(t, ctx)

	_, err := store.GetDB().Exec("UPDATE completions SET count = 1 WHERE user_id = ? AND habit_id = ?", userID, habitID)
	if err != nil {
		t.Fatalf("failed to lower count: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor should fail when a counter is lower than its events")
	}
}

func TestDoctorCmd_EventWithoutCounter(t *testing.T) {
	ctx, store := setupTestDoctorDB(t)
	userID, habitID := seedCompletion(t, ctx)

	if _, err := store.GetDB().Exec("DELETE FROM completions WHERE user_id = ? AND habit_id = ?", userID, habitID); err != nil {
		t.Fatalf("failed to delete counter: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor should fail when events have no counter")
	}
}
