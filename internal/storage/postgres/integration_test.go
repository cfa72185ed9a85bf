package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

var _ storage.Provider = (*Store)(nil)

// TestStore_Integration tests PostgreSQL store with a real database
// Set POSTGRES_TEST_URL environment variable to run this test
// Example: POSTGRES_TEST_URL="postgres://habitual_user@localhost:5432/habitual_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	ctx := context.Background()
	store := New(connStr)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	suffix := time.Now().Format("150405.000000")
	userID, err := store.CreateUser(ctx, models.User{Username: "pg-user-" + suffix, PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	defer store.DeleteUser(ctx, userID)

	t.Run("Habits", func(t *testing.T) {
		id, err := store.CreateHabit(ctx, models.Habit{UserID: userID, Name: "Swim", Periodicity: models.PeriodicityDaily})
		if err != nil {
			t.Fatalf("Failed to create habit: %v", err)
		}

		_, err = store.CreateHabit(ctx, models.Habit{UserID: userID, Name: "Swim", Periodicity: models.PeriodicityDaily})
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("Expected ErrDuplicate, got %v", err)
		}

		h, err := store.GetHabit(ctx, userID, id)
		if err != nil {
			t.Fatalf("Failed to get habit: %v", err)
		}
		if h.Name != "Swim" || h.Periodicity != models.PeriodicityDaily {
			t.Errorf("Unexpected habit: %+v", h)
		}
	})

	t.Run("ConcurrentCompletions", func(t *testing.T) {
		id, err := store.CreateHabit(ctx, models.Habit{UserID: userID, Name: "Read", Periodicity: models.PeriodicityWeekly})
		if err != nil {
			t.Fatalf("Failed to create habit: %v", err)
		}

		const workers = 8
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := store.RecordCompletion(ctx, userID, id, time.Now()); err != nil {
					t.Errorf("RecordCompletion failed: %v", err)
				}
			}()
		}
		wg.Wait()

		c, err := store.GetCompletion(ctx, userID, id)
		if err != nil {
			t.Fatalf("Failed to get completion: %v", err)
		}
		if c.Count != workers {
			t.Errorf("Expected count %d, got %d", workers, c.Count)
		}

		if err := store.DeleteHabit(ctx, userID, id); err != nil {
			t.Fatalf("Failed to delete habit: %v", err)
		}
		if _, err := store.GetCompletion(ctx, userID, id); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected completion to be removed, got %v", err)
		}
	})
}
