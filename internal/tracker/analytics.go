package tracker

import (
	"context"
	"errors"
	"sort"
	"time"

	apperrors "github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

// Analytics answers read-only questions across all users
type Analytics struct {
	store storage.Provider
	now   func() time.Time
}

// ListAllHabits returns every habit with its owner. Callers must not rely on the order.
func (a *Analytics) ListAllHabits(ctx context.Context) ([]models.OwnedHabit, error) {
	habits, err := a.store.ListAllHabits(ctx)
	if err != nil {
		return nil, storeError("list habits", err)
	}
	return habits, nil
}

// ListHabitsByPeriodicity filters ListAllHabits by periodicity. A value that
// is not a known periodicity matches nothing.
func (a *Analytics) ListHabitsByPeriodicity(ctx context.Context, periodicity string) ([]models.OwnedHabit, error) {
	p, err := models.ParsePeriodicity(periodicity)
	if err != nil {
		return []models.OwnedHabit{}, nil
	}

	habits, err := a.store.ListHabitsByPeriodicity(ctx, p)
	if err != nil {
		return nil, storeError("list habits by periodicity", err)
	}
	return habits, nil
}

// GlobalMaxStreak returns the counter with the highest count across all users.
// The boolean is false when nothing has been completed yet.
func (a *Analytics) GlobalMaxStreak(ctx context.Context) (models.Streak, bool, error) {
	streaks, err := a.store.ListStreaks(ctx)
	if err != nil {
		return models.Streak{}, false, storeError("list streaks", err)
	}
	best, ok := MaxStreak(streaks)
	return best, ok, nil
}

// MaxStreak picks the highest count. On a tie the earliest entry wins.
func MaxStreak(streaks []models.Streak) (models.Streak, bool) {
	if len(streaks) == 0 {
		return models.Streak{}, false
	}
	best := streaks[0]
	for _, s := range streaks[1:] {
		if s.Count > best.Count {
			best = s
		}
	}
	return best, true
}

// StreaksForHabitName returns the count of every user owning a habit with
// exactly this name who has completed it at least once
func (a *Analytics) StreaksForHabitName(ctx context.Context, name string) ([]models.UserStreak, error) {
	streaks, err := a.store.StreaksForHabitName(ctx, name)
	if err != nil {
		return nil, storeError("streaks for habit", err)
	}
	return streaks, nil
}

// Leaderboard returns up to limit counters ordered by count, highest first.
// Equal counts keep their store order.
func (a *Analytics) Leaderboard(ctx context.Context, limit int) ([]models.Streak, error) {
	streaks, err := a.store.ListStreaks(ctx)
	if err != nil {
		return nil, storeError("list streaks", err)
	}
	sort.SliceStable(streaks, func(i, j int) bool {
		return streaks[i].Count > streaks[j].Count
	})
	if limit > 0 && len(streaks) > limit {
		streaks = streaks[:limit]
	}
	return streaks, nil
}

// Summary reports the user's habit total, completion total and the number of
// habits last completed today in local time
func (a *Analytics) Summary(ctx context.Context, userID int64) (models.Summary, error) {
	if _, err := a.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Summary{}, &apperrors.NotFoundError{Entity: "user", ID: userID}
		}
		return models.Summary{}, storeError("get user", err)
	}

	now := a.now()
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	summary, err := a.store.UserSummary(ctx, userID, dayStart)
	if err != nil {
		return models.Summary{}, storeError("user summary", err)
	}
	return summary, nil
}
