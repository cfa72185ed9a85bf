package tracker

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

// Ledger records completions against the per-(user, habit) counter
type Ledger struct {
	store storage.Provider
	now   func() time.Time
}

// RecordCompletion counts one completion of habitID by userID and returns
// the new count. The first completion creates the counter at 1. A habit that
// does not exist or belongs to another user yields *errors.NotFoundError and
// changes nothing.
func (l *Ledger) RecordCompletion(ctx context.Context, userID, habitID int64) (int, error) {
	c, err := l.store.RecordCompletion(ctx, userID, habitID, l.now())
	if errors.Is(err, storage.ErrNotFound) {
		return 0, &apperrors.NotFoundError{Entity: "habit", ID: habitID}
	}
	if err != nil {
		return 0, storeError("record completion", err)
	}

	logger.Info("Completion recorded", "user_id", userID, "habit_id", habitID, "count", c.Count)
	return c.Count, nil
}

// Count returns the current count for a habit, 0 when it was never completed
func (l *Ledger) Count(ctx context.Context, userID, habitID int64) (int, error) {
	c, err := l.store.GetCompletion(ctx, userID, habitID)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, storeError("get completion", err)
	}
	return c.Count, nil
}

// History returns the user's most recent completion events, newest first
func (l *Ledger) History(ctx context.Context, userID int64, limit int) ([]models.CompletionEvent, error) {
	if limit <= 0 {
		return nil, apperrors.InvalidInput("limit must be positive, got %d", limit)
	}
	events, err := l.store.ListCompletionEvents(ctx, userID, limit)
	if err != nil {
		return nil, storeError("list completion events", err)
	}
	return events, nil
}
