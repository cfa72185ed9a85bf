package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

// The SELECT yields no row when the habit is missing or owned by someone
// else, so nothing is inserted and RETURNING comes back empty.
const upsertCompletionSQL = `
	INSERT INTO completions (user_id, habit_id, last_completed, count)
	SELECT user_id, habit_id, $1, 1 FROM habits WHERE habit_id = $2 AND user_id = $3
	ON CONFLICT (user_id, habit_id) DO UPDATE SET
		count = completions.count + 1,
		last_completed = EXCLUDED.last_completed
	RETURNING completion_id, count`

func (s *Store) RecordCompletion(ctx context.Context, userID, habitID int64, at time.Time) (models.Completion, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c := models.Completion{
		UserID:        userID,
		HabitID:       habitID,
		LastCompleted: at.UTC(),
	}

	err = tx.QueryRowContext(ctx, upsertCompletionSQL, at.UTC(), habitID, userID).Scan(&c.ID, &c.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Completion{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to record completion: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO completion_events (event_id, user_id, habit_id, completed_at, count)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), userID, habitID, at.UTC(), c.Count)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to record completion event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Completion{}, err
	}
	return c, nil
}

func (s *Store) GetCompletion(ctx context.Context, userID, habitID int64) (models.Completion, error) {
	var c models.Completion
	err := s.db.QueryRowContext(ctx, `
		SELECT completion_id, user_id, habit_id, last_completed, count
		FROM completions WHERE user_id = $1 AND habit_id = $2`, userID, habitID,
	).Scan(&c.ID, &c.UserID, &c.HabitID, &c.LastCompleted, &c.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Completion{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Completion{}, err
	}
	c.LastCompleted = c.LastCompleted.UTC()
	return c, nil
}

func (s *Store) SeedCompletion(ctx context.Context, userID, habitID int64, count int, at time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO completions (user_id, habit_id, last_completed, count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, habit_id) DO NOTHING`,
		userID, habitID, at.UTC(), count)
	if err != nil {
		return false, fmt.Errorf("failed to seed completion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *Store) ListCompletionEvents(ctx context.Context, userID int64, limit int) ([]models.CompletionEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.event_id, e.user_id, e.habit_id, h.name, e.completed_at, e.count
		FROM completion_events e
		JOIN habits h ON h.habit_id = e.habit_id
		WHERE e.user_id = $1
		ORDER BY e.completed_at DESC, e.count DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.CompletionEvent{}
	for rows.Next() {
		var e models.CompletionEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.HabitID, &e.HabitName, &e.CompletedAt, &e.Count); err != nil {
			return nil, err
		}
		e.CompletedAt = e.CompletedAt.UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}
