package sqlite

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
// else, so nothing is inserted and RETURNING comes back empty. The WHERE
// clause also keeps SQLite from reading ON CONFLICT as a join constraint.
const upsertCompletionSQL = `
	INSERT INTO completions (user_id, habit_id, last_completed, count)
	SELECT user_id, habit_id, ?, 1 FROM habits WHERE habit_id = ? AND user_id = ?
	ON CONFLICT(user_id, habit_id) DO UPDATE SET
		count = completions.count + 1,
		last_completed = excluded.last_completed
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
		LastCompleted: at.UTC().Truncate(time.Second),
	}

	err = tx.QueryRowContext(ctx, upsertCompletionSQL, formatTime(at), habitID, userID).Scan(&c.ID, &c.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Completion{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to record completion: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO completion_events (event_id, user_id, habit_id, completed_at, count)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), userID, habitID, formatTime(at), c.Count)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to record completion event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Completion{}, err
	}
	return c, nil
}

func (s *Store) GetCompletion(ctx context.Context, userID, habitID int64) (models.Completion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT completion_id, user_id, habit_id, last_completed, count
		FROM completions WHERE user_id = ? AND habit_id = ?`, userID, habitID)

	var c models.Completion
	var lastCompleted string
	err := row.Scan(&c.ID, &c.UserID, &c.HabitID, &lastCompleted, &c.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Completion{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Completion{}, err
	}

	c.LastCompleted, err = parseTime(lastCompleted)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to parse last_completed for completion %d: %w", c.ID, err)
	}
	return c, nil
}

func (s *Store) SeedCompletion(ctx context.Context, userID, habitID int64, count int, at time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO completions (user_id, habit_id, last_completed, count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, habit_id) DO NOTHING`,
		userID, habitID, formatTime(at), count)
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
		WHERE e.user_id = ?
		ORDER BY e.completed_at DESC, e.count DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.CompletionEvent{}
	for rows.Next() {
		var e models.CompletionEvent
		var completedAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.HabitID, &e.HabitName, &completedAt, &e.Count); err != nil {
			return nil, err
		}
		e.CompletedAt, err = parseTime(completedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completed_at for event %s: %w", e.ID, err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
