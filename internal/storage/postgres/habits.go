package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

func (s *Store) CreateHabit(ctx context.Context, habit models.Habit) (int64, error) {
	createdAt := habit.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO habits (user_id, name, description, periodicity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, name) DO NOTHING
		RETURNING habit_id`,
		habit.UserID, habit.Name, nullString(habit.Description), string(habit.Periodicity), createdAt.UTC(),
	).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows), pqCode(err) == codeUniqueViolation:
		return 0, storage.ErrDuplicate
	case pqCode(err) == codeForeignKeyViolation:
		return 0, storage.ErrNotFound
	case err != nil:
		return 0, fmt.Errorf("failed to insert habit: %w", err)
	}
	return id, nil
}

func (s *Store) GetHabit(ctx context.Context, userID, habitID int64) (models.Habit, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT habit_id, user_id, name, description, periodicity, created_at
		FROM habits WHERE habit_id = $1 AND user_id = $2`, habitID, userID)

	var h models.Habit
	var description sql.NullString
	var periodicity string

	err := row.Scan(&h.ID, &h.UserID, &h.Name, &description, &periodicity, &h.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Habit{}, err
	}

	h.Description = description.String
	h.Periodicity = models.Periodicity(periodicity)
	h.CreatedAt = h.CreatedAt.UTC()
	return h, nil
}

func (s *Store) DeleteHabit(ctx context.Context, userID, habitID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM habits WHERE habit_id = $1 AND user_id = $2 FOR UPDATE", habitID, userID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return err
	}

	for _, stmt := range []string{
		"DELETE FROM completion_events WHERE habit_id = $1",
		"DELETE FROM completions WHERE habit_id = $1",
		"DELETE FROM habits WHERE habit_id = $1",
	} {
		if _, err := tx.ExecContext(ctx, stmt, habitID); err != nil {
			return fmt.Errorf("failed to delete habit %d: %w", habitID, err)
		}
	}

	return tx.Commit()
}

func (s *Store) ListHabits(ctx context.Context, userID int64) ([]models.HabitRef, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT habit_id, name FROM habits WHERE user_id = $1 ORDER BY habit_id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.HabitRef{}
	for rows.Next() {
		var h models.HabitRef
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}
