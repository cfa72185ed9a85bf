package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

func (s *Store) ListAllHabits(ctx context.Context) ([]models.OwnedHabit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.username, h.name
		FROM habits h
		JOIN users u ON u.user_id = h.user_id
		ORDER BY h.habit_id`)
	if err != nil {
		return nil, err
	}
	return scanOwnedHabits(rows)
}

func (s *Store) ListHabitsByPeriodicity(ctx context.Context, periodicity models.Periodicity) ([]models.OwnedHabit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.username, h.name
		FROM habits h
		JOIN users u ON u.user_id = h.user_id
		WHERE h.periodicity = ?
		ORDER BY h.habit_id`, string(periodicity))
	if err != nil {
		return nil, err
	}
	return scanOwnedHabits(rows)
}

func scanOwnedHabits(rows *sql.Rows) ([]models.OwnedHabit, error) {
	defer rows.Close()

	habits := []models.OwnedHabit{}
	for rows.Next() {
		var h models.OwnedHabit
		if err := rows.Scan(&h.Username, &h.HabitName); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) ListStreaks(ctx context.Context) ([]models.Streak, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.username, h.name, c.count
		FROM completions c
		JOIN habits h ON h.habit_id = c.habit_id
		JOIN users u ON u.user_id = c.user_id
		ORDER BY c.completion_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	streaks := []models.Streak{}
	for rows.Next() {
		var st models.Streak
		if err := rows.Scan(&st.Username, &st.HabitName, &st.Count); err != nil {
			return nil, err
		}
		streaks = append(streaks, st)
	}
	return streaks, rows.Err()
}

func (s *Store) StreaksForHabitName(ctx context.Context, habitName string) ([]models.UserStreak, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.username, c.count
		FROM completions c
		JOIN habits h ON h.habit_id = c.habit_id
		JOIN users u ON u.user_id = c.user_id
		WHERE h.name = ?
		ORDER BY c.completion_id`, habitName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	streaks := []models.UserStreak{}
	for rows.Next() {
		var st models.UserStreak
		if err := rows.Scan(&st.Username, &st.Count); err != nil {
			return nil, err
		}
		streaks = append(streaks, st)
	}
	return streaks, rows.Err()
}

func (s *Store) UserHabitCounts(ctx context.Context, userID int64) ([]models.HabitCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT h.name, c.count
		FROM habits h
		JOIN completions c ON c.habit_id = h.habit_id AND c.user_id = h.user_id
		WHERE h.user_id = ?
		ORDER BY h.habit_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.HabitCount{}
	for rows.Next() {
		var hc models.HabitCount
		if err := rows.Scan(&hc.HabitName, &hc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, hc)
	}
	return counts, rows.Err()
}

func (s *Store) UserSummary(ctx context.Context, userID int64, dayStart time.Time) (models.Summary, error) {
	var summary models.Summary

	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM habits WHERE user_id = ?", userID).Scan(&summary.TotalHabits)
	if err != nil {
		return models.Summary{}, fmt.Errorf("failed to count habits: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(count), 0),
		       COUNT(CASE WHEN last_completed >= ? AND last_completed < ? THEN 1 END)
		FROM completions WHERE user_id = ?`,
		formatTime(dayStart), formatTime(dayStart.Add(24*time.Hour)), userID,
	).Scan(&summary.TotalCompletions, &summary.CompletedToday)
	if err != nil {
		return models.Summary{}, fmt.Errorf("failed to sum completions: %w", err)
	}

	return summary, nil
}
