package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

var (
	// ErrNotFound is returned when a row addressed by id (and owner) does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert is rejected by a uniqueness constraint
	ErrDuplicate = errors.New("record already exists")
)

type Provider interface {
	// Lifecycle
	Init(ctx context.Context) error
	Load(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Users
	CreateUser(ctx context.Context, user models.User) (int64, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	// DeleteUser removes the user's completion events, completions and habits
	// before the user row, all in one transaction.
	DeleteUser(ctx context.Context, userID int64) error

	// Habits
	CreateHabit(ctx context.Context, habit models.Habit) (int64, error)
	GetHabit(ctx context.Context, userID, habitID int64) (models.Habit, error)
	DeleteHabit(ctx context.Context, userID, habitID int64) error
	ListHabits(ctx context.Context, userID int64) ([]models.HabitRef, error)

	// Completions
	// RecordCompletion inserts the (user, habit) counter at 1 or increments it by
	// one in a single statement and appends a completion event. It returns
	// ErrNotFound without mutating anything when the habit is not owned by userID.
	RecordCompletion(ctx context.Context, userID, habitID int64, at time.Time) (models.Completion, error)
	GetCompletion(ctx context.Context, userID, habitID int64) (models.Completion, error)
	// SeedCompletion creates a counter with the given count when the pair has
	// none. It reports whether a row was created.
	SeedCompletion(ctx context.Context, userID, habitID int64, count int, at time.Time) (bool, error)
	ListCompletionEvents(ctx context.Context, userID int64, limit int) ([]models.CompletionEvent, error)

	// Analytics
	ListAllHabits(ctx context.Context) ([]models.OwnedHabit, error)
	ListHabitsByPeriodicity(ctx context.Context, periodicity models.Periodicity) ([]models.OwnedHabit, error)
	// ListStreaks returns every counter joined to its habit and owner in
	// completion_id order.
	ListStreaks(ctx context.Context) ([]models.Streak, error)
	StreaksForHabitName(ctx context.Context, habitName string) ([]models.UserStreak, error)
	UserHabitCounts(ctx context.Context, userID int64) ([]models.HabitCount, error)
	// UserSummary counts counters whose last completion falls in [dayStart, dayStart+24h).
	UserSummary(ctx context.Context, userID int64, dayStart time.Time) (models.Summary, error)

	// Utils
	GetConfigPath() string
}

// IsPostgresConnString reports whether target names a PostgreSQL database rather than a SQLite file
func IsPostgresConnString(target string) bool {
	return strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://")
}
