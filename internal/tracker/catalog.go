package tracker

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/validation"
)

// Catalog creates, deletes and lists a user's habits
type Catalog struct {
	store storage.Provider
	now   func() time.Time
}

// CreateHabit adds a habit for userID and returns its id. The name must be
// unique among the user's habits and periodicity must be daily or weekly.
func (c *Catalog) CreateHabit(ctx context.Context, userID int64, name, description, periodicity string) (int64, error) {
	in := validation.HabitInput{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Periodicity: periodicity,
	}
	if err := validation.ValidateHabit(in); err != nil {
		return 0, err
	}

	id, err := c.store.CreateHabit(ctx, models.Habit{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Periodicity: models.Periodicity(in.Periodicity),
		CreatedAt:   c.now(),
	})
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		logger.Debug("Rejected duplicate habit", "user_id", userID, "name", in.Name)
		return 0, &apperrors.DuplicateHabitError{UserID: userID, Name: in.Name}
	case errors.Is(err, storage.ErrNotFound):
		return 0, &apperrors.NotFoundError{Entity: "user", ID: userID}
	case err != nil:
		return 0, storeError("create habit", err)
	}

	logger.Info("Habit created", "user_id", userID, "habit_id", id, "name", in.Name, "periodicity", in.Periodicity)
	return id, nil
}

// DeleteHabit removes a habit owned by userID together with its completions
func (c *Catalog) DeleteHabit(ctx context.Context, userID, habitID int64) error {
	err := c.store.DeleteHabit(ctx, userID, habitID)
	if errors.Is(err, storage.ErrNotFound) {
		return &apperrors.NotFoundError{Entity: "habit", ID: habitID}
	}
	if err != nil {
		return storeError("delete habit", err)
	}

	logger.Info("Habit deleted", "user_id", userID, "habit_id", habitID)
	return nil
}

// ListHabits returns the user's habits in creation order
func (c *Catalog) ListHabits(ctx context.Context, userID int64) ([]models.HabitRef, error) {
	habits, err := c.store.ListHabits(ctx, userID)
	if err != nil {
		return nil, storeError("list habits", err)
	}
	return habits, nil
}

// GetHabit returns a habit owned by userID
func (c *Catalog) GetHabit(ctx context.Context, userID, habitID int64) (models.Habit, error) {
	h, err := c.store.GetHabit(ctx, userID, habitID)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Habit{}, &apperrors.NotFoundError{Entity: "habit", ID: habitID}
	}
	if err != nil {
		return models.Habit{}, storeError("get habit", err)
	}
	return h, nil
}

// FindHabit looks a habit up by its exact name among the user's habits
func (c *Catalog) FindHabit(ctx context.Context, userID int64, name string) (models.HabitRef, error) {
	habits, err := c.ListHabits(ctx, userID)
	if err != nil {
		return models.HabitRef{}, err
	}
	name = strings.TrimSpace(name)
	for _, h := range habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.HabitRef{}, &apperrors.NotFoundError{Entity: "habit", ID: name}
}
