package tracker

import (
	"context"
	"errors"

	"github.com/julianstephens/habitual/internal/constants"
	apperrors "github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

type seedHabit struct {
	name        string
	description string
	periodicity models.Periodicity
	count       int
}

var seedHabits = []seedHabit{
	{"Drink Water", "Drink at least 8 glasses of water", models.PeriodicityDaily, 20},
	{"Morning Jog", "Go for a 30-minute jog every morning", models.PeriodicityDaily, 21},
	{"Read a Book", "Read at least 50 pages of a book", models.PeriodicityWeekly, 4},
	{"Clean House", "Deep clean the house", models.PeriodicityWeekly, 5},
	{"Plan Weekly Goals", "Plan goals every Sunday evening", models.PeriodicityWeekly, 4},
}

// SeedResult reports what Seed had to create
type SeedResult struct {
	UserID          int64
	UserCreated     bool
	HabitsCreated   int
	CountersCreated int
}

// Seed installs the demo account with five habits and their counts. Anything
// already present is reused, and an existing counter is never overwritten.
func (t *Tracker) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	user, err := t.store.GetUserByUsername(ctx, constants.SeedUsername)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		id, err := t.Accounts.CreateAccount(ctx, constants.SeedUsername, constants.SeedPassword, constants.SeedEmail)
		// lost a race with another seeder
		if errors.Is(err, apperrors.ErrDuplicate) {
			user, err = t.store.GetUserByUsername(ctx, constants.SeedUsername)
			if err != nil {
				return res, storeError("get user", err)
			}
			res.UserID = user.ID
			break
		}
		if err != nil {
			return res, err
		}
		res.UserID = id
		res.UserCreated = true
	case err != nil:
		return res, storeError("get user", err)
	default:
		res.UserID = user.ID
	}

	existing, err := t.Catalog.ListHabits(ctx, res.UserID)
	if err != nil {
		return res, err
	}
	ids := make(map[string]int64, len(existing))
	for _, h := range existing {
		ids[h.Name] = h.ID
	}

	for _, sh := range seedHabits {
		id, ok := ids[sh.name]
		if !ok {
			id, err = t.Catalog.CreateHabit(ctx, res.UserID, sh.name, sh.description, string(sh.periodicity))
			if err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
				return res, err
			}
			if err != nil {
				ref, findErr := t.Catalog.FindHabit(ctx, res.UserID, sh.name)
				if findErr != nil {
					return res, findErr
				}
				id = ref.ID
			} else {
				res.HabitsCreated++
			}
		}

		created, err := t.store.SeedCompletion(ctx, res.UserID, id, sh.count, t.now())
		if err != nil {
			return res, storeError("seed completion", err)
		}
		if created {
			res.CountersCreated++
		}
	}

	logger.Info("Seed data applied", "user_id", res.UserID, "user_created", res.UserCreated,
		"habits_created", res.HabitsCreated, "counters_created", res.CountersCreated)
	return res, nil
}
