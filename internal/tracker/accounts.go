package tracker

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/auth"
	apperrors "github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/validation"
)

// Accounts manages users and their credentials
type Accounts struct {
	store storage.Provider
	now   func() time.Time
}

// CreateAccount registers a user and returns the new user id
func (a *Accounts) CreateAccount(ctx context.Context, username, password, email string) (int64, error) {
	in := validation.AccountInput{
		Username: strings.TrimSpace(username),
		Password: password,
		Email:    strings.TrimSpace(email),
	}
	if err := validation.ValidateAccount(in); err != nil {
		return 0, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return 0, err
	}

	id, err := a.store.CreateUser(ctx, models.User{
		Username:     in.Username,
		PasswordHash: hash,
		Email:        in.Email,
		CreatedAt:    a.now(),
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return 0, &apperrors.DuplicateUsernameError{Username: in.Username}
	}
	if err != nil {
		return 0, storeError("create user", err)
	}

	logger.Info("Account created", "user_id", id, "username", in.Username)
	return id, nil
}

// Authenticate returns the user for a matching username and password.
// An unknown username and a wrong password both yield errors.ErrInvalidCredentials.
func (a *Accounts) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := a.store.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, storage.ErrNotFound) {
		return models.User{}, auth.RejectUnknown(password)
	}
	if err != nil {
		return models.User{}, storeError("get user", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		logger.Warn("Failed login", "username", user.Username)
		return models.User{}, err
	}

	logger.Debug("User authenticated", "user_id", user.ID)
	return user, nil
}

// DeleteAccount removes the user with all of their habits and completions
func (a *Accounts) DeleteAccount(ctx context.Context, userID int64) error {
	err := a.store.DeleteUser(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return &apperrors.NotFoundError{Entity: "user", ID: userID}
	}
	if err != nil {
		return storeError("delete user", err)
	}

	logger.Info("Account deleted", "user_id", userID)
	return nil
}

// Profile returns the user's details and the count of every completed habit
func (a *Accounts) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	user, err := a.store.GetUser(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Profile{}, &apperrors.NotFoundError{Entity: "user", ID: userID}
	}
	if err != nil {
		return models.Profile{}, storeError("get user", err)
	}

	counts, err := a.store.UserHabitCounts(ctx, userID)
	if err != nil {
		return models.Profile{}, storeError("habit counts", err)
	}

	return models.Profile{
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Habits:    counts,
	}, nil
}
