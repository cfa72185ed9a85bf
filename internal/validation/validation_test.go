package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/julianstephens/habitual/internal/errors"
)

func TestValidateAccount(t *testing.T) {
	tests := []struct {
		name    string
		input   AccountInput
		wantErr string
	}{
		{name: "valid", input: AccountInput{Username: "alice", Password: "secret"}},
		{name: "valid with email", input: AccountInput{Username: "alice", Password: "secret", Email: "alice@example.com"}},
		{name: "missing username", input: AccountInput{Password: "secret"}, wantErr: "username is required"},
		{name: "missing password", input: AccountInput{Username: "alice"}, wantErr: "password is required"},
		{name: "whitespace in username", input: AccountInput{Username: "al ice", Password: "secret"}, wantErr: "must not contain whitespace"},
		{name: "bad email", input: AccountInput{Username: "alice", Password: "secret", Email: "nope"}, wantErr: "not a valid email"},
		{name: "password too long", input: AccountInput{Username: "alice", Password: strings.Repeat("x", 73)}, wantErr: "at most 72"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccount(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateHabit(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateHabit(HabitInput{Name: "Run", Periodicity: "daily"}))
		assert.NoError(t, ValidateHabit(HabitInput{Name: "Read", Description: "20 pages", Periodicity: "weekly"}))
	})

	t.Run("empty name", func(t *testing.T) {
		err := ValidateHabit(HabitInput{Periodicity: "daily"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("invalid periodicity", func(t *testing.T) {
		err := ValidateHabit(HabitInput{Name: "Run", Periodicity: "monthly"})
		var perr *apperrors.InvalidPeriodicityError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "monthly", perr.Value)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("periodicity is case sensitive", func(t *testing.T) {
		err := ValidateHabit(HabitInput{Name: "Run", Periodicity: "Daily"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
