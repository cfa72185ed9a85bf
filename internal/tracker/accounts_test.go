package tracker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/julianstephens/habitual/internal/errors"
)

func TestCreateAccount(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	id, err := tr.Accounts.CreateAccount(ctx, "alice", "s3cret", "alice@example.com")
	require.NoError(t, err)
	assert.Positive(t, id)

	user, err := tr.Store().GetUser(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.PasswordHash, "password must not be stored verbatim")

	_, err = tr.Accounts.CreateAccount(ctx, "alice", "other", "")
	var dup *apperrors.DuplicateUsernameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "alice", dup.Username)

	_, err = tr.Accounts.CreateAccount(ctx, "", "pw", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = tr.Accounts.CreateAccount(ctx, "bob", "pw", "not-an-email")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	id, err := tr.Accounts.CreateAccount(ctx, "alice", "s3cret", "")
	require.NoError(t, err)

	user, err := tr.Accounts.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	_, err = tr.Accounts.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = tr.Accounts.Authenticate(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
