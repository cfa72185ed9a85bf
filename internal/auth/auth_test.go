package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/julianstephens/habitual/internal/errors"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, CheckPassword(hash, "password123"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), apperrors.ErrInvalidCredentials)
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("same")
	require.NoError(t, err)
	second, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRejectUnknown(t *testing.T) {
	assert.ErrorIs(t, RejectUnknown("anything"), apperrors.ErrInvalidCredentials)
}
