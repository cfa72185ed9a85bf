package auth

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/julianstephens/habitual/internal/errors"
)

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// HashPassword returns the bcrypt hash stored in place of the password
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword compares password against a stored hash in constant time.
// A mismatch or a malformed hash returns errors.ErrInvalidCredentials.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return apperrors.ErrInvalidCredentials
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidCredentials, err)
	}
}

// RejectUnknown spends the same time as CheckPassword for a username that
// does not exist, then fails.
func RejectUnknown(password string) error {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("habitual-unknown-user"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	return apperrors.ErrInvalidCredentials
}
