package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/habitual/internal/constants"
)

// Source is the --config value that selects the keyring-stored connection string
const Source = "keyring"

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetConnectionString retrieves the database connection string from the OS keyring.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// SetConnectionString stores a PostgreSQL connection string in the OS keyring.
// Unlike --config, the stored string may carry a password.
func SetConnectionString(connStr string) error {
	connStr = strings.TrimSpace(connStr)
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if !IsConnString(connStr) {
		return errors.New("only PostgreSQL connection strings (URL or host=... DSN) can be stored")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteConnectionString removes the database connection string from the OS keyring.
func DeleteConnectionString() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// ResolveConnectionString returns HABITUAL_DB_CONNECTION when set and the
// keyring entry otherwise.
func ResolveConnectionString() (string, error) {
	if env := strings.TrimSpace(os.Getenv(constants.EnvDBConnection)); env != "" {
		return env, nil
	}
	return GetConnectionString()
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// IsConnString reports whether connStr looks like a PostgreSQL URL or key=value DSN
func IsConnString(connStr string) bool {
	return strings.HasPrefix(connStr, "postgres://") ||
		strings.HasPrefix(connStr, "postgresql://") ||
		strings.Contains(connStr, "host=")
}

// Redact hides the password of a connection string for display
func Redact(connStr string) string {
	if !strings.Contains(connStr, "://") {
		fields := strings.Fields(connStr)
		for i, f := range fields {
			if strings.HasPrefix(f, "password=") {
				fields[i] = "password=****"
			}
		}
		return strings.Join(fields, " ")
	}

	schemeEnd := strings.Index(connStr, "://")
	at := strings.LastIndex(connStr, "@")
	if schemeEnd < 0 || at < schemeEnd {
		return connStr
	}
	userinfo := connStr[schemeEnd+3 : at]
	if colon := strings.Index(userinfo, ":"); colon >= 0 {
		userinfo = userinfo[:colon] + ":****"
	}
	return connStr[:schemeEnd+3] + userinfo + connStr[at:]
}
