package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/habitual/internal/logger"
)

var (
	// ErrNotFound is matched by every error reporting a missing user or habit
	ErrNotFound = stderrors.New("not found")
	// ErrDuplicate is matched by username and per-user habit name collisions
	ErrDuplicate = stderrors.New("already exists")
	// ErrInvalidInput is matched by malformed identifiers, names and periodicities
	ErrInvalidInput = stderrors.New("invalid input")
	// ErrInvalidCredentials is returned when a username/password pair does not match
	ErrInvalidCredentials = stderrors.New("invalid credentials")
	// ErrStore is matched by failures of the underlying database
	ErrStore = stderrors.New("store failure")
)

// NotFoundError reports that a referenced entity does not exist (or is not owned by the caller)
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateHabitError reports that the user already has a habit with this name
type DuplicateHabitError struct {
	UserID int64
	Name   string
}

func (e *DuplicateHabitError) Error() string {
	return fmt.Sprintf("habit %q already exists", e.Name)
}

func (e *DuplicateHabitError) Is(target error) bool { return target == ErrDuplicate }

// DuplicateUsernameError reports that the username is taken
type DuplicateUsernameError struct {
	Username string
}

func (e *DuplicateUsernameError) Error() string {
	return fmt.Sprintf("the username %q is already taken", e.Username)
}

func (e *DuplicateUsernameError) Is(target error) bool { return target == ErrDuplicate }

// InvalidPeriodicityError reports a periodicity other than daily or weekly
type InvalidPeriodicityError struct {
	Value string
}

func (e *InvalidPeriodicityError) Error() string {
	return fmt.Sprintf("invalid periodicity %q (expected daily or weekly)", e.Value)
}

func (e *InvalidPeriodicityError) Is(target error) bool { return target == ErrInvalidInput }

// StoreError wraps a failure of the database during Op
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Is(target error) bool { return target == ErrStore }

func (e *StoreError) Unwrap() error { return e.Err }

// InvalidInput returns an error matching ErrInvalidInput with the given message
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
