package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      stderrors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "typed error",
			err:      &DuplicateHabitError{UserID: 1, Name: "Run"},
			expected: `Error: habit "Run" already exists`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed to load %s", "database")
	if got != "Error: failed to load database" {
		t.Errorf("Formatf() = %q", got)
	}
}

func TestTaxonomy(t *testing.T) {
	driverErr := stderrors.New("database is locked")

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", &NotFoundError{Entity: "habit", ID: int64(7)}, ErrNotFound},
		{"duplicate habit", &DuplicateHabitError{UserID: 1, Name: "Run"}, ErrDuplicate},
		{"duplicate username", &DuplicateUsernameError{Username: "alice"}, ErrDuplicate},
		{"invalid periodicity", &InvalidPeriodicityError{Value: "monthly"}, ErrInvalidInput},
		{"store", &StoreError{Op: "record completion", Err: driverErr}, ErrStore},
		{"invalid input helper", InvalidInput("habit id %q is not a number", "x"), ErrInvalidInput},
		{"wrapped not found", fmt.Errorf("delete: %w", &NotFoundError{Entity: "user", ID: int64(3)}), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !stderrors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}

	storeErr := &StoreError{Op: "list habits", Err: driverErr}
	if !stderrors.Is(storeErr, driverErr) {
		t.Error("StoreError should unwrap to the driver error")
	}
	if stderrors.Is(&NotFoundError{Entity: "habit"}, ErrDuplicate) {
		t.Error("NotFoundError must not match ErrDuplicate")
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(stderrors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

// TestFatal_NilError tests that Fatal does nothing when passed a nil error
func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_NilError")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}
