// Package tracker holds the habit catalog, the completion ledger, the
// analytics queries and account management. Every component works against
// the storage.Provider handed to New; none of them keep state of their own.
package tracker

import (
	"errors"
	"time"

	apperrors "github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/storage"
)

type Tracker struct {
	Catalog   *Catalog
	Ledger    *Ledger
	Analytics *Analytics
	Accounts  *Accounts

	store storage.Provider
	now   func() time.Time
}

type Option func(*Tracker)

// WithClock replaces time.Now for timestamps and the "today" window
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func New(store storage.Provider, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.Catalog = &Catalog{store: store, now: t.now}
	t.Ledger = &Ledger{store: store, now: t.now}
	t.Analytics = &Analytics{store: store, now: t.now}
	t.Accounts = &Accounts{store: store, now: t.now}
	return t
}

func (t *Tracker) Store() storage.Provider {
	return t.store
}

// storeError wraps anything the store returned that is not one of its sentinels
func storeError(op string, err error) error {
	var se *apperrors.StoreError
	if errors.As(err, &se) {
		return err
	}
	return &apperrors.StoreError{Op: op, Err: err}
}
