package models

import "time"

// Completion is the running tally of how many times a user has completed a habit.
// There is at most one Completion per (UserID, HabitID) and Count never decreases.
type Completion struct {
	ID            int64     `json:"completion_id"`
	UserID        int64     `json:"user_id"`
	HabitID       int64     `json:"habit_id"`
	LastCompleted time.Time `json:"last_completed"`
	Count         int       `json:"count"`
}

// CompletionEvent records a single completion and the count it produced
type CompletionEvent struct {
	ID          string    `json:"event_id"`
	UserID      int64     `json:"user_id"`
	HabitID     int64     `json:"habit_id"`
	HabitName   string    `json:"habit_name,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
	Count       int       `json:"count"`
}
