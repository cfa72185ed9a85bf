package models

import "time"

// User is an account that owns habits
type User struct {
	ID           int64     `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the read-only view of an account and its completion counts
type Profile struct {
	Username  string       `json:"username"`
	Email     string       `json:"email,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	Habits    []HabitCount `json:"habits"`
}
