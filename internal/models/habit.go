package models

import (
	"fmt"
	"strings"
	"time"
)

// Periodicity is the declared cadence of a habit
type Periodicity string

const (
	PeriodicityDaily  Periodicity = "daily"
	PeriodicityWeekly Periodicity = "weekly"
)

// Periodicities lists every accepted periodicity in display order
var Periodicities = []Periodicity{PeriodicityDaily, PeriodicityWeekly}

func (p Periodicity) Valid() bool {
	return p == PeriodicityDaily || p == PeriodicityWeekly
}

func (p Periodicity) String() string {
	return string(p)
}

// ParsePeriodicity accepts a periodicity name in any case and surrounding whitespace
func ParsePeriodicity(s string) (Periodicity, error) {
	p := Periodicity(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid periodicity %q (expected daily or weekly)", s)
	}
	return p, nil
}

// Habit represents a tracked behaviour owned by a single user
type Habit struct {
	ID          int64       `json:"habit_id"`
	UserID      int64       `json:"user_id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Periodicity Periodicity `json:"periodicity"`
	CreatedAt   time.Time   `json:"created_at"`
}

// HabitRef is the (id, name) pair shown when a user lists their habits
type HabitRef struct {
	ID   int64  `json:"habit_id"`
	Name string `json:"name"`
}

// OwnedHabit pairs a habit name with the username of its owner
type OwnedHabit struct {
	Username  string `json:"username"`
	HabitName string `json:"habit_name"`
}
