package models

// Streak is a completion count together with the habit and owner it belongs to
type Streak struct {
	Username  string `json:"username"`
	HabitName string `json:"habit_name"`
	Count     int    `json:"count"`
}

// UserStreak is a per-user count for a habit looked up by name
type UserStreak struct {
	Username string `json:"username"`
	Count    int    `json:"count"`
}

// HabitCount is a per-habit count for a single user
type HabitCount struct {
	HabitName string `json:"habit_name"`
	Count     int    `json:"count"`
}

// Summary aggregates a user's activity
type Summary struct {
	TotalHabits      int `json:"total_habits"`
	TotalCompletions int `json:"total_completions"`
	CompletedToday   int `json:"completed_today"`
}
