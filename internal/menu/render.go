package menu

import (
	"fmt"
	"io"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
)

func renderHabits(w io.Writer, habits []models.HabitRef) {
	if len(habits) == 0 {
		fmt.Fprintln(w, "❌ No habits found.")
		return
	}
	fmt.Fprintln(w, "Your habits are:")
	for _, h := range habits {
		fmt.Fprintf(w, "- %s (ID: %d)\n", h.Name, h.ID)
	}
}

func renderOwnedHabits(w io.Writer, habits []models.OwnedHabit) {
	if len(habits) == 0 {
		fmt.Fprintln(w, "❌ No habits found.")
		return
	}
	for _, h := range habits {
		fmt.Fprintf(w, "- %s: %s\n", h.Username, h.HabitName)
	}
}

func renderMaxStreak(w io.Writer, best models.Streak, ok bool) {
	if !ok {
		fmt.Fprintln(w, "❌ No completions recorded yet.")
		return
	}
	fmt.Fprintf(w, "🏆 Longest streak: %s by %s with %d completions\n", best.HabitName, best.Username, best.Count)
}

func renderHabitStreaks(w io.Writer, name string, streaks []models.UserStreak) {
	if len(streaks) == 0 {
		fmt.Fprintf(w, "❌ Nobody has completed %q yet.\n", name)
		return
	}
	fmt.Fprintf(w, "Streaks for %s:\n", name)
	for _, s := range streaks {
		fmt.Fprintf(w, "- %s: %d\n", s.Username, s.Count)
	}
}

func renderProfile(w io.Writer, p models.Profile) {
	fmt.Fprintf(w, "👤 Profile for %s:\n", p.Username)
	fmt.Fprintf(w, "   - Username: %s\n", p.Username)
	if p.Email != "" {
		fmt.Fprintf(w, "   - Email: %s\n", p.Email)
	}
	fmt.Fprintf(w, "   - Account created on: %s\n", p.CreatedAt.Local().Format(constants.DateFormat))

	if len(p.Habits) == 0 {
		fmt.Fprintln(w, "❌ No habits completed yet.")
		return
	}
	fmt.Fprintln(w, "🔖 Your habit completions:")
	for _, h := range p.Habits {
		fmt.Fprintf(w, "   - Habit: %s | Streak: %d completions\n", h.HabitName, h.Count)
	}
}

func renderSummary(w io.Writer, s models.Summary) {
	fmt.Fprintln(w, "📊 Analytics for today:")
	fmt.Fprintf(w, "• Total habits: %d\n", s.TotalHabits)
	fmt.Fprintf(w, "• Total completions: %d\n", s.TotalCompletions)
	fmt.Fprintf(w, "• Completions today: %d\n", s.CompletedToday)
}

func renderHistory(w io.Writer, events []models.CompletionEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "❌ No completions recorded yet.")
		return
	}
	for _, e := range events {
		fmt.Fprintf(w, "%s  %s #%d\n", e.CompletedAt.Local().Format(constants.DateTimeFormat), e.HabitName, e.Count)
	}
}
