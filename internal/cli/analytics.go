package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/models"
)

type AnalyticsCmd struct {
	Habits      AnalyticsHabitsCmd      `cmd:"" help:"List every user's habits." default:"1"`
	MaxStreak   AnalyticsMaxStreakCmd   `cmd:"" help:"Show the highest completion count overall."`
	Streak      AnalyticsStreakCmd      `cmd:"" help:"Show each user's count for a habit name."`
	Leaderboard AnalyticsLeaderboardCmd `cmd:"" help:"Show the highest counts across all users."`
	Summary     AnalyticsSummaryCmd     `cmd:"" help:"Summarise your own activity."`
}

type AnalyticsHabitsCmd struct {
	Periodicity string `help:"Only show daily or weekly habits." short:"p"`
}

func (c *AnalyticsHabitsCmd) Run(ctx *Context) error {
	var (
		habits []models.OwnedHabit
		err    error
	)
	if strings.TrimSpace(c.Periodicity) == "" {
		habits, err = ctx.Tracker.Analytics.ListAllHabits(ctx.Background())
	} else {
		habits, err = ctx.Tracker.Analytics.ListHabitsByPeriodicity(ctx.Background(), c.Periodicity)
	}
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Println(HeaderStyle.Render(fmt.Sprintf("%-20s %s", "User", "Habit")))
	for _, h := range habits {
		fmt.Printf("%-20s %s\n", h.Username, h.HabitName)
	}
	return nil
}

type AnalyticsMaxStreakCmd struct{}

func (c *AnalyticsMaxStreakCmd) Run(ctx *Context) error {
	best, ok, err := ctx.Tracker.Analytics.GlobalMaxStreak(ctx.Background())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No completions recorded yet.")
		return nil
	}

	fmt.Printf("Longest streak: %s by %s with %d completions\n", best.HabitName, best.Username, best.Count)
	return nil
}

type AnalyticsStreakCmd struct {
	Name string `arg:"" help:"Exact habit name."`
}

func (c *AnalyticsStreakCmd) Run(ctx *Context) error {
	streaks, err := ctx.Tracker.Analytics.StreaksForHabitName(ctx.Background(), c.Name)
	if err != nil {
		return err
	}
	if len(streaks) == 0 {
		fmt.Printf("Nobody has completed %q yet.\n", c.Name)
		return nil
	}

	fmt.Println(HeaderStyle.Render(fmt.Sprintf("Streaks for %s", c.Name)))
	for _, s := range streaks {
		fmt.Printf("  %-20s %d\n", s.Username, s.Count)
	}
	return nil
}

type AnalyticsLeaderboardCmd struct {
	Limit int `help:"Number of entries to show." short:"n" default:"10"`
}

func (c *AnalyticsLeaderboardCmd) Run(ctx *Context) error {
	streaks, err := ctx.Tracker.Analytics.Leaderboard(ctx.Background(), c.Limit)
	if err != nil {
		return err
	}
	if len(streaks) == 0 {
		fmt.Println("No completions recorded yet.")
		return nil
	}

	fmt.Println(HeaderStyle.Render(fmt.Sprintf("%-4s %-20s %-30s %s", "#", "User", "Habit", "Count")))
	for i, s := range streaks {
		fmt.Printf("%-4d %-20s %-30s %d\n", i+1, s.Username, s.HabitName, s.Count)
	}
	return nil
}

type AnalyticsSummaryCmd struct {
	UserFlags `embed:""`
}

func (c *AnalyticsSummaryCmd) Run(ctx *Context) error {
	user, err := c.Login(ctx)
	if err != nil {
		return err
	}

	summary, err := ctx.Tracker.Analytics.Summary(ctx.Background(), user.ID)
	if err != nil {
		return err
	}

	fmt.Println(HeaderStyle.Render(fmt.Sprintf("Summary for %s", user.Username)))
	fmt.Printf("Habits:            %d\n", summary.TotalHabits)
	fmt.Printf("Total completions: %d\n", summary.TotalCompletions)
	fmt.Printf("Completed today:   %d\n", summary.CompletedToday)
	return nil
}
