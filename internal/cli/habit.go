package cli

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List your habits."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit and its completions."`
	Done    HabitDoneCmd    `cmd:"" help:"Record a completion of a habit."`
	History HabitHistoryCmd `cmd:"" help:"Show your most recent completions."`
}

type HabitAddCmd struct {
	UserFlags   `embed:""`
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description." short:"d"`
	Periodicity string `help:"daily or weekly." short:"p" default:"daily"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	user, err := c.Login(ctx)
	if err != nil {
		return err
	}

	// Accept "Weekly" and the like; anything else is reported by validation
	periodicity := c.Periodicity
	if p, err := models.ParsePeriodicity(periodicity); err == nil {
		periodicity = p.String()
	}

	id, err := ctx.Tracker.Catalog.CreateHabit(ctx.Background(), user.ID, c.Name, c.Description, periodicity)
	if err != nil {
		return err
	}

	fmt.Println(Success(fmt.Sprintf("Added habit %q (id %d)", c.Name, id)))
	return nil
}

type HabitListCmd struct {
	UserFlags `embed:""`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	user, err := c.Login(ctx)
	if err != nil {
		return err
	}

	habits, err := ctx.Tracker.Catalog.ListHabits(ctx.Background(), user.ID)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Println(HeaderStyle.Render(fmt.Sprintf("%-6s %s", "ID", "Name")))
	for _, h := range habits {
		fmt.Printf("%-6d %s\n", h.ID, h.Name)
	}
	return nil
}

type HabitDeleteCmd struct {
	UserFlags `embed:""`
	Habit     string `arg:"" help:"Habit id or name."`
	Yes       bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	user, err := c.Login(ctx)
	if err != nil {
		return err
	}

	habit, err := ResolveHabit(ctx, user.ID, c.Habit)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := Confirm(fmt.Sprintf("Delete habit %q and its completions?", habit.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Deletion cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Tracker.Catalog.DeleteHabit(ctx.Background(), user.ID, habit.ID); err != nil {
		return err
	}
	fmt.Println(Success(fmt.Sprintf("Deleted habit %q", habit.Name)))
	return nil
}

type HabitDoneCmd struct {
	UserFlags `embed:""`
	Habit     string `arg:"" help:"Habit id or name."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	user, err := c.Login(ctx)
	if err != nil {
		return err
	}

	habit, err := ResolveHabit(ctx, user.ID, c.Habit)
	if err != nil {
		return err
	}

	count, err := ctx.Tracker.Ledger.RecordCompletion(ctx.Background(), user.ID, habit.ID)
	if err != nil {
		return err
	}

	fmt.Println(Success(fmt.Sprintf("Completed %q (count: %d)", habit.Name, count)))
	return nil
}

type HabitHistoryCmd struct {
	UserFlags `embed:""`
	Limit     int `help:"Number of completions to show." short:"n" default:"20"`
}

func (c *HabitHistoryCmd) Run(ctx *Context) error {
	user, err := c.Login(ctx)
	if err != nil {
		return err
	}

	events, err := ctx.Tracker.Ledger.History(ctx.Background(), user.ID, c.Limit)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No completions recorded yet.")
		return nil
	}

	for _, e := range events {
		fmt.Printf("%s  %-30s #%d\n", e.CompletedAt.Local().Format(constants.DateTimeFormat), e.HabitName, e.Count)
	}
	return nil
}
