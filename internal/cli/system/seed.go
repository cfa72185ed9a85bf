package system

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
)

type SeedCmd struct{}

func (c *SeedCmd) Run(ctx *cli.Context) error {
	return runSeed(ctx)
}

func runSeed(ctx *cli.Context) error {
	res, err := ctx.Tracker.Seed(ctx.Background())
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	if !res.UserCreated && res.HabitsCreated == 0 && res.CountersCreated == 0 {
		fmt.Println("Demo data already present. Nothing to do.")
		return nil
	}

	if res.UserCreated {
		fmt.Println(cli.Success(fmt.Sprintf("Created demo account %q (password %q)", constants.SeedUsername, constants.SeedPassword)))
	}
	fmt.Println(cli.Success(fmt.Sprintf("Added %d habit(s) and %d completion counter(s)", res.HabitsCreated, res.CountersCreated)))
	return nil
}
