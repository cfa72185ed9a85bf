package system

import (
	"os"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/menu"
)

type MenuCmd struct{}

func (c *MenuCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()
	return menu.New(ctx.Background(), ctx.Tracker, os.Stdout).Run()
}
