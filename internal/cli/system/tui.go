package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/tui"
)

type TuiCmd struct {
	cli.UserFlags `embed:""`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	user, err := c.Login(ctx)
	if err != nil {
		return err
	}

	// Perform automatic backup on TUI startup (after successful login)
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Background(), ctx.Tracker, user), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
