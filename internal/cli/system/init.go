package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/config"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing SQLite database before initialization."`
	Seed  bool `help:"Install the demo account with sample habits."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if !ctx.IsSQLite() {
			return fmt.Errorf("--force is only supported for SQLite databases")
		}
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			// Close first to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			for _, path := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to delete existing database: %w", err)
				}
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(ctx.Background()); err != nil {
		return err
	}
	fmt.Printf("Initialized habitual storage at: %s\n", ctx.Store.GetConfigPath())

	if ctx.ConfigDir != "" {
		written, err := config.WriteDefault(ctx.ConfigDir)
		if err != nil {
			return err
		}
		if written {
			fmt.Printf("Wrote default configuration to: %s\n", ctx.ConfigDir)
		}
	}

	if c.Seed || ctx.Config.SeedOnInit {
		return runSeed(ctx)
	}
	return nil
}
