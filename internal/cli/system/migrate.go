package system

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/migration"
)

// migrationSource is implemented by both the SQLite and PostgreSQL stores
type migrationSource interface {
	MigrationRunner() (*migration.Runner, error)
}

func migrationRunner(ctx *cli.Context) (*migration.Runner, error) {
	src, ok := ctx.Store.(migrationSource)
	if !ok {
		return nil, fmt.Errorf("storage backend does not support migrations")
	}
	return src.MigrationRunner()
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	runner, err := migrationRunner(ctx)
	if err != nil {
		return err
	}

	count, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}

	return nil
}
