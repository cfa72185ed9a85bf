package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/cli/backups"
	"github.com/julianstephens/habitual/internal/cli/system"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/constants"
	apperrors "github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/keyring"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/postgres"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
	"github.com/julianstephens/habitual/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path, PostgreSQL connection string or \"keyring\". PostgreSQL credentials must NOT be embedded in the connection string; use .pgpass, HABITUAL_DB_CONNECTION or the OS keyring instead." env:"HABITUAL_CONFIG"`
	Debug   bool   `help:"Also log to stderr at debug level."`

	Init      system.InitCmd     `cmd:"" help:"Initialize habitual storage."`
	Migrate   system.MigrateCmd  `cmd:"" help:"Run database migrations."`
	Doctor    system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Seed      system.SeedCmd     `cmd:"" help:"Install the demo account with sample habits."`
	Menu      system.MenuCmd     `cmd:"" help:"Launch the interactive menu." default:"1"`
	Tui       system.TuiCmd      `cmd:"" help:"Launch the habit dashboard."`
	Account   cli.AccountCmd     `cmd:"" help:"Manage accounts."`
	Habit     cli.HabitCmd       `cmd:"" help:"Manage habits and record completions."`
	Analytics cli.AnalyticsCmd   `cmd:"" help:"Query habits and streaks across all users."`
	Backup    backups.BackupCmd  `cmd:"" help:"Manage database backups."`
	Keyring   system.KeyringCmd  `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with completion counts and streak analytics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	// --config wins over config.yaml, which wins over the default path
	target := strings.TrimSpace(CLI.Config)
	configDir := config.Dir(target)
	if target == "" {
		configDir = config.Dir(constants.DefaultConfigPath)
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		apperrors.Fatal(err)
	}
	if target == "" {
		target = cfg.Database
	}
	if target == "" {
		target = constants.DefaultConfigPath
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug || cfg.Debug,
		ConfigDir: configDir,
		LogDir:    config.ExpandHome(cfg.LogDir),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	appCtx := &cli.Context{
		Ctx:       runCtx,
		Config:    cfg,
		ConfigDir: configDir,
	}

	command := ""
	if fields := strings.Fields(ctx.Command()); len(fields) > 0 {
		command = fields[0]
	}

	// The keyring commands manage the connection string and never open the database
	if command != "keyring" {
		store, err := openStore(target)
		if err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()

		// Init handles its own loading
		if command != "init" {
			if err := store.Load(runCtx); err != nil {
				apperrors.Fatal(err)
			}
		}

		appCtx.Store = store
		appCtx.Tracker = tracker.New(store)
		logger.Debug("Storage selected", "target", redactTarget(target), "command", command)
	}

	if err := ctx.Run(appCtx); err != nil {
		stop()
		apperrors.Fatal(err)
	}
}

func openStore(target string) (storage.Provider, error) {
	switch {
	case target == keyring.Source:
		connStr, err := keyring.ResolveConnectionString()
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("no connection string found: set %s or run '%s keyring set'", constants.EnvDBConnection, constants.AppName)
		}
		if err != nil {
			return nil, err
		}
		return postgres.New(connStr), nil

	case storage.IsPostgresConnString(target):
		if _, err := postgres.ValidateConnString(target); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are NOT allowed. "+
					"Store it with '%s keyring set' and use --config %s, export %s, or use a .pgpass file",
					constants.AppName, keyring.Source, constants.EnvDBConnection)
			}
			return nil, err
		}
		return postgres.New(target), nil

	default:
		return sqlite.NewStore(config.ExpandHome(target)), nil
	}
}

func redactTarget(target string) string {
	if storage.IsPostgresConnString(target) {
		return keyring.Redact(target)
	}
	return target
}
