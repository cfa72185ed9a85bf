package system

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/backup"
	"github.com/julianstephens/habitual/internal/cli"
)

type DoctorCmd struct{}

type check struct {
	name string
	run  func(ctx *cli.Context) error
	// needsDB checks are skipped when the database is unreachable
	needsDB bool
	// warnOnly failures do not fail the command
	warnOnly bool
}

var checks = []check{
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Migrations complete", run: checkMigrationsComplete, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "Completion integrity", run: checkCompletionIntegrity, needsDB: true},
	{name: "Duplicate counters", run: checkDuplicateCounters, needsDB: true},
	{name: "Event consistency", run: checkEventConsistency, needsDB: true},
	{name: "Timestamp integrity", run: checkTimestampIntegrity, needsDB: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

type dbSource interface {
	GetDB() *sql.DB
}

func getDB(ctx *cli.Context) (*sql.DB, error) {
	src, ok := ctx.Store.(dbSource)
	if !ok {
		return nil, fmt.Errorf("storage backend does not expose a database handle")
	}
	db := src.GetDB()
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return db, nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(ctx.Background()); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if err := ctx.Store.Ping(ctx.Background()); err != nil {
		return err
	}

	db, err := getDB(ctx)
	if err != nil {
		return err
	}
	var result int
	if err := db.QueryRowContext(ctx.Background(), "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func schemaVersions(ctx *cli.Context) (current, latest int, err error) {
	runner, err := migrationRunner(ctx)
	if err != nil {
		return 0, 0, err
	}

	current, err = runner.GetCurrentVersion()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err = runner.GetLatestVersion()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get latest schema version: %w", err)
	}
	return current, latest, nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, err := schemaVersions(ctx)
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, err := schemaVersions(ctx)
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'habitual migrate')", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		return fmt.Errorf("backups are not managed for PostgreSQL databases")
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'habitual backup create'")
	}
	return nil
}

func checkClockTimezone(_ *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// countRows runs a COUNT(*) query and fails with the formatted message when it is not zero
func countRows(ctx *cli.Context, query, format string) error {
	db, err := getDB(ctx)
	if err != nil {
		return err
	}

	var n int
	if err := db.QueryRowContext(ctx.Background(), query).Scan(&n); err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	if n > 0 {
		return fmt.Errorf(format, n)
	}
	return nil
}

func checkCompletionIntegrity(ctx *cli.Context) error {
	if err := countRows(ctx, `
		SELECT COUNT(*)
		FROM completions c
		LEFT JOIN habits h ON c.habit_id = h.habit_id
		LEFT JOIN users u ON c.user_id = u.user_id
		WHERE h.habit_id IS NULL OR u.user_id IS NULL
	`, "found %d orphaned completion counters (referencing missing habits or users)"); err != nil {
		return err
	}

	if err := countRows(ctx, `
		SELECT COUNT(*)
		FROM completions c
		JOIN habits h ON c.habit_id = h.habit_id
		WHERE c.user_id <> h.user_id
	`, "found %d completion counters owned by a user other than the habit's owner"); err != nil {
		return err
	}

	return countRows(ctx, `SELECT COUNT(*) FROM completions WHERE count < 1`,
		"found %d completion counters with a count below 1")
}

func checkDuplicateCounters(ctx *cli.Context) error {
	return countRows(ctx, `
		SELECT COUNT(*)
		FROM (
			SELECT user_id, habit_id
			FROM completions
			GROUP BY user_id, habit_id
			HAVING COUNT(*) > 1
		) dup
	`, "found %d user+habit pairs with more than one counter")
}

func checkEventConsistency(ctx *cli.Context) error {
	if err := countRows(ctx, `
		SELECT COUNT(*)
		FROM completion_events e
		LEFT JOIN completions c ON c.user_id = e.user_id AND c.habit_id = e.habit_id
		WHERE c.completion_id IS NULL
	`, "found %d completion events without a counter"); err != nil {
		return err
	}

	// Seeded counters have no events, so only a counter below its event count is wrong
	return countRows(ctx, `
		SELECT COUNT(*)
		FROM completions c
		WHERE c.count < (
			SELECT COUNT(*)
			FROM completion_events e
			WHERE e.user_id = c.user_id AND e.habit_id = c.habit_id
		)
	`, "found %d completion counters lower than their recorded events")
}

func checkTimestampIntegrity(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		// TIMESTAMPTZ columns cannot hold malformed values
		return nil
	}

	if err := countRows(ctx, `
		SELECT COUNT(*)
		FROM completions
		WHERE last_completed = '' OR last_completed NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]*'
	`, "found %d completion counters with corrupted timestamps"); err != nil {
		return err
	}

	return countRows(ctx, `
		SELECT COUNT(*)
		FROM habits
		WHERE created_at = '' OR created_at NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]*'
	`, "found %d habits with corrupted timestamps")
}
