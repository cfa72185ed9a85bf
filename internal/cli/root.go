package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/backup"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
	"github.com/julianstephens/habitual/internal/tracker"
)

type Context struct {
	Ctx     context.Context
	Store   storage.Provider
	Tracker *tracker.Tracker
	Config  config.Config
	// ConfigDir holds config.yaml and the logs directory
	ConfigDir string
}

// Background returns the context commands run under
func (c *Context) Background() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// IsSQLite reports whether the store is a local SQLite file
func (c *Context) IsSQLite() bool {
	_, ok := c.Store.(*sqlite.Store)
	return ok
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors.
// PostgreSQL databases are left to the server's own backup tooling.
func (c *Context) PerformAutomaticBackup() {
	if !c.IsSQLite() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// UserFlags identifies the account a command acts for
type UserFlags struct {
	Username string `help:"Account username." short:"u" required:""`
	Password string `help:"Account password (prompted for when omitted)." env:"HABITUAL_PASSWORD"`
}

// Login authenticates the flags' account, prompting for the password if needed
func (f *UserFlags) Login(ctx *Context) (models.User, error) {
	password := f.Password
	if password == "" {
		var err error
		password, err = PromptPassword(fmt.Sprintf("Password for %s", f.Username))
		if err != nil {
			return models.User{}, err
		}
	}
	return ctx.Tracker.Accounts.Authenticate(ctx.Background(), f.Username, password)
}

// PromptPassword reads a password without echoing it
func PromptPassword(title string) (string, error) {
	var password string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	).WithTheme(huh.ThemeDracula()).Run()
	if err != nil {
		return "", err
	}
	return password, nil
}

// Confirm asks a yes/no question, defaulting to no
func Confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(huh.ThemeDracula()).Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// ResolveHabit accepts either a habit id or an exact habit name
func ResolveHabit(ctx *Context, userID int64, ref string) (models.HabitRef, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		h, err := ctx.Tracker.Catalog.GetHabit(ctx.Background(), userID, id)
		if err != nil {
			return models.HabitRef{}, err
		}
		return models.HabitRef{ID: h.ID, Name: h.Name}, nil
	}
	return ctx.Tracker.Catalog.FindHabit(ctx.Background(), userID, ref)
}
