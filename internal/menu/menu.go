// Package menu is the interactive, prompt-driven front end: an account menu,
// a per-user habit menu and the analytics menu.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/constants"
	apperrors "github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tracker"
)

type action string

const (
	actionCreateAccount action = "create-account"
	actionLogIn         action = "log-in"
	actionAnalytics     action = "analytics"
	actionExit          action = "exit"

	actionAddHabit      action = "add-habit"
	actionViewHabits    action = "view-habits"
	actionLogCompletion action = "log-completion"
	actionDeleteHabit   action = "delete-habit"
	actionProfile       action = "profile"
	actionSummary       action = "summary"
	actionHistory       action = "history"
	actionDeleteAccount action = "delete-account"
	actionLogOut        action = "log-out"

	actionAllHabits     action = "all-habits"
	actionByPeriodicity action = "by-periodicity"
	actionMaxStreak     action = "max-streak"
	actionHabitStreaks  action = "habit-streaks"
	actionBack          action = "back"
)

type Menu struct {
	ctx     context.Context
	tracker *tracker.Tracker
	out     io.Writer
	theme   *huh.Theme
}

func New(ctx context.Context, tr *tracker.Tracker, out io.Writer) *Menu {
	return &Menu{
		ctx:     ctx,
		tracker: tr,
		out:     out,
		theme:   huh.ThemeDracula(),
	}
}

// Run shows the main menu until the user exits or aborts with ctrl+c
func (m *Menu) Run() error {
	for {
		choice, err := m.selectAction("Welcome to habitual", []huh.Option[action]{
			huh.NewOption("Create an Account", actionCreateAccount),
			huh.NewOption("Log In", actionLogIn),
			huh.NewOption("Analytics", actionAnalytics),
			huh.NewOption("Exit", actionExit),
		})
		if err != nil {
			return ignoreAbort(err)
		}

		switch choice {
		case actionCreateAccount:
			err = m.createAccount()
		case actionLogIn:
			var user models.User
			var ok bool
			user, ok, err = m.logIn()
			if err == nil && ok {
				err = m.userMenu(user)
			}
		case actionAnalytics:
			err = m.analyticsMenu()
		case actionExit:
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		}

		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			m.printError(err)
		}
	}
}

func (m *Menu) userMenu(user models.User) error {
	for {
		choice, err := m.selectAction(fmt.Sprintf("Logged in as %s", user.Username), []huh.Option[action]{
			huh.NewOption("Add a Habit", actionAddHabit),
			huh.NewOption("View Habits", actionViewHabits),
			huh.NewOption("Log Habit Completion", actionLogCompletion),
			huh.NewOption("Delete a Habit", actionDeleteHabit),
			huh.NewOption("View Profile", actionProfile),
			huh.NewOption("View Analytics", actionSummary),
			huh.NewOption("Completion History", actionHistory),
			huh.NewOption("Delete Account", actionDeleteAccount),
			huh.NewOption("Log Out", actionLogOut),
		})
		if err != nil {
			return err
		}

		switch choice {
		case actionAddHabit:
			err = m.addHabit(user)
		case actionViewHabits:
			err = m.viewHabits(user)
		case actionLogCompletion:
			err = m.logCompletion(user)
		case actionDeleteHabit:
			err = m.deleteHabit(user)
		case actionProfile:
			var profile models.Profile
			profile, err = m.tracker.Accounts.Profile(m.ctx, user.ID)
			if err == nil {
				renderProfile(m.out, profile)
			}
		case actionSummary:
			var summary models.Summary
			summary, err = m.tracker.Analytics.Summary(m.ctx, user.ID)
			if err == nil {
				renderSummary(m.out, summary)
			}
		case actionHistory:
			var events []models.CompletionEvent
			events, err = m.tracker.Ledger.History(m.ctx, user.ID, constants.DefaultHistoryLimit)
			if err == nil {
				renderHistory(m.out, events)
			}
		case actionDeleteAccount:
			var deleted bool
			deleted, err = m.deleteAccount(user)
			if err == nil && deleted {
				return nil
			}
		case actionLogOut:
			fmt.Fprintf(m.out, "Goodbye, %s!\n", user.Username)
			return nil
		}

		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return err
			}
			m.printError(err)
		}
	}
}

func (m *Menu) analyticsMenu() error {
	for {
		choice, err := m.selectAction("Analytics", []huh.Option[action]{
			huh.NewOption("List all habits", actionAllHabits),
			huh.NewOption("List habits by periodicity", actionByPeriodicity),
			huh.NewOption("Longest streak overall", actionMaxStreak),
			huh.NewOption("Streaks for a habit", actionHabitStreaks),
			huh.NewOption("Back", actionBack),
		})
		if err != nil {
			return err
		}

		switch choice {
		case actionAllHabits:
			var habits []models.OwnedHabit
			habits, err = m.tracker.Analytics.ListAllHabits(m.ctx)
			if err == nil {
				renderOwnedHabits(m.out, habits)
			}
		case actionByPeriodicity:
			err = m.habitsByPeriodicity()
		case actionMaxStreak:
			var best models.Streak
			var ok bool
			best, ok, err = m.tracker.Analytics.GlobalMaxStreak(m.ctx)
			if err == nil {
				renderMaxStreak(m.out, best, ok)
			}
		case actionHabitStreaks:
			err = m.habitStreaks()
		case actionBack:
			return nil
		}

		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return err
			}
			m.printError(err)
		}
	}
}

func (m *Menu) createAccount() error {
	var username, password, email string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Choose your desired username").Value(&username),
			huh.NewInput().Title("Enter your password").EchoMode(huh.EchoModePassword).Value(&password),
			huh.NewInput().Title("Email (optional)").Value(&email),
		),
	).WithTheme(m.theme)
	if err := form.Run(); err != nil {
		return err
	}

	if _, err := m.tracker.Accounts.CreateAccount(m.ctx, username, password, email); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "✅ Account %q created successfully!\n", username)
	return nil
}

func (m *Menu) logIn() (models.User, bool, error) {
	var username, password string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Username").Value(&username),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
		),
	).WithTheme(m.theme)
	if err := form.Run(); err != nil {
		return models.User{}, false, err
	}

	user, err := m.tracker.Accounts.Authenticate(m.ctx, username, password)
	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		fmt.Fprintln(m.out, "❌ Invalid credentials.")
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}

	fmt.Fprintf(m.out, "👋 Welcome back, %s!\n", user.Username)
	return user, true, nil
}

func (m *Menu) addHabit(user models.User) error {
	var name, description string
	periodicity := models.PeriodicityDaily
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Enter the habit name").Value(&name),
			huh.NewInput().Title("Enter a description (optional)").Value(&description),
			huh.NewSelect[models.Periodicity]().
				Title("Frequency").
				Options(periodicityOptions()...).
				Value(&periodicity),
		),
	).WithTheme(m.theme)
	if err := form.Run(); err != nil {
		return err
	}

	if _, err := m.tracker.Catalog.CreateHabit(m.ctx, user.ID, name, description, periodicity.String()); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "✅ %q added!\n", name)
	return nil
}

func (m *Menu) viewHabits(user models.User) error {
	habits, err := m.tracker.Catalog.ListHabits(m.ctx, user.ID)
	if err != nil {
		return err
	}
	renderHabits(m.out, habits)
	return nil
}

// pickHabit asks the user to choose one of their habits. ok is false when they have none.
func (m *Menu) pickHabit(user models.User, title string) (models.HabitRef, bool, error) {
	habits, err := m.tracker.Catalog.ListHabits(m.ctx, user.ID)
	if err != nil {
		return models.HabitRef{}, false, err
	}
	if len(habits) == 0 {
		fmt.Fprintln(m.out, "❌ No habits found.")
		return models.HabitRef{}, false, nil
	}

	var id int64
	err = m.ask(huh.NewSelect[int64]().
		Title(title).
		Options(habitOptions(habits)...).
		Value(&id))
	if err != nil {
		return models.HabitRef{}, false, err
	}

	for _, h := range habits {
		if h.ID == id {
			return h, true, nil
		}
	}
	return models.HabitRef{}, false, &apperrors.NotFoundError{Entity: "habit", ID: id}
}

func (m *Menu) logCompletion(user models.User) error {
	habit, ok, err := m.pickHabit(user, "Which habit did you complete?")
	if err != nil || !ok {
		return err
	}

	count, err := m.tracker.Ledger.RecordCompletion(m.ctx, user.ID, habit.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "🔥 Logged! New streak: %d\n", count)
	return nil
}

func (m *Menu) deleteHabit(user models.User) error {
	habit, ok, err := m.pickHabit(user, "Which habit do you want to delete?")
	if err != nil || !ok {
		return err
	}

	confirmed, err := m.confirm(fmt.Sprintf("Are you sure you want to delete habit %q?", habit.Name))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(m.out, "❎ Deletion canceled.")
		return nil
	}

	if err := m.tracker.Catalog.DeleteHabit(m.ctx, user.ID, habit.ID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "🗑️ Habit deleted successfully.")
	return nil
}

func (m *Menu) deleteAccount(user models.User) (bool, error) {
	confirmed, err := m.confirm(fmt.Sprintf("Are you sure you want to delete your account, %q? This action cannot be undone.", user.Username))
	if err != nil {
		return false, err
	}
	if !confirmed {
		fmt.Fprintln(m.out, "❎ Account deletion canceled.")
		return false, nil
	}

	if err := m.tracker.Accounts.DeleteAccount(m.ctx, user.ID); err != nil {
		return false, err
	}
	fmt.Fprintf(m.out, "🗑️ Account %q deleted successfully.\n", user.Username)
	return true, nil
}

func (m *Menu) habitsByPeriodicity() error {
	periodicity := models.PeriodicityDaily
	err := m.ask(huh.NewSelect[models.Periodicity]().
		Title("Periodicity").
		Options(periodicityOptions()...).
		Value(&periodicity))
	if err != nil {
		return err
	}

	habits, err := m.tracker.Analytics.ListHabitsByPeriodicity(m.ctx, periodicity.String())
	if err != nil {
		return err
	}
	renderOwnedHabits(m.out, habits)
	return nil
}

func (m *Menu) habitStreaks() error {
	var name string
	err := m.ask(huh.NewInput().
		Title("Habit name").
		Value(&name))
	if err != nil {
		return err
	}

	streaks, err := m.tracker.Analytics.StreaksForHabitName(m.ctx, name)
	if err != nil {
		return err
	}
	renderHabitStreaks(m.out, name, streaks)
	return nil
}

func (m *Menu) selectAction(title string, options []huh.Option[action]) (action, error) {
	var choice action
	err := m.ask(huh.NewSelect[action]().
		Title(title).
		Options(options...).
		Value(&choice))
	return choice, err
}

func (m *Menu) confirm(title string) (bool, error) {
	var ok bool
	err := m.ask(huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok))
	return ok, err
}

func (m *Menu) ask(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).WithTheme(m.theme).Run()
}

func (m *Menu) printError(err error) {
	fmt.Fprintf(m.out, "❌ %v\n", err)
}

func periodicityOptions() []huh.Option[models.Periodicity] {
	opts := make([]huh.Option[models.Periodicity], len(models.Periodicities))
	for i, p := range models.Periodicities {
		opts[i] = huh.NewOption(p.String(), p)
	}
	return opts
}

func habitOptions(habits []models.HabitRef) []huh.Option[int64] {
	opts := make([]huh.Option[int64], len(habits))
	for i, h := range habits {
		opts[i] = huh.NewOption(h.Name+" (ID: "+strconv.FormatInt(h.ID, 10)+")", h.ID)
	}
	return opts
}

func ignoreAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
