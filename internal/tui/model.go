package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tracker"
	"github.com/julianstephens/habitual/internal/tui/components/habits"
	"github.com/julianstephens/habitual/internal/tui/components/leaderboard"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateLeaderboard
)

const leaderboardSize = 20

type habitsLoadedMsg struct {
	rows []habits.Row
	err  error
}

type leaderboardLoadedMsg struct {
	streaks []models.Streak
	err     error
}

type completedMsg struct {
	habit habits.Row
	count int
	err   error
}

// Model is the dashboard for a single logged-in user
type Model struct {
	ctx         context.Context
	tracker     *tracker.Tracker
	user        models.User
	state       SessionState
	keys        KeyMap
	help        help.Model
	habits      habits.Model
	leaderboard leaderboard.Model
	status      string
	err         error
	quitting    bool
	width       int
	height      int
}

func NewModel(ctx context.Context, tr *tracker.Tracker, user models.User) Model {
	return Model{
		ctx:         ctx,
		tracker:     tr,
		user:        user,
		state:       StateHabits,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habits:      habits.New(60, 10),
		leaderboard: leaderboard.New(60, 10),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateHabits {
		keys = append(keys, m.keys.Complete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	if m.state == StateHabits {
		actions = []key.Binding{m.keys.Complete}
	}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadHabits(), m.loadLeaderboard())
}

// loadHabits joins the user's habits with their counts
func (m Model) loadHabits() tea.Cmd {
	return func() tea.Msg {
		refs, err := m.tracker.Catalog.ListHabits(m.ctx, m.user.ID)
		if err != nil {
			return habitsLoadedMsg{err: err}
		}
		profile, err := m.tracker.Accounts.Profile(m.ctx, m.user.ID)
		if err != nil {
			return habitsLoadedMsg{err: err}
		}

		counts := make(map[string]int, len(profile.Habits))
		for _, h := range profile.Habits {
			counts[h.HabitName] = h.Count
		}
		rows := make([]habits.Row, len(refs))
		for i, r := range refs {
			rows[i] = habits.Row{ID: r.ID, Name: r.Name, Count: counts[r.Name]}
		}
		return habitsLoadedMsg{rows: rows}
	}
}

func (m Model) loadLeaderboard() tea.Cmd {
	return func() tea.Msg {
		streaks, err := m.tracker.Analytics.Leaderboard(m.ctx, leaderboardSize)
		return leaderboardLoadedMsg{streaks: streaks, err: err}
	}
}

func (m Model) complete(row habits.Row) tea.Cmd {
	return func() tea.Msg {
		count, err := m.tracker.Ledger.RecordCompletion(m.ctx, m.user.ID, row.ID)
		return completedMsg{habit: row, count: count, err: err}
	}
}
