package leaderboard

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tui/components/habits"
)

type Model struct {
	table   table.Model
	streaks []models.Streak
}

func New(width, height int) Model {
	t := table.New(
		table.WithColumns(columns(width)),
		table.WithHeight(height),
	)
	t.SetStyles(habits.Styles())
	return Model{table: t}
}

func columns(width int) []table.Column {
	habitWidth := width - 40
	if habitWidth < 20 {
		habitWidth = 20
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "User", Width: 20},
		{Title: "Habit", Width: habitWidth},
		{Title: "Count", Width: 8},
	}
}

func (m *Model) SetStreaks(streaks []models.Streak) {
	m.streaks = streaks
	rows := make([]table.Row, len(streaks))
	for i, s := range streaks {
		rows[i] = table.Row{strconv.Itoa(i + 1), s.Username, s.HabitName, strconv.Itoa(s.Count)}
	}
	m.table.SetRows(rows)
}

func (m Model) Streaks() []models.Streak {
	return m.streaks
}

func (m *Model) SetSize(width, height int) {
	m.table.SetColumns(columns(width))
	m.table.SetHeight(height)
}

func (m *Model) Focus() { m.table.Focus() }

func (m *Model) Blur() { m.table.Blur() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.streaks) == 0 {
		return "\n  No completions recorded yet."
	}
	return m.table.View()
}
