package habits

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Row is one of the user's habits with its current count
type Row struct {
	ID    int64
	Name  string
	Count int
}

type Model struct {
	table table.Model
	rows  []Row
}

func New(width, height int) Model {
	t := table.New(
		table.WithColumns(columns(width)),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	t.SetStyles(Styles())
	return Model{table: t}
}

func columns(width int) []table.Column {
	nameWidth := width - 24
	if nameWidth < 20 {
		nameWidth = 20
	}
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Habit", Width: nameWidth},
		{Title: "Count", Width: 8},
	}
}

// Styles are the table styles shared by the dashboard views
func Styles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

func (m *Model) SetRows(rows []Row) {
	m.rows = rows
	trs := make([]table.Row, len(rows))
	for i, r := range rows {
		trs[i] = table.Row{strconv.FormatInt(r.ID, 10), r.Name, strconv.Itoa(r.Count)}
	}
	m.table.SetRows(trs)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// SetCount updates the displayed count of one habit
func (m *Model) SetCount(id int64, count int) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Count = count
		}
	}
	m.SetRows(m.rows)
}

// Selected returns the habit under the cursor
func (m Model) Selected() (Row, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[c], true
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
	if len(m.rows) == 0 {
		return "\n  No habits yet.\n  Add one with 'habitual habit add'."
	}
	return m.table.View()
}
