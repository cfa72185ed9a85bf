package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// tabs, status line, help and margins
		h := msg.Height - 8
		if h < 3 {
			h = 3
		}
		m.habits.SetSize(msg.Width-4, h)
		m.leaderboard.SetSize(msg.Width-4, h)
		return m, nil

	case habitsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.habits.SetRows(msg.rows)
		}
		return m, nil

	case leaderboardLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.leaderboard.SetStreaks(msg.streaks)
		}
		return m, nil

	case completedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.habits.SetCount(msg.habit.ID, msg.count)
		m.status = fmt.Sprintf("✓ %s completed (count: %d)", msg.habit.Name, msg.count)
		return m, m.loadLeaderboard()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			if m.state == StateHabits {
				m.state = StateLeaderboard
				m.habits.Blur()
				m.leaderboard.Focus()
			} else {
				m.state = StateHabits
				m.leaderboard.Blur()
				m.habits.Focus()
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.status = ""
			return m, tea.Batch(m.loadHabits(), m.loadLeaderboard())
		case m.state == StateHabits && key.Matches(msg, m.keys.Complete):
			if row, ok := m.habits.Selected(); ok {
				return m, m.complete(row)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.state == StateHabits {
		m.habits, cmd = m.habits.Update(msg)
	} else {
		m.leaderboard, cmd = m.leaderboard.Update(msg)
	}
	return m, cmd
}
