package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Success prefixes msg with a green check mark
func Success(msg string) string {
	return SuccessStyle.Render("✓") + " " + msg
}
