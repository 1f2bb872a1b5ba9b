package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Shared look of the list screens (scoreboard and roster).
var (
	accentColor = lipgloss.Color("229")
	selectBg    = lipgloss.Color("57")
	borderColor = lipgloss.Color("240")
	mutedColor  = lipgloss.Color("241")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	helpStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	emptyStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
)

// listTableStyles is the table look used by every list screen.
func listTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(accentColor).
		Background(selectBg).
		Bold(false)
	return s
}

// tableHeight leaves room for the title, borders and help line.
func tableHeight(screenH int) int {
	return max(screenH-8, 3)
}
