package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorOK    = "82"
	colorWarn  = "226"
	colorError = "196"
	colorInfo  = "86"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			PaddingLeft(1).
			PaddingRight(1)

	dateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorOK)).Bold(true)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	snoozedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarn))

	ringingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color(colorError)).
			PaddingLeft(1).
			PaddingRight(1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)

	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // Blue
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))  // Green
	bulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Gray
)
