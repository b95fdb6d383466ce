package ui

import "github.com/charmbracelet/lipgloss"

// Icon constants
const (
	DealerIcon = "🎩"
	ChipIcon   = "🪙"
	CardBack   = "░░"
)

// Lipgloss styles shared by every view.
var (
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	blackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	backStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	activeBox    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("220"))
	promptStyle  = lipgloss.NewStyle().MarginTop(1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	moneyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)
