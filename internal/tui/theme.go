package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the timesheet screens use.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(colorFocus)
	paneTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)

	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(colorSurface0).Foreground(colorText)
	openStyle     = lipgloss.NewStyle().Foreground(colorSuccess)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorOverlay0)
	totalStyle    = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAccent).
			Background(colorBase).
			Padding(1, 2)
	inputStyle = lipgloss.NewStyle().Foreground(colorText).Underline(true)

	statusStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)
