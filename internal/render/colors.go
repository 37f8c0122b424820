package render

import "github.com/charmbracelet/lipgloss"

// Color constants for ritmo terminal output
const (
	ColorPrimaryText   = "#E6EAF2" // titles, values
	ColorSecondaryText = "#B1B8C7" // labels, timestamps
	ColorDisabledText  = "#6D7383" // breaks, unknown buckets

	ColorAccentMain   = "#2DD4BF" // headers, highlights
	ColorAccentBright = "#5EEAD4" // best hours, top scores

	ColorError   = "#EF4444" // overdue, unschedulable
	ColorSuccess = "#22C55E" // confident estimates
	ColorWarning = "#F59E0B" // downgraded slots, due soon
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	breakStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Italic(true)
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
)
