package output

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	tipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// WarnPrefix returns the styled prefix for warning messages
func WarnPrefix() string {
	return warnStyle.Render("warning:")
}

// ErrorPrefix returns the styled prefix for error messages
func ErrorPrefix() string {
	return errorStyle.Render("error:")
}

// TipPrefix returns the styled prefix for tip messages
func TipPrefix() string {
	return tipStyle.Render("tip:")
}

// Success renders a success message in the success style
func Success(text string) string {
	return successStyle.Render(text)
}
