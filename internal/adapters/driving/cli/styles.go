package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette used for terminal listings.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6C7086") // Medium gray
	colorSuccess = lipgloss.Color("#A6E3A1") // Green
	colorWarning = lipgloss.Color("#F9E2AF") // Yellow
	colorError   = lipgloss.Color("#F38BA8") // Red
)

// styles contains pre-configured lipgloss styles.
var styles = struct {
	Title       lipgloss.Style
	Name        lipgloss.Style
	Description lipgloss.Style
	ReadOnly    lipgloss.Style
	Write       lipgloss.Style
	Destructive lipgloss.Style
}{
	Title:       lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
	Name:        lipgloss.NewStyle().Bold(true),
	Description: lipgloss.NewStyle().Foreground(colorMuted).PaddingLeft(2),
	ReadOnly:    lipgloss.NewStyle().Foreground(colorSuccess),
	Write:       lipgloss.NewStyle().Foreground(colorWarning),
	Destructive: lipgloss.NewStyle().Foreground(colorError),
}
