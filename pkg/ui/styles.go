package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/gantry/pkg/theme"
)

// Styles bundles the lipgloss styles derived from the active theme. They
// are rebuilt whenever the theme changes.
type Styles struct {
	Title       lipgloss.Style
	StatusBar   lipgloss.Style
	MonthHeader lipgloss.Style
	PanelHeader lipgloss.Style
	PhaseName   lipgloss.Style
	TaskName    lipgloss.Style
	Selected    lipgloss.Style
	Grid        lipgloss.Style
	DateLabel   lipgloss.Style
	Help        lipgloss.Style
	ErrorMsg    lipgloss.Style
}

// NewStyles derives the UI styles from a theme.
func NewStyles(t theme.Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Tertiary)),
		MonthHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(t.Secondary)),
		PanelHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Text)),
		PhaseName: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Text)),
		TaskName: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Reverse(true),
		Grid: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Tertiary)),
		DateLabel: lipgloss.NewStyle().
			Faint(true),
		Help: lipgloss.NewStyle().
			Faint(true),
		ErrorMsg: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ef4444")),
	}
}
