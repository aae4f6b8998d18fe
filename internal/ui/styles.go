// Package ui renders the monkey menu to a terminal with lipgloss. Colors are
// dropped automatically when the output is not a terminal or NO_COLOR is set.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Cyan   = lipgloss.Color("14")
	Yellow = lipgloss.Color("11")
	Green  = lipgloss.Color("10")
	Red    = lipgloss.Color("9")
)

// Styles holds the styles used by Renderer, bound to one lipgloss renderer.
type Styles struct {
	Title   lipgloss.Style
	Banner  lipgloss.Style
	Menu    lipgloss.Style
	Label   lipgloss.Style
	Notice  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Foreground(Cyan).Bold(true),
		Banner:  r.NewStyle().Foreground(Yellow),
		Menu:    r.NewStyle().Foreground(Green).Bold(true),
		Label:   r.NewStyle().Foreground(Yellow),
		Notice:  r.NewStyle().Foreground(Yellow),
		Success: r.NewStyle().Foreground(Green),
		Error:   r.NewStyle().Foreground(Red),
	}
}
