package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the browser.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Chip     lipgloss.Style
	Booth    lipgloss.Style
	Card     lipgloss.Style
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
}

// DefaultStyles returns the default colour scheme.
func DefaultStyles() Styles {
	primary := lipgloss.Color("#7C3AED")
	secondary := lipgloss.Color("#06B6D4")
	muted := lipgloss.Color("#6C7086")
	border := lipgloss.Color("#45475A")

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Label:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Cursor:   lipgloss.NewStyle().Foreground(primary).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(secondary),
		Chip:     lipgloss.NewStyle().Foreground(secondary).Padding(0, 1),
		Booth:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		Focused:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(primary),
		Blurred:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(border),
	}
}
