package widgets

import "github.com/charmbracelet/lipgloss"

// Styles controls how widgets render.
type Styles struct {
	Tab         lipgloss.Style
	SelectedTab lipgloss.Style
	Page        lipgloss.Style
	Closed      lipgloss.Style
}

// DefaultStyles returns the built-in look: bordered tabs with the selected one
// highlighted, and a bordered page.
func DefaultStyles() Styles {
	tab := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return Styles{
		Tab: tab,
		SelectedTab: tab.
			BorderForeground(lipgloss.Color("213")).
			Foreground(lipgloss.Color("213")).
			Bold(true),
		Page: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Closed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),
	}
}

// PlainStyles returns borderless, uncolored styles. Useful for tests and for
// terminals without color support.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Tab:         plain.Padding(0, 1),
		SelectedTab: plain.Padding(0, 1).Reverse(true),
		Page:        plain,
		Closed:      plain,
	}
}
