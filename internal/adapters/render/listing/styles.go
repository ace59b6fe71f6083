package listing

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	item      lipgloss.Style
	done      lipgloss.Style
	detail    lipgloss.Style
	overdue   lipgloss.Style
	empty     lipgloss.Style
	key       lipgloss.Style
	value     lipgloss.Style
	priority  map[string]lipgloss.Style
	kindFocus lipgloss.Style
	kindBreak lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		item:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		done:    lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("245")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		overdue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:   lipgloss.NewStyle().Faint(true),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		priority: map[string]lipgloss.Style{
			"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		kindFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		kindBreak: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
}
