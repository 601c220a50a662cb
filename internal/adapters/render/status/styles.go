package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	name      lipgloss.Style
	owner     lipgloss.Style
	detail    lipgloss.Style
	empty     lipgloss.Style
	section   lipgloss.Style
	combatOn  lipgloss.Style
	combatOff lipgloss.Style
	acting    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		owner:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:     lipgloss.NewStyle().Faint(true),
		section:   lipgloss.NewStyle().MarginTop(1),
		combatOn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		combatOff: lipgloss.NewStyle().Faint(true),
		acting:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
	}
}
