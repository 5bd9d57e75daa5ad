package view

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	success   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	bullet    lipgloss.Style
	border    lipgloss.Style
	cell      lipgloss.Style
	available lipgloss.Style
	taken     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		bullet:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		border:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		cell:      lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252")),
		available: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("114")),
		taken:     lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
	}
}
