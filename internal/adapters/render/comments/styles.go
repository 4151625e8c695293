package comments

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	author    lipgloss.Style
	date      lipgloss.Style
	text      lipgloss.Style
	permalink lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	badges    []lipgloss.Style
	badgeMisc lipgloss.Style
}

// badgePalette cycles per vocabulary position; category names are injected
// configuration, so colors cannot key off specific names.
var badgePalette = []string{"33", "36", "178", "203", "135", "244"}

func newStyles() styles {
	badges := make([]lipgloss.Style, 0, len(badgePalette))
	for _, color := range badgePalette {
		badges = append(badges, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)))
	}

	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		author:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		date:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		text:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		permalink: lipgloss.NewStyle().Faint(true).Underline(true),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		badges:    badges,
		badgeMisc: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
	}
}

func (s styles) badgeFor(position int) lipgloss.Style {
	if position < 0 || len(s.badges) == 0 {
		return s.badgeMisc
	}
	return s.badges[position%len(s.badges)]
}
