package triage

import "github.com/charmbracelet/lipgloss"

type styles struct {
	tabActive    lipgloss.Style
	tabInactive  lipgloss.Style
	header       lipgloss.Style
	author       lipgloss.Style
	date         lipgloss.Style
	text         lipgloss.Style
	badge        lipgloss.Style
	cursor       lipgloss.Style
	notifSuccess lipgloss.Style
	notifError   lipgloss.Style
	errorPanel   lipgloss.Style
	staleNote    lipgloss.Style
	empty        lipgloss.Style
	help         lipgloss.Style
	draftFrame   lipgloss.Style
	sending      lipgloss.Style
}

func newStyles() styles {
	return styles{
		tabActive:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Underline(true),
		tabInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		author:       lipgloss.NewStyle().Bold(true),
		date:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		text:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		cursor:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		notifSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		notifError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		errorPanel:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("203")).Padding(0, 1),
		staleNote:    lipgloss.NewStyle().Faint(true),
		empty:        lipgloss.NewStyle().Faint(true),
		help:         lipgloss.NewStyle().Faint(true),
		draftFrame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1),
		sending:      lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
