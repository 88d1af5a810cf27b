// Package ui renders advisor results for the terminal with lipgloss and
// runs the live monitor as a bubbletea program.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("39")
	colorGood    = lipgloss.Color("42")
	colorWarning = lipgloss.Color("220")
	colorBad     = lipgloss.Color("196")
	colorMuted   = lipgloss.Color("241")
	colorBorder  = lipgloss.Color("63")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	goodStyle    = lipgloss.NewStyle().Foreground(colorGood)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	badStyle     = lipgloss.NewStyle().Foreground(colorBad)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	warningBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)
