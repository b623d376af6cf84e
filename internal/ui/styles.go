package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Faint   lipgloss.Style
}

func DefaultStyles() Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Title:   base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Header:  base.Bold(true),
		Success: base.Foreground(lipgloss.Color("#22C55E")),
		Error:   base.Foreground(lipgloss.Color("#EF4444")),
		Warning: base.Foreground(lipgloss.Color("#F59E0B")),
		Faint:   base.Faint(true),
	}
}
