// Package render formats evaluations for terminals, JSON consumers,
// and CSV pipelines.
package render

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles used by the table renderer.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Total    lipgloss.Style
	Negative lipgloss.Style
	Changed  lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the standard terminal palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")).Bold(true),
		Label:    lipgloss.NewStyle(),
		Total:    lipgloss.NewStyle().Bold(true),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		Changed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#d29b1d")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
	}
}

// PlainStyles returns styles with no colors or attributes, for piped
// output and tests.
func PlainStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle(),
		Header:   lipgloss.NewStyle(),
		Label:    lipgloss.NewStyle(),
		Total:    lipgloss.NewStyle(),
		Negative: lipgloss.NewStyle(),
		Changed:  lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
	}
}
