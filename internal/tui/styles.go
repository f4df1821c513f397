package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/rollbook/internal/roster"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	warnColor = lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#E5C07B"}
	errColor  = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#E06C75"}
	infoColor = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#98C379"}
)

type styles struct {
	title        lipgloss.Style
	label        lipgloss.Style
	focusedLabel lipgloss.Style
	status       lipgloss.Style
	box          lipgloss.Style
	focusedBox   lipgloss.Style
	dialog       lipgloss.Style
	dialogTitle  lipgloss.Style
	hint         lipgloss.Style
	table        table.Styles
}

func newStyles(accent string) styles {
	a := lipgloss.Color(accent)

	t := table.DefaultStyles()
	t.Header = t.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(subtle).
		BorderBottom(true).
		Bold(true)
	t.Selected = t.Selected.Foreground(a).Bold(true)

	return styles{
		title:        lipgloss.NewStyle().Bold(true).Foreground(a).MarginBottom(1),
		label:        lipgloss.NewStyle().Width(10),
		focusedLabel: lipgloss.NewStyle().Width(10).Foreground(a).Bold(true),
		status:       lipgloss.NewStyle().Foreground(subtle),
		box:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(subtle),
		focusedBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(a),
		dialog:       lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 2),
		dialogTitle:  lipgloss.NewStyle().Bold(true),
		hint:         lipgloss.NewStyle().Foreground(subtle),
		table:        t,
	}
}

func severityColor(s roster.Severity) lipgloss.TerminalColor {
	switch s {
	case roster.SeverityWarning:
		return warnColor
	case roster.SeverityError:
		return errColor
	default:
		return infoColor
	}
}
