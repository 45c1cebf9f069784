package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	ColumnBorder  lipgloss.Style
	FocusedBorder lipgloss.Style
	Header        lipgloss.Style
	FocusedHeader lipgloss.Style
	CardTitle     lipgloss.Style
	CardMeta      lipgloss.Style
	SelectedCard  lipgloss.Style
	Footer        lipgloss.Style
	ErrorMsg      lipgloss.Style
	ScrollHint    lipgloss.Style
}

func DefaultStyles() Styles {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#555555"})

	return Styles{
		ColumnBorder: border,
		FocusedBorder: border.
			BorderForeground(lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#BD93F9"}),
		Header: lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			Foreground(lipgloss.AdaptiveColor{Light: "#444444", Dark: "#CCCCCC"}),
		FocusedHeader: lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			Foreground(lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#BD93F9"}),
		CardTitle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#222222", Dark: "#EEEEEE"}),
		CardMeta: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#777777"}),
		SelectedCard: lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#EADFFF", Dark: "#44475A"}),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#C00000", Dark: "#FF5555"}),
		ScrollHint: lipgloss.NewStyle().
			Align(lipgloss.Center).
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#777777"}),
	}
}

func priorityIcon(priority string) string {
	switch priority {
	case "critical":
		return "‼"
	case "high":
		return "↑"
	case "low":
		return "↓"
	default:
		return "•"
	}
}

func issueIcon(issueType string) string {
	switch issueType {
	case "story":
		return "◆"
	case "bug":
		return "✗"
	case "epic":
		return "▲"
	default:
		return "■"
	}
}
