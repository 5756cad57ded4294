package ui

import "github.com/charmbracelet/lipgloss"

// Palette for the debug visualizer.
var (
	// Primary is the accent color for headers and focused chrome.
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// CardBorder is the border color for normally-placed cards.
	CardBorder = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

	// FallbackBorder marks cards placed by the emergency solver.
	FallbackBorder = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// TextMuted is for hints and status details.
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(CardBorder).
			Align(lipgloss.Center, lipgloss.Center)

	fallbackCardStyle = cardStyle.
				BorderForeground(FallbackBorder)

	statusStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	fallbackBadgeStyle = lipgloss.NewStyle().
				Foreground(FallbackBorder).
				Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)
