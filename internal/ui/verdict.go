package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primeColor     = lipgloss.AdaptiveColor{Light: "#1B7F2A", Dark: "#9ECE6A"}
	compositeColor = lipgloss.AdaptiveColor{Light: "#A31515", Dark: "#FF4444"}
)

// VerdictStyle returns the lipgloss style used to render a verdict badge.
// Under NoColorTheme the style carries padding only.
func VerdictStyle(prime bool) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return style
	}
	color := lipgloss.TerminalColor(compositeColor)
	if prime {
		color = primeColor
	}
	return style.Bold(true).Foreground(color).
		Border(lipgloss.RoundedBorder(), false, true).
		BorderForeground(color)
}

// VerdictLabel returns the word describing a verdict.
func VerdictLabel(prime bool) string {
	if prime {
		return "PRIME"
	}
	return "NOT PRIME"
}

// RenderVerdict renders the verdict badge for display.
func RenderVerdict(prime bool) string {
	return VerdictStyle(prime).Render(VerdictLabel(prime))
}
