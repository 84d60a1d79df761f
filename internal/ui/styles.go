package ui

import (
	"github.com/charmbracelet/lipgloss"

	"userpicker/internal/ui/theme"
)

// Styles are built on each render so a theme switch applies immediately.

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent).
		Bold(true).
		MarginBottom(1)
}

func styleInput() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderDim).
		Padding(0, 1)
}

func styleInputFocused() lipgloss.Style {
	return styleInput().BorderForeground(theme.Current().BorderFocused)
}

func styleOption() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text).
		PaddingLeft(2)
}

func styleOptionHighlight() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary).
		Bold(true).
		PaddingLeft(1)
}

func styleSecondary() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleHint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleNoMatch() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().BorderNormal).
		Italic(true)
}

func styleDismiss() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Error).
		Bold(true)
}

func styleToast() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Success)
}

func styleDetail() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted).
		MarginTop(1)
}
