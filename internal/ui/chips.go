package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"userpicker/internal/picker"
	"userpicker/internal/ui/theme"
)

// Powerline half circles give chips rounded ends.
const (
	pillLeft  = "\ue0b6"
	pillRight = "\ue0b4"

	dismissGlyph = "×"

	maxChipLabel = 24
)

// renderChips draws one pill per selected option. Each pill's × is a
// clickable zone that dismisses that option.
func renderChips(selected []picker.Option, zones zoneIDs) []string {
	chips := make([]string, 0, len(selected))
	for _, opt := range selected {
		chips = append(chips, renderPillChip(opt, zones))
	}
	return chips
}

func renderPillChip(opt picker.Option, zones zoneIDs) string {
	t := theme.Current()
	bg := t.Primary
	fg := t.ChipBackground

	caps := lipgloss.NewStyle().Foreground(bg)
	body := lipgloss.NewStyle().Foreground(fg).Background(bg)
	dismiss := body.Bold(true)

	label := ansi.Truncate(opt.Label, maxChipLabel, "…")
	return caps.Render(pillLeft) +
		body.Render(label+" ") +
		markZone(zones.chip(opt.ID()), dismiss.Render(dismissGlyph)) +
		caps.Render(pillRight)
}

// wrapElements lays rendered pieces out left to right, starting a new line
// whenever the next piece would overflow width. Pieces sharing a line are
// centered vertically against the tallest one.
func wrapElements(elements []string, width int) string {
	if len(elements) == 0 {
		return ""
	}
	if width <= 0 {
		return joinRow(elements)
	}

	var lines []string
	var currentLine []string
	currentWidth := 0

	for _, elem := range elements {
		elemWidth := lipgloss.Width(elem)
		spaceNeeded := elemWidth
		if len(currentLine) > 0 {
			spaceNeeded++
		}

		if currentWidth+spaceNeeded > width && len(currentLine) > 0 {
			lines = append(lines, joinRow(currentLine))
			currentLine = []string{elem}
			currentWidth = elemWidth
			continue
		}
		currentLine = append(currentLine, elem)
		currentWidth += spaceNeeded
	}

	if len(currentLine) > 0 {
		lines = append(lines, joinRow(currentLine))
	}
	return strings.Join(lines, "\n")
}

func joinRow(elements []string) string {
	parts := make([]string, 0, 2*len(elements)-1)
	for i, elem := range elements {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, elem)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
