package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"userpicker/internal/picker"
)

const avatarGlyph = "◉ "

// View renders chips, the input box with the clear-all × beside it and, when
// open, the dropdown. Zone markers are left in place; the host scans the full frame.
func (s Select) View() string {
	elements := renderChips(s.ctl.Selected(), s.zones)

	inputStyle := styleInput().Width(s.Width)
	if s.focused {
		inputStyle = styleInputFocused().Width(s.Width)
	}
	input := markZone(s.zones.input(), inputStyle.Render(s.textInput.View()))
	if s.ctl.ShowClear() {
		clearAll := markZone(s.zones.clear(), styleDismiss().Render(dismissGlyph))
		input = lipgloss.JoinHorizontal(lipgloss.Center, input, " ", clearAll)
	}
	elements = append(elements, input)

	var b strings.Builder
	b.WriteString(wrapElements(elements, s.Width+4))

	if dropdown := s.dropdownView(); dropdown != "" {
		b.WriteString("\n")
		b.WriteString(dropdown)
	}
	return b.String()
}

func (s Select) dropdownView() string {
	filtered := s.ctl.Filtered()
	if len(filtered) == 0 {
		if s.focused && s.ctl.Query() != "" {
			return styleNoMatch().Render("  No matches")
		}
		return ""
	}

	var lines []string
	if s.scrollOffset > 0 {
		lines = append(lines, styleHint().Render("  ▲ more above"))
	}

	start, end := s.visibleWindow()
	highlight := s.ctl.Highlight()
	for i := start; i < end; i++ {
		opt := filtered[i]
		line := s.renderOption(opt, i == highlight)
		lines = append(lines, markZone(s.zones.option(opt.ID()), line))
	}

	if end < len(filtered) {
		lines = append(lines, styleHint().Render("  ▼ more below"))
	}
	return strings.Join(lines, "\n")
}

func (s Select) renderOption(opt picker.Option, highlighted bool) string {
	label := opt.Label
	if s.Display.Avatars {
		label = avatarGlyph + label
	}

	room := s.Width - 4
	secondary := ""
	if s.Display.Secondary == SecondaryEmail && opt.Value.Email != "" {
		secondary = "  " + opt.Value.Email
	}
	if room > 0 {
		label = ansi.Truncate(label, room, "…")
		secondary = ansi.Truncate(secondary, max(room-ansi.StringWidth(label), 0), "…")
	}

	if highlighted {
		return styleOptionHighlight().Render("▸ "+label) + styleSecondary().Render(secondary)
	}
	return styleOption().Render(label) + styleSecondary().Render(secondary)
}
