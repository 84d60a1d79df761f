package theme

import "github.com/charmbracelet/lipgloss"

func c(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}

var tokyoNight = Palette{
	Primary:        c("#82aaff", "#2e7de9"),
	Secondary:      c("#c099ff", "#9854f1"),
	Accent:         c("#ff966c", "#b15c00"),
	Error:          c("#ff757f", "#f52a65"),
	Success:        c("#c3e88d", "#587539"),
	Text:           c("#c8d3f5", "#3760bf"),
	TextMuted:      c("#636da6", "#848cb5"),
	ChipBackground: c("#1e2030", "#d5d6db"),
	BorderNormal:   c("#3b4261", "#a8aecb"),
	BorderFocused:  c("#82aaff", "#2e7de9"),
	BorderDim:      c("#292e42", "#c8c9ce"),
}

var catppuccin = Palette{
	Primary:        c("#89b4fa", "#1e66f5"),
	Secondary:      c("#cba6f7", "#8839ef"),
	Accent:         c("#fab387", "#fe640b"),
	Error:          c("#f38ba8", "#d20f39"),
	Success:        c("#a6e3a1", "#40a02b"),
	Text:           c("#cdd6f4", "#4c4f69"),
	TextMuted:      c("#6c7086", "#9ca0b0"),
	ChipBackground: c("#181825", "#dce0e8"),
	BorderNormal:   c("#6c7086", "#9ca0b0"),
	BorderFocused:  c("#89b4fa", "#1e66f5"),
	BorderDim:      c("#45475a", "#ccd0da"),
}

var gruvbox = Palette{
	Primary:        c("#83a598", "#076678"),
	Secondary:      c("#d3869b", "#8f3f71"),
	Accent:         c("#fabd2f", "#b57614"),
	Error:          c("#fb4934", "#9d0006"),
	Success:        c("#b8bb26", "#79740e"),
	Text:           c("#ebdbb2", "#3c3836"),
	TextMuted:      c("#a89984", "#7c6f64"),
	ChipBackground: c("#1d2021", "#d5c4a1"),
	BorderNormal:   c("#504945", "#bdae93"),
	BorderFocused:  c("#83a598", "#076678"),
	BorderDim:      c("#3c3836", "#d5c4a1"),
}

func init() {
	// tokyonight first so it is the default.
	Register("tokyonight", tokyoNight)
	Register("catppuccin", catppuccin)
	Register("gruvbox", gruvbox)
}
