package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"userpicker/internal/debug"
	"userpicker/internal/picker"
	"userpicker/internal/ui/theme"
)

// Config describes the page hosting one Select.
type Config struct {
	Title         string
	Placeholder   string
	Width         int
	MaxVisible    int
	DismissOnBlur bool
	Display       Display
	Options       []picker.Option

	// SaveTheme persists a theme picked with ctrl+t. Optional.
	SaveTheme func(name string) error
	// CopyText writes to the clipboard. Defaults to the system clipboard.
	CopyText func(text string) error
}

// App is the Bubble Tea model for the picker page.
type App struct {
	cfg    Config
	sel    Select
	keys   appKeyMap
	help   help.Model
	toast  string
	width  int
	done   bool
	copyFn func(string) error
}

// NewApp validates the options and builds the page with the input focused.
func NewApp(cfg Config) (*App, error) {
	ctl, err := picker.New(cfg.Options)
	if err != nil {
		return nil, err
	}

	sel := NewSelect(ctl).
		WithPlaceholder(cfg.Placeholder).
		WithMaxVisible(cfg.MaxVisible).
		WithDismissOnBlur(cfg.DismissOnBlur).
		WithDisplay(cfg.Display)
	if cfg.Width > 0 {
		sel = sel.WithWidth(cfg.Width)
	}
	cfg.Width = sel.Width
	sel.Focus()

	copyFn := cfg.CopyText
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	return &App{
		cfg:    cfg,
		sel:    sel,
		keys:   defaultAppKeyMap(sel.KeyMap),
		help:   help.New(),
		copyFn: copyFn,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		a.fitWidth()
		return a, nil

	case tea.KeyMsg:
		if cmd, handled := a.handleHostKey(msg); handled {
			return a, cmd
		}

	case SelectAddedMsg:
		a.toast = fmt.Sprintf("Added %s", msg.Option.Label)
		return a, nil

	case SelectRemovedMsg:
		a.toast = fmt.Sprintf("Removed %s", msg.Option.Label)
		return a, nil

	case SelectClearedMsg:
		a.toast = fmt.Sprintf("Cleared %d selected", msg.Count)
		return a, nil
	}

	var cmd tea.Cmd
	a.sel, cmd = a.sel.Update(msg)
	return a, cmd
}

func (a *App) handleHostKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit, true

	case key.Matches(msg, a.keys.Done):
		a.done = true
		debug.Log("selection confirmed", "count", len(a.sel.Selected()))
		return tea.Quit, true

	case key.Matches(msg, a.keys.ToggleFocus):
		if a.sel.Focused() {
			a.sel.Blur()
			return nil, true
		}
		return a.sel.Focus(), true

	case key.Matches(msg, a.keys.Copy):
		a.copySelection()
		return nil, true

	case key.Matches(msg, a.keys.CycleTheme):
		name := theme.CycleTheme()
		a.toast = "Theme: " + name
		if a.cfg.SaveTheme != nil {
			if err := a.cfg.SaveTheme(name); err != nil {
				debug.Log("save theme failed", "theme", name, "err", err)
			}
		}
		return nil, true
	}
	return nil, false
}

func (a *App) copySelection() {
	selected := a.sel.Selected()
	if len(selected) == 0 {
		a.toast = "Nothing selected to copy"
		return
	}
	labels := make([]string, len(selected))
	for i, opt := range selected {
		labels[i] = opt.Label
	}
	if err := a.copyFn(strings.Join(labels, ", ")); err != nil {
		debug.Log("clipboard write failed", "err", err)
		a.toast = "Copy failed: " + err.Error()
		return
	}
	a.toast = fmt.Sprintf("Copied %d to clipboard", len(selected))
}

// fitWidth narrows the Select on small terminals, never widening past the
// configured width.
func (a *App) fitWidth() {
	want := a.cfg.Width
	if a.width > 0 && a.width-6 < want {
		want = a.width - 6
	}
	if want < 10 {
		want = 10
	}
	a.sel = a.sel.WithWidth(want)
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	title := a.cfg.Title
	if title == "" {
		title = "Pick Users"
	}
	b.WriteString(styleTitle().Render(title))
	b.WriteString("\n")
	b.WriteString(a.sel.View())
	b.WriteString("\n")

	if detail := a.detailLine(); detail != "" {
		b.WriteString(styleDetail().Render(detail))
		b.WriteString("\n")
	}
	if a.toast != "" {
		b.WriteString(styleToast().Render(a.toast))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))

	return scanZones(b.String())
}

// detailLine describes the highlighted candidate using its display fields.
func (a *App) detailLine() string {
	opt, ok := a.sel.Highlighted()
	if !ok {
		return ""
	}
	parts := []string{opt.Label}
	if opt.Value.Email != "" {
		parts = append(parts, "<"+opt.Value.Email+">")
	}
	if opt.Value.Avatar != "" {
		parts = append(parts, "avatar: "+opt.Value.Avatar)
	}
	line := strings.Join(parts, " ")
	if a.sel.Width > 0 {
		line = wordwrap.String(line, a.sel.Width+4)
	}
	return line
}

// Result returns the selection and whether the user confirmed it with ctrl+d.
func (a *App) Result() ([]picker.Option, bool) {
	return a.sel.Selected(), a.done
}
