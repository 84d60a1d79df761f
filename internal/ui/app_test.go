package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	appErrors "userpicker/internal/errors"
	"userpicker/internal/picker"
	"userpicker/internal/ui/theme"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) write(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestApp(t *testing.T, clip *fakeClipboard) *App {
	t.Helper()
	app, err := NewApp(Config{
		Title:    "Reviewers",
		Options:  testOptions(),
		Display:  Display{Secondary: SecondaryEmail},
		CopyText: clip.write,
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app
}

func sendKey(app *App, kt tea.KeyType) tea.Cmd {
	_, cmd := app.Update(tea.KeyMsg{Type: kt})
	return cmd
}

// drain runs cmd and feeds its message back, the way the runtime would.
func drain(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	app.Update(cmd())
}

func TestNewApp_RejectsDuplicateIDs(t *testing.T) {
	opts := picker.OptionsFrom([]picker.Candidate{{ID: "1", Label: "A"}, {ID: "1", Label: "B"}})
	_, err := NewApp(Config{Options: opts})
	if !appErrors.IsCode(err, appErrors.CodeDuplicateCandidate) {
		t.Fatalf("expected duplicate candidate error, got %v", err)
	}
}

func TestNewApp_StartsFocusedAndOpen(t *testing.T) {
	app := newTestApp(t, &fakeClipboard{})
	if !app.sel.Focused() || !app.sel.IsDropdownOpen() {
		t.Error("expected focused input with the dropdown open")
	}
}

func TestApp_DoneConfirmsSelection(t *testing.T) {
	app := newTestApp(t, &fakeClipboard{})
	drain(app, sendKey(app, tea.KeyEnter))

	cmd := sendKey(app, tea.KeyCtrlD)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}

	selected, confirmed := app.Result()
	if !confirmed {
		t.Error("ctrl+d should confirm")
	}
	if len(selected) != 1 || selected[0].Label != "Alice" {
		t.Errorf("unexpected result %v", optionLabels(selected))
	}
}

func TestApp_QuitDoesNotConfirm(t *testing.T) {
	app := newTestApp(t, &fakeClipboard{})
	cmd := sendKey(app, tea.KeyCtrlC)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, confirmed := app.Result(); confirmed {
		t.Error("ctrl+c must not confirm")
	}
}

func TestApp_ToastsFollowSelectMessages(t *testing.T) {
	app := newTestApp(t, &fakeClipboard{})

	drain(app, sendKey(app, tea.KeyEnter))
	if app.toast != "Added Alice" {
		t.Errorf("unexpected toast %q", app.toast)
	}

	drain(app, sendKey(app, tea.KeyBackspace))
	if app.toast != "Removed Alice" {
		t.Errorf("unexpected toast %q", app.toast)
	}

	app.sel.Focus()
	drain(app, sendKey(app, tea.KeyEnter))
	drain(app, sendKey(app, tea.KeyCtrlX))
	if app.toast != "Cleared 1 selected" {
		t.Errorf("unexpected toast %q", app.toast)
	}
}

func TestApp_TabTogglesFocus(t *testing.T) {
	app := newTestApp(t, &fakeClipboard{})

	sendKey(app, tea.KeyTab)
	if app.sel.Focused() {
		t.Fatal("expected tab to blur the input")
	}
	sendKey(app, tea.KeyTab)
	if !app.sel.Focused() {
		t.Fatal("expected second tab to focus the input")
	}
}

func TestApp_CopySelection(t *testing.T) {
	clip := &fakeClipboard{}
	app := newTestApp(t, clip)

	sendKey(app, tea.KeyCtrlY)
	if app.toast != "Nothing selected to copy" {
		t.Errorf("unexpected toast %q", app.toast)
	}

	drain(app, sendKey(app, tea.KeyEnter))
	app.sel.Focus()
	drain(app, sendKey(app, tea.KeyEnter))

	sendKey(app, tea.KeyCtrlY)
	if clip.text != "Alice, Bob" {
		t.Errorf("unexpected clipboard %q", clip.text)
	}
	if app.toast != "Copied 2 to clipboard" {
		t.Errorf("unexpected toast %q", app.toast)
	}
}

func TestApp_CopyFailure(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	app := newTestApp(t, clip)
	drain(app, sendKey(app, tea.KeyEnter))

	sendKey(app, tea.KeyCtrlY)
	if !strings.HasPrefix(app.toast, "Copy failed") {
		t.Errorf("unexpected toast %q", app.toast)
	}
}

func TestApp_CycleThemeSaves(t *testing.T) {
	original := theme.CurrentName()
	t.Cleanup(func() { theme.SetTheme(original) })

	var saved string
	app, err := NewApp(Config{
		Options:   testOptions(),
		SaveTheme: func(name string) error { saved = name; return nil },
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	sendKey(app, tea.KeyCtrlT)
	if saved == "" || saved == original {
		t.Errorf("expected a new theme to be saved, got %q", saved)
	}
	if saved != theme.CurrentName() {
		t.Errorf("saved %q but current is %q", saved, theme.CurrentName())
	}
	if app.toast != "Theme: "+saved {
		t.Errorf("unexpected toast %q", app.toast)
	}
}

func TestApp_WindowSizeNarrowsSelect(t *testing.T) {
	app := newTestApp(t, &fakeClipboard{})

	app.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	if app.sel.Width != 24 {
		t.Errorf("expected width 24, got %d", app.sel.Width)
	}

	app.Update(tea.WindowSizeMsg{Width: 200, Height: 20})
	if app.sel.Width != 50 {
		t.Errorf("select should return to its configured width and no wider, got %d", app.sel.Width)
	}
}

func TestApp_View(t *testing.T) {
	app := newTestApp(t, &fakeClipboard{})

	view := ansi.Strip(app.View())
	for _, want := range []string{"Reviewers", "Alice", "<alice@example.com>", "ctrl+d"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q:\n%s", want, view)
		}
	}
}
