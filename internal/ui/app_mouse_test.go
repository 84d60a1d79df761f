package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// renderZone draws the app and waits for the zone manager to record id.
// Zone positions are stored asynchronously after Scan.
func renderZone(t *testing.T, app *App, id string) *zone.ZoneInfo {
	t.Helper()
	app.View()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if z := zone.Get(id); !z.IsZero() {
			return z
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("zone %q was never recorded", id)
	return nil
}

func leftRelease(z *zone.ZoneInfo) tea.MouseMsg {
	return tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func click(app *App, msg tea.MouseMsg) tea.Cmd {
	_, cmd := app.Update(msg)
	return cmd
}

func TestAppMouse_OptionThenChipDismiss(t *testing.T) {
	app := newTestApp(t, &fakeClipboard{})

	bob := renderZone(t, app, app.sel.zones.option("2"))
	cmd := click(app, leftRelease(bob))
	if cmd == nil {
		t.Fatal("expected an added command")
	}
	msg, ok := cmd().(SelectAddedMsg)
	if !ok || msg.Option.Label != "Bob" || !msg.ByPointer {
		t.Fatalf("unexpected message %#v", cmd())
	}
	app.Update(msg)
	if got := optionLabels(app.sel.Selected()); len(got) != 1 || got[0] != "Bob" {
		t.Fatalf("expected [Bob], got %v", got)
	}
	if app.sel.IsDropdownOpen() || app.sel.InputValue() != "" {
		t.Error("pointer selection should reset the input and close the dropdown")
	}
	if app.toast != "Added Bob" {
		t.Errorf("unexpected toast %q", app.toast)
	}

	chip := renderZone(t, app, app.sel.zones.chip("2"))
	cmd = click(app, leftRelease(chip))
	if cmd == nil {
		t.Fatal("expected a removed command")
	}
	if removed, ok := cmd().(SelectRemovedMsg); !ok || removed.Option.ID() != "2" {
		t.Fatalf("unexpected message %#v", cmd())
	}
	if len(app.sel.Selected()) != 0 {
		t.Errorf("expected chip × to empty the selection, got %v", optionLabels(app.sel.Selected()))
	}
}

func TestAppMouse_PressDoesNotActivate(t *testing.T) {
	app := newTestApp(t, &fakeClipboard{})

	bob := renderZone(t, app, app.sel.zones.option("2"))
	down := leftRelease(bob)
	down.Action = tea.MouseActionPress
	if cmd := click(app, down); cmd != nil {
		t.Errorf("press should not activate, got %#v", cmd())
	}

	right := leftRelease(bob)
	right.Button = tea.MouseButtonRight
	if cmd := click(app, right); cmd != nil {
		t.Errorf("right button should not activate, got %#v", cmd())
	}
	if len(app.sel.Selected()) != 0 {
		t.Errorf("expected nothing selected, got %v", optionLabels(app.sel.Selected()))
	}
}

func TestAppMouse_ClearAll(t *testing.T) {
	app := newTestApp(t, &fakeClipboard{})
	drain(app, sendKey(app, tea.KeyEnter))

	clearZone := renderZone(t, app, app.sel.zones.clear())
	at := leftRelease(clearZone)
	cmd := click(app, at)
	if cmd == nil {
		t.Fatal("expected a cleared command")
	}
	if cleared, ok := cmd().(SelectClearedMsg); !ok || cleared.Count != 1 {
		t.Fatalf("unexpected message %#v", cmd())
	}
	if app.sel.ShowClear() {
		t.Fatal("expected the selection to be empty")
	}

	// The × is gone from the screen but its last recorded bounds remain.
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if !zone.Get(app.sel.zones.clear()).InBounds(at) {
		t.Fatal("expected the stale clear zone to still cover the click")
	}
	if cmd := click(app, at); cmd != nil {
		t.Errorf("clear × must do nothing without a selection, got %#v", cmd())
	}
	if app.sel.InputValue() != "b" || !app.sel.IsDropdownOpen() {
		t.Errorf("typed query should survive, got %q open=%v", app.sel.InputValue(), app.sel.IsDropdownOpen())
	}
}

func TestAppMouse_InputFocuses(t *testing.T) {
	app := newTestApp(t, &fakeClipboard{})
	sendKey(app, tea.KeyTab)
	if app.sel.Focused() {
		t.Fatal("expected tab to blur the input")
	}

	input := renderZone(t, app, app.sel.zones.input())
	at := leftRelease(input)
	at.X++
	at.Y++
	click(app, at)

	if !app.sel.Focused() {
		t.Error("clicking the input should focus it")
	}
	if !app.sel.IsDropdownOpen() {
		t.Error("focusing an empty input should open the dropdown")
	}
}
