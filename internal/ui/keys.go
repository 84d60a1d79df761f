package ui

import "github.com/charmbracelet/bubbles/key"

// appKeyMap holds host-level bindings checked before input reaches the Select.
type appKeyMap struct {
	Quit        key.Binding
	Done        key.Binding
	ToggleFocus key.Binding
	Copy        key.Binding
	CycleTheme  key.Binding

	sel SelectKeyMap
}

func defaultAppKeyMap(sel SelectKeyMap) appKeyMap {
	return appKeyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Done:        key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "done")),
		ToggleFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Copy:        key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		CycleTheme:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		sel:         sel,
	}
}

// ShortHelp implements help.KeyMap.
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.sel.Down, k.sel.Commit, k.sel.ClearAll, k.Done, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.sel.Up, k.sel.Down, k.sel.Commit, k.sel.ClearAll},
		{k.ToggleFocus, k.Copy, k.CycleTheme},
		{k.Done, k.Quit},
	}
}
