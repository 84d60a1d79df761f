package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"userpicker/internal/debug"
	"userpicker/internal/picker"
)

// SelectAddedMsg is sent when an option joins the selection.
type SelectAddedMsg struct {
	Option    picker.Option
	ByPointer bool // chosen with the mouse rather than Enter
}

// SelectRemovedMsg is sent when a chip is removed, by Backspace or its ×.
type SelectRemovedMsg struct {
	Option picker.Option
}

// SelectClearedMsg is sent when the clear-all affordance empties the selection.
type SelectClearedMsg struct {
	Count int
}

// SecondaryField picks the extra text shown next to dropdown entries.
type SecondaryField string

const (
	SecondaryNone  SecondaryField = "none"
	SecondaryEmail SecondaryField = "email"
)

// Display holds presentation-only settings.
type Display struct {
	Secondary SecondaryField
	Avatars   bool
}

// SelectKeyMap lists the keys the Select reacts to besides text editing.
type SelectKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Commit   key.Binding
	ClearAll key.Binding
}

// DefaultSelectKeyMap returns the standard bindings.
func DefaultSelectKeyMap() SelectKeyMap {
	return SelectKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "add")),
		ClearAll: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear all")),
	}
}

// Select is a multi-select combobox: type to filter, arrows to move, Enter to
// add a chip, Backspace on an empty input to drop the last chip. All state
// transitions are delegated to a picker.Controller.
type Select struct {
	// Configuration
	Placeholder   string
	Width         int
	MaxVisible    int
	DismissOnBlur bool
	Display       Display
	KeyMap        SelectKeyMap

	ctl          *picker.Controller
	textInput    textinput.Model
	scrollOffset int
	focused      bool
	zones        zoneIDs
}

// NewSelect wraps ctl in a Select with default settings.
func NewSelect(ctl *picker.Controller) Select {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Prompt = "> "

	s := Select{
		Width:      50,
		MaxVisible: 5,
		Display:    Display{Secondary: SecondaryNone},
		KeyMap:     DefaultSelectKeyMap(),
		ctl:        ctl,
		textInput:  ti,
		zones:      newZoneIDs(),
	}
	s.textInput.Width = s.Width - 4
	return s
}

// WithPlaceholder sets the text shown while the input is empty.
func (s Select) WithPlaceholder(p string) Select {
	s.Placeholder = p
	s.textInput.Placeholder = p
	return s
}

// WithWidth sets the display width.
func (s Select) WithWidth(w int) Select {
	s.Width = w
	s.textInput.Width = w - 4
	return s
}

// WithMaxVisible sets how many dropdown entries show at once.
func (s Select) WithMaxVisible(n int) Select {
	if n > 0 {
		s.MaxVisible = n
	}
	return s
}

// WithDismissOnBlur closes the dropdown when focus leaves the input.
func (s Select) WithDismissOnBlur(v bool) Select {
	s.DismissOnBlur = v
	return s
}

// WithDisplay sets presentation options.
func (s Select) WithDisplay(d Display) Select {
	s.Display = d
	return s
}

// Init implements tea.Model.
func (s Select) Init() tea.Cmd {
	return nil
}

// Update routes keyboard and mouse input to the controller.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		return s.handleKey(msg)
	case tea.MouseMsg:
		return s.handleMouse(msg)
	}

	var cmd tea.Cmd
	s.textInput, cmd = s.textInput.Update(msg)
	return s, cmd
}

func (s Select) handleKey(msg tea.KeyMsg) (Select, tea.Cmd) {
	switch {
	case key.Matches(msg, s.KeyMap.Up):
		s.ctl.KeyDown(picker.KeyUp)
		s.adjustScrollOffset()
		return s, nil

	case key.Matches(msg, s.KeyMap.Down):
		s.ctl.KeyDown(picker.KeyDown)
		s.adjustScrollOffset()
		return s, nil

	case key.Matches(msg, s.KeyMap.Commit):
		cmd := s.commitHighlighted()
		return s, cmd

	case key.Matches(msg, s.KeyMap.ClearAll):
		cmd := s.clearAll()
		return s, cmd
	}

	if msg.Type == tea.KeyBackspace && s.textInput.Value() == "" {
		removed, ok := s.ctl.KeyDown(picker.KeyBackspace)
		if !ok {
			return s, nil
		}
		debug.Log("chip removed", "id", removed.ID(), "via", "backspace")
		return s, removedCmd(removed)
	}

	return s.editText(msg)
}

// editText lets the textinput apply an edit and reports any change of text
// to the controller.
func (s Select) editText(msg tea.KeyMsg) (Select, tea.Cmd) {
	before := s.textInput.Value()
	var cmd tea.Cmd
	s.textInput, cmd = s.textInput.Update(msg)
	if after := s.textInput.Value(); after != before {
		s.ctl.InputChanged(after)
		s.scrollOffset = 0
	}
	return s, cmd
}

func (s Select) handleMouse(msg tea.MouseMsg) (Select, tea.Cmd) {
	if !isLeftClick(msg) {
		return s, nil
	}

	if s.ctl.ShowClear() && inZone(s.zones.clear(), msg) {
		cmd := s.clearAll()
		return s, cmd
	}
	for _, opt := range s.ctl.Selected() {
		if inZone(s.zones.chip(opt.ID()), msg) {
			cmd := s.dismissChip(opt.ID())
			return s, cmd
		}
	}
	for _, opt := range s.visibleOptions() {
		if inZone(s.zones.option(opt.ID()), msg) {
			cmd := s.activateOption(opt)
			return s, cmd
		}
	}
	if !s.focused && inZone(s.zones.input(), msg) {
		cmd := s.Focus()
		return s, cmd
	}
	return s, nil
}

func (s *Select) commitHighlighted() tea.Cmd {
	opt, ok := s.ctl.CommitHighlighted()
	s.syncInput()
	if !ok {
		return nil
	}
	debug.Log("option committed", "id", opt.ID(), "label", opt.Label)
	return addedCmd(opt, false)
}

func (s *Select) activateOption(opt picker.Option) tea.Cmd {
	added := s.ctl.SelectOption(opt)
	s.syncInput()
	if !added {
		return nil
	}
	debug.Log("option clicked", "id", opt.ID(), "label", opt.Label)
	return addedCmd(opt, true)
}

func (s *Select) dismissChip(id string) tea.Cmd {
	removed, ok := s.ctl.RemoveSelected(id)
	if !ok {
		return nil
	}
	debug.Log("chip removed", "id", id, "via", "dismiss")
	return removedCmd(removed)
}

func (s *Select) clearAll() tea.Cmd {
	count := len(s.ctl.Selected())
	s.ctl.ClearAll()
	s.syncInput()
	if count == 0 {
		return nil
	}
	debug.Log("selection cleared", "count", count)
	return func() tea.Msg { return SelectClearedMsg{Count: count} }
}

func (s *Select) syncInput() {
	s.textInput.SetValue(s.ctl.Query())
	s.scrollOffset = 0
}

func addedCmd(opt picker.Option, byPointer bool) tea.Cmd {
	return func() tea.Msg { return SelectAddedMsg{Option: opt, ByPointer: byPointer} }
}

func removedCmd(opt picker.Option) tea.Cmd {
	return func() tea.Msg { return SelectRemovedMsg{Option: opt} }
}

// adjustScrollOffset keeps the highlighted entry inside the visible window.
func (s *Select) adjustScrollOffset() {
	highlight := s.ctl.Highlight()
	if highlight < s.scrollOffset {
		s.scrollOffset = highlight
	}
	if highlight >= s.scrollOffset+s.MaxVisible {
		s.scrollOffset = highlight - s.MaxVisible + 1
	}
	maxOffset := len(s.ctl.Filtered()) - s.MaxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.scrollOffset > maxOffset {
		s.scrollOffset = maxOffset
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

// visibleWindow returns the [start, end) slice of filtered entries on screen.
func (s Select) visibleWindow() (int, int) {
	n := len(s.ctl.Filtered())
	start := s.scrollOffset
	if start > n {
		start = n
	}
	end := start + s.MaxVisible
	if end > n {
		end = n
	}
	return start, end
}

func (s Select) visibleOptions() []picker.Option {
	start, end := s.visibleWindow()
	return s.ctl.Filtered()[start:end]
}

// Focus focuses the input and reopens the dropdown for the current query.
func (s *Select) Focus() tea.Cmd {
	s.focused = true
	s.ctl.Focus()
	s.scrollOffset = 0
	return s.textInput.Focus()
}

// Blur removes focus. The dropdown stays open unless DismissOnBlur is set.
func (s *Select) Blur() {
	s.focused = false
	s.textInput.Blur()
	if s.DismissOnBlur {
		s.ctl.Dismiss()
		s.scrollOffset = 0
	}
}

// Focused reports whether the input has focus.
func (s Select) Focused() bool {
	return s.focused
}

// IsDropdownOpen reports whether dropdown entries are showing.
func (s Select) IsDropdownOpen() bool {
	return s.ctl.IsOpen()
}

// Selected returns the chosen options in order.
func (s Select) Selected() []picker.Option {
	return s.ctl.Selected()
}

// Filtered returns the dropdown entries.
func (s Select) Filtered() []picker.Option {
	return s.ctl.Filtered()
}

// Highlight returns the dropdown cursor.
func (s Select) Highlight() int {
	return s.ctl.Highlight()
}

// Highlighted returns the option under the dropdown cursor.
func (s Select) Highlighted() (picker.Option, bool) {
	return s.ctl.Highlighted()
}

// InputValue returns the text in the input box.
func (s Select) InputValue() string {
	return s.textInput.Value()
}

// ShowClear reports whether the clear-all × is shown.
func (s Select) ShowClear() bool {
	return s.ctl.ShowClear()
}

// ScrollOffset returns the first visible dropdown index (for testing).
func (s Select) ScrollOffset() int {
	return s.scrollOffset
}
