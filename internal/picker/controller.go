package picker

import "fmt"

// Key identifies the keys the controller reacts to. Character input arrives
// through InputChanged, not KeyDown.
type Key int

const (
	KeyOther Key = iota
	KeyBackspace
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	}
	return "other"
}

// Mode is the dropdown state derived from the filtered sequence.
type Mode int

const (
	// ModeClosed - nothing to show.
	ModeClosed Mode = iota
	// ModeOpen - filtered results visible with a live highlight.
	ModeOpen
)

// Controller owns the query, the selected and filtered sequences, and the
// highlight cursor. Every mutation goes through one of its event methods.
// It is not safe for concurrent use; events are expected one at a time.
type Controller struct {
	options   []Option
	query     string
	selected  []Option
	filtered  []Option
	highlight int
}

// New builds a controller over options. Options must have unique, non-empty ids.
func New(options []Option) (*Controller, error) {
	if err := ValidateOptions(options); err != nil {
		return nil, fmt.Errorf("build picker: %w", err)
	}
	opts := make([]Option, len(options))
	copy(opts, options)
	return &Controller{options: opts}, nil
}

// InputChanged records newly typed text. Non-empty text refilters; empty text
// closes the dropdown instead of showing everything.
func (c *Controller) InputChanged(text string) {
	c.query = text
	if len(text) == 0 {
		c.close()
		return
	}
	c.refilter()
}

// KeyDown applies a key press. Backspace on an empty query removes the last
// selected option, which is returned; arrows move the highlight circularly
// while the dropdown is open.
func (c *Controller) KeyDown(key Key) (Option, bool) {
	switch key {
	case KeyBackspace:
		if len(c.query) == 0 {
			return c.popSelected()
		}
	case KeyDown:
		if n := len(c.filtered); n > 0 {
			c.highlight = (c.highlight + 1) % n
		}
	case KeyUp:
		if n := len(c.filtered); n > 0 {
			c.highlight = ((c.highlight-1)%n + n) % n
		}
	}
	return Option{}, false
}

// CommitHighlighted appends the highlighted option, if any, then resets the
// query and closes the dropdown regardless.
func (c *Controller) CommitHighlighted() (Option, bool) {
	var (
		committed Option
		ok        bool
	)
	if c.highlight >= 0 && c.highlight < len(c.filtered) {
		committed = c.filtered[c.highlight]
		ok = c.appendSelected(committed)
	}
	c.query = ""
	c.close()
	return committed, ok
}

// SelectOption appends opt (pointer activation of a dropdown entry) and
// closes the dropdown. It reports false when opt's id was already selected.
func (c *Controller) SelectOption(opt Option) bool {
	added := c.appendSelected(opt)
	c.query = ""
	c.close()
	return added
}

// RemoveSelected drops the selected option with the given id. Unknown ids are
// ignored. Nothing else changes.
func (c *Controller) RemoveSelected(id string) (Option, bool) {
	for i, opt := range c.selected {
		if opt.ID() != id {
			continue
		}
		kept := make([]Option, 0, len(c.selected)-1)
		kept = append(kept, c.selected[:i]...)
		kept = append(kept, c.selected[i+1:]...)
		c.selected = kept
		return opt, true
	}
	return Option{}, false
}

// Focus refilters with the current query. An empty query lists every
// unselected option.
func (c *Controller) Focus() {
	c.refilter()
}

// Dismiss closes the dropdown and keeps the query.
func (c *Controller) Dismiss() {
	c.close()
}

// ClearAll empties the query, the selection and the dropdown.
func (c *Controller) ClearAll() {
	c.query = ""
	c.selected = nil
	c.close()
}

// Query returns the current input text.
func (c *Controller) Query() string {
	return c.query
}

// Options returns a copy of the full option list.
func (c *Controller) Options() []Option {
	return cloneOptions(c.options)
}

// Selected returns a copy of the selected sequence in insertion order.
func (c *Controller) Selected() []Option {
	return cloneOptions(c.selected)
}

// Filtered returns a copy of the visible dropdown entries.
func (c *Controller) Filtered() []Option {
	return cloneOptions(c.filtered)
}

// Highlight returns the highlight cursor. It is 0 when the dropdown is closed.
func (c *Controller) Highlight() int {
	return c.highlight
}

// Highlighted returns the option under the cursor.
func (c *Controller) Highlighted() (Option, bool) {
	if c.highlight < 0 || c.highlight >= len(c.filtered) {
		return Option{}, false
	}
	return c.filtered[c.highlight], true
}

// IsOpen reports whether the dropdown has entries.
func (c *Controller) IsOpen() bool {
	return len(c.filtered) > 0
}

// Mode returns ModeOpen when the dropdown has entries.
func (c *Controller) Mode() Mode {
	if c.IsOpen() {
		return ModeOpen
	}
	return ModeClosed
}

// ShowClear reports whether the clear-all affordance should be offered.
func (c *Controller) ShowClear() bool {
	return len(c.selected) > 0
}

func (c *Controller) refilter() {
	c.filtered = Filter(c.options, c.query, c.selected)
	c.highlight = 0
}

func (c *Controller) close() {
	c.filtered = nil
	c.highlight = 0
}

func (c *Controller) appendSelected(opt Option) bool {
	if containsID(c.selected, opt.ID()) {
		return false
	}
	c.selected = append(c.selected, opt)
	return true
}

func (c *Controller) popSelected() (Option, bool) {
	n := len(c.selected)
	if n == 0 {
		return Option{}, false
	}
	last := c.selected[n-1]
	c.selected = c.selected[:n-1:n-1]
	return last, true
}

func cloneOptions(opts []Option) []Option {
	if len(opts) == 0 {
		return []Option{}
	}
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}
