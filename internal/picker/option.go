// Package picker holds the selection state machine behind the multi-select
// combobox: filtering, highlight movement, commit and removal. It has no UI
// dependencies; the ui package projects its state and feeds it events.
package picker

import (
	"strings"

	appErrors "userpicker/internal/errors"
)

// Candidate is one selectable record. Only ID and Label matter to the
// controller; Avatar and Email are carried for display.
type Candidate struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Avatar string `json:"avatar,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Option pairs a display label with the candidate it stands for.
type Option struct {
	Label string
	Value Candidate
}

// ID returns the candidate id.
func (o Option) ID() string {
	return o.Value.ID
}

// NewOption builds an Option labelled with the candidate's label.
func NewOption(c Candidate) Option {
	return Option{Label: c.Label, Value: c}
}

// OptionsFrom wraps each candidate in an Option, preserving order.
func OptionsFrom(candidates []Candidate) []Option {
	opts := make([]Option, len(candidates))
	for i, c := range candidates {
		opts[i] = NewOption(c)
	}
	return opts
}

// ValidateOptions rejects empty and duplicate ids.
func ValidateOptions(options []Option) error {
	seen := make(map[string]int, len(options))
	for i, opt := range options {
		id := opt.ID()
		if strings.TrimSpace(id) == "" {
			return appErrors.Newf(appErrors.CodeInvalidCandidate, "candidate %d (%q) has an empty id", i, opt.Label)
		}
		if first, ok := seen[id]; ok {
			return appErrors.Newf(appErrors.CodeDuplicateCandidate,
				"duplicate candidate id %q at positions %d and %d", id, first, i)
		}
		seen[id] = i
	}
	return nil
}

func containsID(options []Option, id string) bool {
	for _, opt := range options {
		if opt.ID() == id {
			return true
		}
	}
	return false
}
