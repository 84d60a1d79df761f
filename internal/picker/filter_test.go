package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func people() []Option {
	return OptionsFrom([]Candidate{
		{ID: "1", Label: "Alice"},
		{ID: "2", Label: "Bob"},
		{ID: "3", Label: "Albert"},
	})
}

func labels(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		selected []string
		want     []string
	}{
		{name: "substring keeps input order", query: "al", want: []string{"Alice", "Albert"}},
		{name: "case insensitive", query: "AL", want: []string{"Alice", "Albert"}},
		{name: "inner substring", query: "ber", want: []string{"Albert"}},
		{name: "empty query matches all", query: "", want: []string{"Alice", "Bob", "Albert"}},
		{name: "no match", query: "zed", want: []string{}},
		{name: "excludes selected", query: "al", selected: []string{"1"}, want: []string{"Albert"}},
		{name: "empty query excludes selected", query: "", selected: []string{"2"}, want: []string{"Alice", "Albert"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all := people()
			var selected []Option
			for _, id := range tt.selected {
				for _, o := range all {
					if o.ID() == id {
						selected = append(selected, o)
					}
				}
			}
			assert.Equal(t, tt.want, labels(Filter(all, tt.query, selected)))
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	all := people()
	before := labels(all)
	_ = Filter(all, "b", all[:1])
	assert.Equal(t, before, labels(all))
}

func TestFilterMatchesByIDNotLabel(t *testing.T) {
	all := OptionsFrom([]Candidate{
		{ID: "a", Label: "Sam"},
		{ID: "b", Label: "Sam"},
	})
	got := Filter(all, "sam", all[:1])
	if assert.Len(t, got, 1) {
		assert.Equal(t, "b", got[0].ID())
	}
}
