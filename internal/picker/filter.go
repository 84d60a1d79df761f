package picker

import "strings"

// Filter returns the candidates whose label contains query (case-insensitive)
// and whose id is not already selected. Input order is kept. An empty query
// matches every unselected candidate.
func Filter(candidates []Option, query string, selected []Option) []Option {
	excluded := make(map[string]struct{}, len(selected))
	for _, opt := range selected {
		excluded[opt.ID()] = struct{}{}
	}

	needle := strings.ToLower(query)
	matches := make([]Option, 0, len(candidates))
	for _, opt := range candidates {
		if _, taken := excluded[opt.ID()]; taken {
			continue
		}
		if !strings.Contains(strings.ToLower(opt.Label), needle) {
			continue
		}
		matches = append(matches, opt)
	}
	return matches
}
