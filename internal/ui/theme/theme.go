// Package theme holds the color palettes used by the picker UI.
package theme

import (
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Palette names the semantic colors the UI draws with. Every color adapts to
// light and dark terminals.
type Palette struct {
	Primary   lipgloss.AdaptiveColor // focused input border
	Secondary lipgloss.AdaptiveColor // highlighted dropdown entry
	Accent    lipgloss.AdaptiveColor // title
	Error     lipgloss.AdaptiveColor // dismiss and clear hover targets
	Success   lipgloss.AdaptiveColor // toasts

	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor

	ChipBackground lipgloss.AdaptiveColor

	BorderNormal  lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor
	BorderDim     lipgloss.AdaptiveColor
}

type registry struct {
	mu          sync.RWMutex
	palettes    map[string]Palette
	currentName string
}

var global = &registry{palettes: make(map[string]Palette)}

// Register adds a palette. The first one registered becomes current.
func Register(name string, p Palette) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.palettes[name] = p
	if global.currentName == "" {
		global.currentName = name
	}
}

// SetTheme switches to a registered palette and reports whether it exists.
func SetTheme(name string) bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	if _, ok := global.palettes[name]; !ok {
		return false
	}
	global.currentName = name
	return true
}

// Current returns the active palette.
func Current() Palette {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.palettes[global.currentName]
}

// CurrentName returns the active palette's name.
func CurrentName() string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.currentName
}

// Available lists registered palettes, sorted.
func Available() []string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.sortedNames()
}

// CycleTheme activates the next palette in sorted order and returns its name.
func CycleTheme() string {
	global.mu.Lock()
	defer global.mu.Unlock()

	names := global.sortedNames()
	if len(names) == 0 {
		return ""
	}
	next := 0
	for i, name := range names {
		if name == global.currentName {
			next = (i + 1) % len(names)
			break
		}
	}
	global.currentName = names[next]
	return global.currentName
}

func (r *registry) sortedNames() []string {
	names := make([]string, 0, len(r.palettes))
	for name := range r.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
