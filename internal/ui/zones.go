package ui

import (
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

var zonePrefixCounter atomic.Uint64

// zoneIDs names the clickable regions of one Select. The prefix keeps two
// mounted controls from sharing zone ids.
type zoneIDs struct {
	prefix string
}

func newZoneIDs() zoneIDs {
	return zoneIDs{prefix: fmt.Sprintf("select%d.", zonePrefixCounter.Add(1))}
}

func (z zoneIDs) option(id string) string { return z.prefix + "opt." + id }
func (z zoneIDs) chip(id string) string   { return z.prefix + "chip." + id }
func (z zoneIDs) clear() string           { return z.prefix + "clear" }
func (z zoneIDs) input() string           { return z.prefix + "input" }

// markZone tags s as a zone. Without a global zone manager it is a no-op.
func markZone(id, s string) string {
	if zone.DefaultManager == nil {
		return s
	}
	return zone.Mark(id, s)
}

// scanZones strips zone markers from a full frame and records their bounds.
func scanZones(view string) string {
	if zone.DefaultManager == nil {
		return view
	}
	return zone.Scan(view)
}

func inZone(id string, msg tea.MouseMsg) bool {
	if zone.DefaultManager == nil {
		return false
	}
	info := zone.Get(id)
	if info == nil {
		return false
	}
	return info.InBounds(msg)
}

// isLeftClick reports a left-button release; presses are ignored.
func isLeftClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft
}
