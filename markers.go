package main

import "log"

// MarkerSlot names the two measurement markers.
type MarkerSlot int

const (
	MarkerPrimary MarkerSlot = iota
	MarkerSecondary
)

func (s MarkerSlot) String() string {
	if s == MarkerPrimary {
		return "M1"
	}
	return "M2"
}

// Markers holds the two optional timestamped markers used for interval
// measurement. The renderer only ever reads them.
type Markers struct {
	set  [2]bool
	time [2]uint64
}

// Get returns the marker's timestamp and whether the slot is occupied.
func (m *Markers) Get(slot MarkerSlot) (uint64, bool) {
	return m.time[slot], m.set[slot]
}

// SetAtTime places a marker at t, clamped into [0, tmax].
func (m *Markers) SetAtTime(slot MarkerSlot, t, tmax uint64) {
	if t > tmax {
		t = tmax
	}
	m.set[slot] = true
	m.time[slot] = t
	log.Printf("markers: %s set to %d", slot, t)
}

// SetAtColumn places a marker at the time under a terminal column, using
// the viewport's column-to-time mapping.
func (m *Markers) SetAtColumn(slot MarkerSlot, col, width int, vp Viewport) {
	m.SetAtTime(slot, vp.ColumnToTime(col, width), vp.TMax)
}

// Clear empties a slot.
func (m *Markers) Clear(slot MarkerSlot) {
	m.set[slot] = false
	m.time[slot] = 0
}

// Delta returns |primary - secondary| when both markers are set.
func (m *Markers) Delta() (uint64, bool) {
	if !m.set[MarkerPrimary] || !m.set[MarkerSecondary] {
		return 0, false
	}
	a, b := m.time[MarkerPrimary], m.time[MarkerSecondary]
	if a < b {
		a, b = b, a
	}
	return a - b, true
}
