package main

import "log"

// minViewportWidth keeps the time-to-column mapping well-defined; a window
// can never shrink below one tick.
const minViewportWidth = 1

// Viewport is the visible time window [Start, End] of the trace. All
// operations clamp into [0, TMax] and enforce the minimum width, so the
// invariant 0 <= Start < End <= TMax always holds.
type Viewport struct {
	Start uint64
	End   uint64
	TMax  uint64
}

func newViewport(tmax uint64) Viewport {
	if tmax < minViewportWidth {
		tmax = minViewportWidth
	}
	return Viewport{Start: 0, End: tmax, TMax: tmax}
}

// Width returns the window width in ticks.
func (v Viewport) Width() uint64 { return v.End - v.Start }

// Midpoint returns the center of the window.
func (v Viewport) Midpoint() uint64 { return v.Start + v.Width()/2 }

// Contains reports whether t falls inside the visible window.
func (v Viewport) Contains(t uint64) bool { return t >= v.Start && t <= v.End }

// ZoomFull resets the window to the whole trace.
func (v *Viewport) ZoomFull() {
	v.Start = 0
	v.End = v.TMax
	v.normalize()
}

// ZoomToFactor sets the window width to TMax/factor, re-centered on the
// anchor time. The caller picks the anchor: the primary marker when one is
// set, otherwise the current midpoint.
func (v *Viewport) ZoomToFactor(factor uint64, anchor uint64) {
	if factor == 0 {
		return
	}
	v.setCentered(anchor, v.TMax/factor)
}

// ZoomToSelection sets the window to the span between two times, in either
// order, clamped and width-floored.
func (v *Viewport) ZoomToSelection(t1, t2 uint64) {
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	v.Start = t1
	v.End = t2
	v.normalize()
	log.Printf("viewport: zoomed to selection [%d, %d]", v.Start, v.End)
}

// StepIn halves the window width around the midpoint.
func (v *Viewport) StepIn() {
	v.setCentered(v.Midpoint(), v.Width()/2)
}

// StepOut doubles the window width around the midpoint.
func (v *Viewport) StepOut() {
	v.setCentered(v.Midpoint(), v.Width()*2)
}

// Pan shifts both bounds by delta ticks. The width is preserved unless the
// window runs into an edge of [0, TMax].
func (v *Viewport) Pan(delta int64) {
	w := v.Width()
	if delta < 0 {
		d := uint64(-delta)
		if d > v.Start {
			d = v.Start
		}
		v.Start -= d
		v.End = v.Start + w
	} else {
		d := uint64(delta)
		if v.End+d > v.TMax || v.End+d < v.End {
			d = v.TMax - v.End
		}
		v.Start += d
		v.End += d
	}
	v.normalize()
}

// Goto recenters the existing-width window on t. The returned flag reports
// whether t had to be clamped into [0, TMax], so callers can tell the user
// about the adjustment.
func (v *Viewport) Goto(t uint64) (clamped bool) {
	if t > v.TMax {
		t = v.TMax
		clamped = true
	}
	v.setCentered(t, v.Width())
	return clamped
}

// setCentered places a window of the given width centered on t, clamped.
func (v *Viewport) setCentered(t, width uint64) {
	if width < minViewportWidth {
		width = minViewportWidth
	}
	if width > v.TMax {
		width = v.TMax
	}
	half := width / 2
	var start uint64
	if t > half {
		start = t - half
	}
	if start+width > v.TMax {
		start = v.TMax - width
	}
	v.Start = start
	v.End = start + width
	v.normalize()
}

// normalize re-establishes the viewport invariant after any mutation.
func (v *Viewport) normalize() {
	if v.End > v.TMax {
		v.End = v.TMax
	}
	if v.Start >= v.End {
		if v.End >= minViewportWidth {
			v.Start = v.End - minViewportWidth
		} else {
			v.Start = 0
			v.End = minViewportWidth
		}
	}
	if v.Width() < minViewportWidth {
		if v.Start+minViewportWidth <= v.TMax {
			v.End = v.Start + minViewportWidth
		} else {
			v.End = v.TMax
			v.Start = v.End - minViewportWidth
		}
	}
}

// TimeToColumn maps a time to a zero-based terminal column for a waveform
// area of the given width: floor((t-Start)/(End-Start) * width).
func (v Viewport) TimeToColumn(t uint64, width int) int {
	if width <= 0 || t <= v.Start {
		return 0
	}
	c := (t - v.Start) * uint64(width) / v.Width()
	if c > uint64(width) {
		c = uint64(width)
	}
	return int(c)
}

// ColumnToTime is the inverse mapping, used for click and drag handling.
// At integer column boundaries it is the exact inverse of TimeToColumn.
func (v Viewport) ColumnToTime(col, width int) uint64 {
	if width <= 0 || col <= 0 {
		return v.Start
	}
	if col >= width {
		return v.End
	}
	// Ceiling division: the first time whose column is col. This makes the
	// mapping an exact inverse of TimeToColumn at column boundaries.
	w := v.Width()
	return v.Start + (uint64(col)*w+uint64(width)-1)/uint64(width)
}
