package vcd

import (
	"fmt"
	"sort"
)

// SignalKind distinguishes single-bit signals from multi-bit buses.
type SignalKind int

const (
	Scalar SignalKind = iota
	Vector
)

// Change is one recorded value change of a signal.
type Change struct {
	Time uint64
	Val  Value
}

// Signal is one variable declared in the trace, together with its full
// change history. Timestamps in the history are strictly increasing;
// duplicate writes at the same timestamp are coalesced at parse time with
// the last write winning.
type Signal struct {
	ID      string // short identifier code from the $var declaration
	Name    string // full hierarchical name, scopes joined with '.'
	Width   int
	Kind    SignalKind
	changes []Change
}

// NumChanges returns how many value changes were recorded.
func (s *Signal) NumChanges() int { return len(s.changes) }

// ValueAt returns the value from the latest change with timestamp <= t, or
// an all-X value if t precedes the first recorded change.
func (s *Signal) ValueAt(t uint64) Value {
	// Index of the first change strictly after t.
	i := sort.Search(len(s.changes), func(i int) bool {
		return s.changes[i].Time > t
	})
	if i == 0 {
		return AllX(s.Width)
	}
	return s.changes[i-1].Val
}

// ChangesIn returns the changes intersecting [start, end], prefixed with a
// synthetic carry-in pair at start carrying ValueAt(start). Renderers never
// observe a gap at the window's left edge because of the carry-in.
func (s *Signal) ChangesIn(start, end uint64) []Change {
	out := []Change{{Time: start, Val: s.ValueAt(start)}}
	i := sort.Search(len(s.changes), func(i int) bool {
		return s.changes[i].Time > start
	})
	for ; i < len(s.changes) && s.changes[i].Time <= end; i++ {
		out = append(out, s.changes[i])
	}
	return out
}

// Timescale is the display time unit of the trace. Internal time is always
// an integer tick count; the timescale only affects formatting.
type Timescale struct {
	Magnitude uint64
	Unit      string
}

// FormatTime renders a tick count using the trace's timescale, e.g. 15
// ticks at "1 ns" renders as "15 ns".
func (ts Timescale) FormatTime(t uint64) string {
	if ts.Magnitude == 0 || ts.Unit == "" {
		return fmt.Sprintf("%d", t)
	}
	return fmt.Sprintf("%d %s", t*ts.Magnitude, ts.Unit)
}

func (ts Timescale) String() string {
	if ts.Magnitude == 0 || ts.Unit == "" {
		return "1 tick"
	}
	return fmt.Sprintf("%d %s", ts.Magnitude, ts.Unit)
}

// Store owns every signal parsed from a trace. It is immutable after
// construction and safe to share by reference without synchronization.
type Store struct {
	signals []*Signal
	byName  map[string]*Signal
	tmax    uint64
	ts      Timescale
}

// Signals returns the full signal-name catalog in declaration order.
func (st *Store) Signals() []string {
	names := make([]string, len(st.signals))
	for i, s := range st.signals {
		names[i] = s.Name
	}
	return names
}

// Signal looks a signal up by its full hierarchical name.
func (st *Store) Signal(name string) (*Signal, bool) {
	s, ok := st.byName[name]
	return s, ok
}

// ValueAt is Signal.ValueAt by name; unknown names report a single X bit.
func (st *Store) ValueAt(name string, t uint64) Value {
	s, ok := st.byName[name]
	if !ok {
		return AllX(1)
	}
	return s.ValueAt(t)
}

// ChangesIn is Signal.ChangesIn by name.
func (st *Store) ChangesIn(name string, start, end uint64) []Change {
	s, ok := st.byName[name]
	if !ok {
		return nil
	}
	return s.ChangesIn(start, end)
}

// Bounds returns the global time range [0, TMax].
func (st *Store) Bounds() (uint64, uint64) { return 0, st.tmax }

// Timescale returns the declared display timescale.
func (st *Store) Timescale() Timescale { return st.ts }
