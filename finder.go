package main

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// finderState drives the fuzzy signal finder: a query input, the live
// ranked results, and the set of names picked so far. Picks survive query
// edits; only applying or cancelling leaves the finder.
type finderState struct {
	input   textinput.Model
	catalog []string
	results []string
	cursor  int
	picked  []string
}

func newFinderState(catalog, preselected []string) finderState {
	ti := textinput.New()
	ti.Placeholder = "signal name..."
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()

	f := finderState{
		input:   ti,
		catalog: catalog,
		picked:  append([]string(nil), preselected...),
	}
	f.refresh()
	return f
}

// refresh re-ranks the catalog against the current query and clamps the
// cursor into the new result list.
func (f *finderState) refresh() {
	f.results = rankSignals(f.input.Value(), f.catalog)
	if f.cursor >= len(f.results) {
		f.cursor = len(f.results) - 1
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
}

func (f *finderState) cursorUp() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *finderState) cursorDown() {
	if f.cursor < len(f.results)-1 {
		f.cursor++
	}
}

func (f *finderState) current() (string, bool) {
	if f.cursor < 0 || f.cursor >= len(f.results) {
		return "", false
	}
	return f.results[f.cursor], true
}

func (f *finderState) isPicked(name string) bool {
	for _, p := range f.picked {
		if p == name {
			return true
		}
	}
	return false
}

// togglePicked flips the highlighted result in and out of the pick set,
// keeping first-picked order.
func (f *finderState) togglePicked() {
	name, ok := f.current()
	if !ok {
		return
	}
	for i, p := range f.picked {
		if p == name {
			f.picked = append(f.picked[:i], f.picked[i+1:]...)
			return
		}
	}
	f.picked = append(f.picked, name)
}

// apply returns the final pick set. When nothing was toggled the
// highlighted result alone is returned, so enter on a match always shows
// something.
func (f *finderState) apply() []string {
	if len(f.picked) > 0 {
		return f.picked
	}
	if name, ok := f.current(); ok {
		return []string{name}
	}
	return nil
}
