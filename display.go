package main

// DisplayEntry is one signal shown in the waveform view.
type DisplayEntry struct {
	Name     string
	Selected bool
}

// DisplayList is the ordered, user-chosen subset of the store's signals
// shown on screen. Order is stable unless the user reorders it, and a
// signal never appears twice.
type DisplayList struct {
	entries []DisplayEntry
	cursor  int
}

func (d *DisplayList) Len() int { return len(d.entries) }

// Names returns the displayed signal names in display order.
func (d *DisplayList) Names() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.Name
	}
	return names
}

func (d *DisplayList) Entry(i int) (DisplayEntry, bool) {
	if i < 0 || i >= len(d.entries) {
		return DisplayEntry{}, false
	}
	return d.entries[i], true
}

func (d *DisplayList) indexOf(name string) int {
	for i, e := range d.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Append adds a signal to the end of the list. Appending a signal that is
// already listed is a no-op; the return value reports whether the list
// changed.
func (d *DisplayList) Append(name string) bool {
	if d.indexOf(name) >= 0 {
		return false
	}
	d.entries = append(d.entries, DisplayEntry{Name: name})
	return true
}

// RemoveAt drops the entry at index i.
func (d *DisplayList) RemoveAt(i int) {
	if i < 0 || i >= len(d.entries) {
		return
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	if d.cursor >= len(d.entries) && d.cursor > 0 {
		d.cursor = len(d.entries) - 1
	}
}

// MoveUp swaps entry i with the one above it and returns the new index.
func (d *DisplayList) MoveUp(i int) int {
	if i <= 0 || i >= len(d.entries) {
		return i
	}
	d.entries[i-1], d.entries[i] = d.entries[i], d.entries[i-1]
	return i - 1
}

// MoveDown swaps entry i with the one below it and returns the new index.
func (d *DisplayList) MoveDown(i int) int {
	if i < 0 || i >= len(d.entries)-1 {
		return i
	}
	d.entries[i+1], d.entries[i] = d.entries[i], d.entries[i+1]
	return i + 1
}

// SetAll replaces the whole list, preserving the given order and dropping
// duplicates. Used when the fuzzy finder commits a new selection.
func (d *DisplayList) SetAll(names []string) {
	d.entries = d.entries[:0]
	for _, n := range names {
		d.Append(n)
	}
	if d.cursor >= len(d.entries) {
		d.cursor = 0
	}
}

// Cursor is the index of the highlighted row.
func (d *DisplayList) Cursor() int { return d.cursor }

// Current returns the highlighted signal name.
func (d *DisplayList) Current() (string, bool) {
	if d.cursor < 0 || d.cursor >= len(d.entries) {
		return "", false
	}
	return d.entries[d.cursor].Name, true
}

func (d *DisplayList) CursorUp() {
	if d.cursor > 0 {
		d.cursor--
	}
}

func (d *DisplayList) CursorDown() {
	if d.cursor < len(d.entries)-1 {
		d.cursor++
	}
}

// ToggleSelected flips the selection flag of entry i. Multiple entries may
// be selected at once.
func (d *DisplayList) ToggleSelected(i int) {
	if i < 0 || i >= len(d.entries) {
		return
	}
	d.entries[i].Selected = !d.entries[i].Selected
}

// SelectedIndices returns the indices of all selected entries in order.
func (d *DisplayList) SelectedIndices() []int {
	var out []int
	for i, e := range d.entries {
		if e.Selected {
			out = append(out, i)
		}
	}
	return out
}
