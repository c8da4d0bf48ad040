package main

import (
	"fmt"

	"github.com/andareed/siftly-wavedump/vcd"
)

// CellClass tags a projected cell so the view can color it without the
// projector knowing anything about styles or terminals.
type CellClass int

const (
	CellBlank CellClass = iota
	CellLow
	CellHigh
	CellRise
	CellFall
	CellUnknown
	CellHighZ
	CellVector
	CellEdge
	CellLabel
	CellRuler
	CellTick
	CellMarkerPrimary
	CellMarkerSecondary
)

// Cell is one terminal cell of a projected waveform row.
type Cell struct {
	Glyph rune
	Class CellClass
}

func blankRow(width int) []Cell {
	row := make([]Cell, width)
	for i := range row {
		row[i] = Cell{Glyph: ' ', Class: CellBlank}
	}
	return row
}

// scalarCell maps a one-bit value to its level glyph.
func scalarCell(v vcd.Value) Cell {
	switch v.Bit() {
	case vcd.Bit0:
		return Cell{Glyph: '▁', Class: CellLow}
	case vcd.Bit1:
		return Cell{Glyph: '▔', Class: CellHigh}
	case vcd.BitZ:
		return Cell{Glyph: 'z', Class: CellHighZ}
	}
	return Cell{Glyph: 'x', Class: CellUnknown}
}

// transitionCell maps an edge between two scalar values to a glyph. Edges
// into or out of an undriven state render as the unknown glyph.
func transitionCell(from, to vcd.Value) Cell {
	f, t := from.Bit(), to.Bit()
	if f == vcd.BitX || t == vcd.BitX || f == vcd.BitZ || t == vcd.BitZ {
		return Cell{Glyph: 'X', Class: CellUnknown}
	}
	if t == vcd.Bit1 {
		return Cell{Glyph: '╱', Class: CellRise}
	}
	return Cell{Glyph: '╲', Class: CellFall}
}

// projectScalarRow paints a one-bit signal across width columns for the
// viewport window. The change list must carry its window value at vp.Start
// in front, the way Store.ChangesIn returns it, so the left edge is never
// blank. Several changes collapsing into one column keep the last edge.
func projectScalarRow(chs []vcd.Change, vp Viewport, width int) []Cell {
	row := blankRow(width)
	if width <= 0 || len(chs) == 0 {
		return row
	}

	cur := chs[0].Val
	fill := scalarCell(cur)
	from := 0
	for _, ch := range chs[1:] {
		col := vp.TimeToColumn(ch.Time, width)
		if col >= width {
			col = width - 1
		}
		for c := from; c < col; c++ {
			row[c] = fill
		}
		row[col] = transitionCell(cur, ch.Val)
		cur = ch.Val
		fill = scalarCell(cur)
		from = col + 1
	}
	for c := from; c < width; c++ {
		row[c] = fill
	}
	return row
}

// projectVectorRow paints a multi-bit signal as value runs separated by
// edge bars, each run labelled with the value's hex form when it fits.
func projectVectorRow(chs []vcd.Change, vp Viewport, width int) []Cell {
	row := blankRow(width)
	if width <= 0 || len(chs) == 0 {
		return row
	}

	paintRun := func(from, to int, v vcd.Value) {
		class := CellVector
		if v.HasUnknown() || v.HasHighZ() {
			class = CellUnknown
		}
		for c := from; c < to; c++ {
			row[c] = Cell{Glyph: '─', Class: class}
		}
		label := v.Hex()
		if to-from >= len(label)+2 {
			for i, r := range label {
				row[from+1+i] = Cell{Glyph: r, Class: CellLabel}
			}
		}
	}

	cur := chs[0].Val
	from := 0
	for _, ch := range chs[1:] {
		col := vp.TimeToColumn(ch.Time, width)
		if col >= width {
			col = width - 1
		}
		paintRun(from, col, cur)
		row[col] = Cell{Glyph: '│', Class: CellEdge}
		cur = ch.Val
		from = col + 1
	}
	paintRun(from, width, cur)
	return row
}

// rulerSpacing picks a 1/2/5*10^n tick spacing in ticks so that adjacent
// labels stay at least minCols columns apart.
func rulerSpacing(vp Viewport, width, minCols int) uint64 {
	if width <= 0 {
		return 1
	}
	w := vp.Width()
	base := uint64(1)
	for {
		for _, mult := range []uint64{1, 2, 5} {
			spacing := base * mult
			cols := spacing * uint64(width) / w
			if cols >= uint64(minCols) {
				return spacing
			}
		}
		next := base * 10
		if next < base { // overflow
			return base
		}
		base = next
	}
}

// projectRuler paints the time axis: a tick and a decimal label at every
// multiple of the chosen spacing inside the window.
func projectRuler(vp Viewport, width int) []Cell {
	row := make([]Cell, width)
	for i := range row {
		row[i] = Cell{Glyph: '─', Class: CellRuler}
	}
	if width <= 0 {
		return row
	}

	spacing := rulerSpacing(vp, width, 10)
	first := (vp.Start + spacing - 1) / spacing * spacing
	for t := first; t <= vp.End; t += spacing {
		col := vp.TimeToColumn(t, width)
		if col >= width {
			break
		}
		row[col] = Cell{Glyph: '┴', Class: CellTick}
		label := fmt.Sprintf("%d", t)
		for i, r := range label {
			c := col + 1 + i
			if c >= width {
				break
			}
			row[c] = Cell{Glyph: r, Class: CellTick}
		}
		if t > t+spacing { // overflow
			break
		}
	}
	return row
}

// overlayMarker stamps a marker bar onto an already projected row.
func overlayMarker(row []Cell, vp Viewport, t uint64, slot MarkerSlot) {
	if !vp.Contains(t) || len(row) == 0 {
		return
	}
	col := vp.TimeToColumn(t, len(row))
	if col >= len(row) {
		col = len(row) - 1
	}
	if slot == MarkerPrimary {
		row[col] = Cell{Glyph: '┃', Class: CellMarkerPrimary}
	} else {
		row[col] = Cell{Glyph: '╎', Class: CellMarkerSecondary}
	}
}

// overlayMarkers applies every set marker to a row, primary last so it wins
// when both land on the same column.
func overlayMarkers(row []Cell, vp Viewport, mk *Markers) {
	if t, ok := mk.Get(MarkerSecondary); ok {
		overlayMarker(row, vp, t, MarkerSecondary)
	}
	if t, ok := mk.Get(MarkerPrimary); ok {
		overlayMarker(row, vp, t, MarkerPrimary)
	}
}
