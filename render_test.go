package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-wavedump/vcd"
)

const renderTrace = `
$timescale 1ns $end
$scope module top $end
$var wire 1 ! clk $end
$var wire 8 " bus $end
$upscope $end
$enddefinitions $end
$dumpvars
0!
b00000000 "
$end
#5
1!
b10101010 "
#10
0!
#15
`

func renderStore(t *testing.T) *vcd.Store {
	t.Helper()
	st, err := vcd.Parse(strings.NewReader(renderTrace))
	require.NoError(t, err)
	return st
}

func glyphs(cells []Cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteRune(c.Glyph)
	}
	return b.String()
}

func TestProjectScalarRow(t *testing.T) {
	st := renderStore(t)
	vp := newViewport(15)
	const width = 15

	row := projectScalarRow(st.ChangesIn("top.clk", vp.Start, vp.End), vp, width)
	assert.Equal(t, "▁▁▁▁▁╱▔▔▔▔╲▁▁▁▁", glyphs(row))

	assert.Equal(t, CellRise, row[5].Class)
	assert.Equal(t, CellFall, row[10].Class)
	assert.Equal(t, CellLow, row[0].Class)
	assert.Equal(t, CellHigh, row[7].Class)
}

func TestProjectScalarRowCarryInFillsLeftEdge(t *testing.T) {
	st := renderStore(t)
	vp := newViewport(15)
	// Window starts mid-pulse; the first columns must show the high level,
	// never blanks.
	vp.ZoomToSelection(7, 15)
	const width = 8

	row := projectScalarRow(st.ChangesIn("top.clk", vp.Start, vp.End), vp, width)
	for i, c := range row {
		assert.NotEqual(t, CellBlank, c.Class, "column %d blank", i)
	}
	assert.Equal(t, CellHigh, row[0].Class)
}

func TestProjectScalarRowUnknownBeforeFirstChange(t *testing.T) {
	in := `
$timescale 1ns $end
$var wire 1 ! late $end
$enddefinitions $end
#10
1!
#20
`
	st, err := vcd.Parse(strings.NewReader(in))
	require.NoError(t, err)

	vp := newViewport(20)
	row := projectScalarRow(st.ChangesIn("late", vp.Start, vp.End), vp, 20)
	assert.Equal(t, CellUnknown, row[0].Class)
	assert.Equal(t, CellHigh, row[15].Class)
}

func TestProjectVectorRow(t *testing.T) {
	st := renderStore(t)
	vp := newViewport(15)
	const width = 30

	row := projectVectorRow(st.ChangesIn("top.bus", vp.Start, vp.End), vp, width)

	edge := vp.TimeToColumn(5, width)
	assert.Equal(t, CellEdge, row[edge].Class)
	assert.Equal(t, '│', row[edge].Glyph)

	// Hex labels appear inside their runs.
	assert.Contains(t, glyphs(row[:edge]), "00")
	assert.Contains(t, glyphs(row[edge+1:]), "AA")
}

func TestProjectVectorRowNarrowRunSkipsLabel(t *testing.T) {
	st := renderStore(t)
	vp := newViewport(15)
	const width = 4

	row := projectVectorRow(st.ChangesIn("top.bus", vp.Start, vp.End), vp, width)
	// Too narrow for "00"/"AA" labels, but still painted.
	for _, c := range row {
		assert.NotEqual(t, CellBlank, c.Class)
	}
}

func TestProjectRuler(t *testing.T) {
	vp := newViewport(100)
	const width = 20

	row := projectRuler(vp, width)
	assert.Equal(t, '┴', row[0].Glyph)

	// Spacing 50 keeps labels 10 columns apart: ticks at t=0 and t=50.
	tick := vp.TimeToColumn(50, width)
	assert.Equal(t, '┴', row[tick].Glyph)
	assert.Equal(t, '5', row[tick+1].Glyph)
	assert.Equal(t, '0', row[tick+2].Glyph)

	assert.Equal(t, '─', row[5].Glyph)
	assert.Equal(t, CellRuler, row[5].Class)
}

func TestOverlayMarkers(t *testing.T) {
	st := renderStore(t)
	vp := newViewport(15)
	const width = 15

	row := projectScalarRow(st.ChangesIn("top.clk", vp.Start, vp.End), vp, width)

	var mk Markers
	mk.SetAtTime(MarkerPrimary, 5, 15)
	mk.SetAtTime(MarkerSecondary, 12, 15)
	overlayMarkers(row, vp, &mk)

	assert.Equal(t, '┃', row[5].Glyph)
	assert.Equal(t, CellMarkerPrimary, row[5].Class)
	assert.Equal(t, '╎', row[12].Glyph)

	// Markers outside the window leave the row untouched.
	row2 := projectScalarRow(st.ChangesIn("top.clk", vp.Start, vp.End), vp, width)
	var mk2 Markers
	mk2.SetAtTime(MarkerPrimary, 99, 200)
	vp2 := vp
	overlayMarker(row2, vp2, 99, MarkerPrimary)
	for _, c := range row2 {
		assert.NotEqual(t, CellMarkerPrimary, c.Class)
	}
}
