package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkInvariant(t *testing.T, v Viewport) {
	t.Helper()
	assert.Less(t, v.Start, v.End, "start must stay below end")
	assert.LessOrEqual(t, v.End, v.TMax)
	assert.GreaterOrEqual(t, v.Width(), uint64(minViewportWidth))
}

func TestViewportInvariantUnderOperations(t *testing.T) {
	v := newViewport(1000)
	checkInvariant(t, v)

	ops := []func(){
		func() { v.StepIn() },
		func() { v.StepIn() },
		func() { v.Pan(-10000) },
		func() { v.Pan(10000) },
		func() { v.ZoomToFactor(100, 999) },
		func() { v.StepOut() },
		func() { v.Goto(0) },
		func() { v.Goto(5000) },
		func() { v.ZoomToSelection(990, 10) },
		func() { v.ZoomToFactor(1 << 62, 500) },
		func() { v.StepIn() },
		func() { v.ZoomFull() },
	}
	for _, op := range ops {
		op()
		checkInvariant(t, v)
	}
}

func TestZoomFullRestoresWholeTrace(t *testing.T) {
	v := newViewport(500)
	v.StepIn()
	v.Pan(100)
	v.StepIn()
	require.NotEqual(t, uint64(0), v.Start)

	v.ZoomFull()
	assert.Equal(t, uint64(0), v.Start)
	assert.Equal(t, uint64(500), v.End)
}

func TestZoomToSelectionSwapsAndClamps(t *testing.T) {
	v := newViewport(100)

	v.ZoomToSelection(9, 3)
	assert.Equal(t, uint64(3), v.Start)
	assert.Equal(t, uint64(9), v.End)

	// Degenerate selection still leaves a valid window.
	v.ZoomToSelection(50, 50)
	checkInvariant(t, v)
}

func TestGotoReportsClamping(t *testing.T) {
	v := newViewport(100)
	v.ZoomToSelection(0, 10)

	assert.False(t, v.Goto(50))
	assert.Equal(t, uint64(50), v.Midpoint())

	assert.True(t, v.Goto(9999))
	checkInvariant(t, v)
	assert.Equal(t, uint64(100), v.End)
}

func TestPanPreservesWidthAtEdges(t *testing.T) {
	v := newViewport(100)
	v.ZoomToSelection(40, 60)
	w := v.Width()

	v.Pan(-1000)
	assert.Equal(t, uint64(0), v.Start)
	assert.Equal(t, w, v.Width())

	v.Pan(1000)
	assert.Equal(t, uint64(100), v.End)
	assert.Equal(t, w, v.Width())
}

func TestTimeColumnRoundTrip(t *testing.T) {
	v := newViewport(1000)
	v.ZoomToSelection(100, 300)
	const width = 80

	// Columns map back to times that project onto the same column.
	for col := 0; col < width; col++ {
		tm := v.ColumnToTime(col, width)
		assert.Equal(t, col, v.TimeToColumn(tm, width), "col %d", col)
	}

	assert.Equal(t, v.Start, v.ColumnToTime(0, width))
	assert.Equal(t, v.End, v.ColumnToTime(width, width))
	assert.Equal(t, 0, v.TimeToColumn(v.Start, width))
}

func TestTimeToColumnMonotonic(t *testing.T) {
	v := newViewport(64)
	const width = 10

	prev := 0
	for tm := v.Start; tm <= v.End; tm++ {
		c := v.TimeToColumn(tm, width)
		assert.GreaterOrEqual(t, c, prev)
		assert.LessOrEqual(t, c, width)
		prev = c
	}
}
