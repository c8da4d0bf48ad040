package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andareed/siftly-wavedump/config"
)

func readoutModel(t *testing.T) *model {
	t.Helper()
	m := newModel("test.vcd", config.Default(), nil)
	m.store = renderStore(t)
	m.display.SetAll(m.store.Signals())
	return m
}

func TestMarkerReadoutShowsLevel(t *testing.T) {
	m := readoutModel(t)

	assert.Equal(t, "", m.markerReadout(), "no readout without a marker")

	// Between changes: the steady value.
	m.markers.SetAtTime(MarkerPrimary, 7, 15)
	assert.Equal(t, "top.clk @ 7 ns = 1", m.markerReadout())
}

func TestMarkerReadoutShowsTransitionOnChange(t *testing.T) {
	m := readoutModel(t)

	// Exactly on the rising edge at #5.
	m.markers.SetAtTime(MarkerPrimary, 5, 15)
	assert.Equal(t, "top.clk @ 5 ns = 0->1", m.markerReadout())

	// Falling edge at #10.
	m.markers.SetAtTime(MarkerPrimary, 10, 15)
	assert.Equal(t, "top.clk @ 10 ns = 1->0", m.markerReadout())

	// The initial value at #0 transitions out of the undriven state.
	m.markers.SetAtTime(MarkerPrimary, 0, 15)
	assert.Equal(t, "top.clk @ 0 ns = X->0", m.markerReadout())
}

func TestMarkerReadoutVectorTransition(t *testing.T) {
	m := readoutModel(t)
	m.display.CursorDown() // top.bus

	m.markers.SetAtTime(MarkerPrimary, 5, 15)
	assert.Equal(t, "top.bus @ 5 ns = 0x00->0xAA", m.markerReadout())

	m.markers.SetAtTime(MarkerPrimary, 8, 15)
	assert.Equal(t, "top.bus @ 8 ns = 0xAA (170)", m.markerReadout())
}
