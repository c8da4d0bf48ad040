package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandGrammar(t *testing.T) {
	tests := []struct {
		in   string
		want command
	}{
		{"zoom 4", command{kind: cmdZoom, factor: 4}},
		{"  zoom   4  ", command{kind: cmdZoom, factor: 4}},
		{"zoomfull", command{kind: cmdZoomFull}},
		{"zf", command{kind: cmdZoomFull}},
		{"goto 1500", command{kind: cmdGoto, time: 1500}},
		{"marker 1 250", command{kind: cmdMarker, slot: MarkerPrimary, time: 250}},
		{"marker 2 0", command{kind: cmdMarker, slot: MarkerSecondary, time: 0}},
		{"markerclear 2", command{kind: cmdMarkerClear, slot: MarkerSecondary}},
		{"mc 1", command{kind: cmdMarkerClear, slot: MarkerPrimary}},
		{"findsignal", command{kind: cmdFindSignal}},
		{"fs", command{kind: cmdFindSignal}},
		{"q", command{kind: cmdQuit}},
		{"quit", command{kind: cmdQuit}},
		{"help", command{kind: cmdHelp}},
		{"h", command{kind: cmdHelp}},
	}
	for _, tt := range tests {
		got, err := parseCommand(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseCommandRejectsBadArguments(t *testing.T) {
	bad := []string{
		"zoom",
		"zoom abc",
		"zoom 0",
		"zoom -3",
		"goto",
		"goto x100",
		"marker 3 10",
		"marker 1",
		"markerclear 0",
	}
	for _, in := range bad {
		_, err := parseCommand(in)
		assert.Error(t, err, in)
		var ce *errCommand
		assert.ErrorAs(t, err, &ce, in)
	}
}

func TestParseCommandUnknownCarriesRaw(t *testing.T) {
	got, err := parseCommand("frobnicate 12")
	require.NoError(t, err)
	assert.Equal(t, cmdUnknown, got.kind)
	assert.Equal(t, "frobnicate 12", got.raw)
}

func TestCommandEditing(t *testing.T) {
	c := newCommandState()
	for _, r := range "zom 2" {
		c.insert(r)
	}
	// fix the typo: zom -> zoom
	c.cursorLeft()
	c.cursorLeft()
	c.cursorLeft()
	c.insert('o')
	assert.Equal(t, "zoom 2", c.text())

	c.cursorEnd()
	c.backspace()
	c.insert('4')
	assert.Equal(t, "zoom 4", c.text())

	c.cursorHome()
	c.del()
	assert.Equal(t, "oom 4", c.text())
}

func TestHistoryRecall(t *testing.T) {
	c := newCommandState()

	commit := func(s string) {
		c.reset()
		for _, r := range s {
			c.insert(r)
		}
		assert.Equal(t, s, c.commit())
	}

	commit("zoom 2")
	commit("goto 100")

	// Recall walks newest to oldest and never mutates history.
	c.recallPrev()
	assert.Equal(t, "goto 100", c.text())
	c.recallPrev()
	assert.Equal(t, "zoom 2", c.text())
	c.recallPrev()
	assert.Equal(t, "zoom 2", c.text(), "stays on oldest entry")
	c.recallNext()
	assert.Equal(t, "goto 100", c.text())
	c.recallNext()
	assert.Equal(t, "", c.text(), "draft restored")

	assert.Equal(t, []string{"zoom 2", "goto 100"}, c.history)
}

func TestHistoryKeepsInvalidEntries(t *testing.T) {
	c := newCommandState()
	for _, r := range "zoom abc" {
		c.insert(r)
	}
	c.commit()
	assert.Equal(t, []string{"zoom abc"}, c.history)

	// A blank commit is not recorded.
	c.insert(' ')
	c.commit()
	assert.Len(t, c.history, 1)
}

func TestRecallPreservesDraft(t *testing.T) {
	c := newCommandState()
	for _, r := range "marker 1 5" {
		c.insert(r)
	}
	c.commit()

	for _, r := range "zo" {
		c.insert(r)
	}
	c.recallPrev()
	assert.Equal(t, "marker 1 5", c.text())
	c.recallNext()
	assert.Equal(t, "zo", c.text())
}
