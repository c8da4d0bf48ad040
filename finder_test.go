package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func finderWithQuery(catalog []string, preselected []string, query string) finderState {
	f := newFinderState(catalog, preselected)
	f.input.SetValue(query)
	f.refresh()
	return f
}

func TestFinderRanksOnEdit(t *testing.T) {
	f := finderWithQuery([]string{"top.data", "top.clk", "top.bclk"}, nil, "clk")
	assert.Equal(t, []string{"top.clk", "top.bclk"}, f.results)

	f.input.SetValue("")
	f.refresh()
	assert.Equal(t, []string{"top.data", "top.clk", "top.bclk"}, f.results)
}

func TestFinderTogglePersistsAcrossQueries(t *testing.T) {
	f := finderWithQuery([]string{"a.x", "a.y", "b.z"}, nil, "a")
	f.togglePicked() // a.x

	f.input.SetValue("b")
	f.refresh()
	f.togglePicked() // b.z

	assert.Equal(t, []string{"a.x", "b.z"}, f.apply())

	// Toggling again removes, keeping order of the rest.
	f.togglePicked()
	assert.Equal(t, []string{"a.x"}, f.apply())
}

func TestFinderEnterOnMatchWithoutToggle(t *testing.T) {
	f := finderWithQuery([]string{"clk", "rst"}, nil, "rst")
	assert.Equal(t, []string{"rst"}, f.apply())

	empty := finderWithQuery([]string{"clk"}, nil, "zzz")
	assert.Nil(t, empty.apply())
}

func TestFinderKeepsPreselection(t *testing.T) {
	f := finderWithQuery([]string{"a", "b", "c"}, []string{"b"}, "")
	assert.True(t, f.isPicked("b"))
	assert.Equal(t, []string{"b"}, f.apply())
}

func TestFinderCursorClampsOnRefresh(t *testing.T) {
	f := finderWithQuery([]string{"aa", "ab", "ac"}, nil, "a")
	f.cursorDown()
	f.cursorDown()
	assert.Equal(t, 2, f.cursor)

	f.input.SetValue("ab")
	f.refresh()
	assert.Equal(t, 0, f.cursor)

	name, ok := f.current()
	assert.True(t, ok)
	assert.Equal(t, "ab", name)
}
