package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankSignalsSubstringBeforeSubsequence(t *testing.T) {
	catalog := []string{"top.data", "top.clk2", "top.bclk", "top.clk"}

	got := rankSignals("clk", catalog)
	// All substring matches; shorter names first, catalog order on ties.
	assert.Equal(t, []string{"top.clk", "top.clk2", "top.bclk"}, got)
	assert.NotContains(t, got, "top.data")
}

func TestRankSignalsSubsequence(t *testing.T) {
	catalog := []string{"cpu.pc", "cpu.ctrl_kick", "mem.we"}

	got := rankSignals("ck", catalog)
	assert.Equal(t, []string{"cpu.ctrl_kick"}, got)
}

func TestRankSignalsCaseInsensitive(t *testing.T) {
	catalog := []string{"TOP.CLK", "top.rst"}
	assert.Equal(t, []string{"TOP.CLK"}, rankSignals("clk", catalog))
}

func TestRankSignalsEmptyQueryKeepsCatalogOrder(t *testing.T) {
	catalog := []string{"b", "a", "c"}
	assert.Equal(t, catalog, rankSignals("", catalog))
}

func TestRankSignalsMixedClasses(t *testing.T) {
	catalog := []string{"sig_cl_k", "clk_gate", "noise"}

	got := rankSignals("clk", catalog)
	// Substring match outranks the subsequence match regardless of length.
	assert.Equal(t, []string{"clk_gate", "sig_cl_k"}, got)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, matchSubstring, classify("clk", "top.clk"))
	assert.Equal(t, matchSubsequence, classify("tck", "top.clk"))
	assert.Equal(t, matchNone, classify("xyz", "top.clk"))
	assert.Equal(t, matchSubstring, classify("", "anything"))
}
