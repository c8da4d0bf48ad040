package vcd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One scalar signal with an initial value, a pulse at #5..#10, and a
// trailing timestamp extending the declared range to 15.
const pulseTrace = `
$timescale 1ns $end
$scope module top $end
$var wire 1 ! a $end
$upscope $end
$enddefinitions $end
$dumpvars
0!
$end
#5
1!
#10
0!
#15
`

func pulseStore(t *testing.T) *Store {
	t.Helper()
	st, err := Parse(strings.NewReader(pulseTrace))
	require.NoError(t, err)
	return st
}

func TestValueAt(t *testing.T) {
	st := pulseStore(t)

	lo, hi := st.Bounds()
	assert.Equal(t, uint64(0), lo)
	assert.Equal(t, uint64(15), hi)

	assert.Equal(t, "0", st.ValueAt("top.a", 0).String())
	assert.Equal(t, "1", st.ValueAt("top.a", 7).String())
	assert.Equal(t, "0", st.ValueAt("top.a", 12).String())

	// Exactly on a change the new value is already in effect.
	assert.Equal(t, "1", st.ValueAt("top.a", 5).String())
	assert.Equal(t, "0", st.ValueAt("top.a", 10).String())
}

func TestValueAtBeforeFirstChangeIsUnknown(t *testing.T) {
	in := `
$timescale 1ns $end
$var wire 4 ! late $end
$enddefinitions $end
#100
b0110 !
`
	st, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	v := st.ValueAt("late", 50)
	assert.Equal(t, "XXXX", v.String())
	assert.True(t, v.HasUnknown())
	assert.Equal(t, "0110", st.ValueAt("late", 100).String())
}

func TestChangesInCarryIn(t *testing.T) {
	st := pulseStore(t)

	// Window starts after the pulse began; the carry-in pair at the window
	// start keeps the left edge continuous.
	chs := st.ChangesIn("top.a", 7, 15)
	require.Len(t, chs, 2)
	assert.Equal(t, uint64(7), chs[0].Time)
	assert.Equal(t, "1", chs[0].Val.String())
	assert.Equal(t, uint64(10), chs[1].Time)
	assert.Equal(t, "0", chs[1].Val.String())

	// Window before any change carries in the unknown state.
	in := `
$timescale 1ns $end
$var wire 1 ! b $end
$enddefinitions $end
#40
1!
`
	st2, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	chs = st2.ChangesIn("b", 0, 20)
	require.Len(t, chs, 1)
	assert.Equal(t, uint64(0), chs[0].Time)
	assert.Equal(t, "X", chs[0].Val.String())
}

func TestChangesInUnknownSignal(t *testing.T) {
	st := pulseStore(t)
	assert.Nil(t, st.ChangesIn("top.nope", 0, 10))
	assert.Equal(t, "X", st.ValueAt("top.nope", 0).String())
}

func TestTimescaleFormatting(t *testing.T) {
	ts := Timescale{Magnitude: 1, Unit: "ns"}
	assert.Equal(t, "15 ns", ts.FormatTime(15))
	assert.Equal(t, "1 ns", ts.String())

	ts = Timescale{Magnitude: 10, Unit: "ps"}
	assert.Equal(t, "120 ps", ts.FormatTime(12))

	var none Timescale
	assert.Equal(t, "7", none.FormatTime(7))
}

func TestValueFormatting(t *testing.T) {
	mk := func(s string) Value {
		v := make(Value, 0, len(s))
		for _, r := range s {
			b, ok := bitFromRune(r)
			require.True(t, ok)
			v = append(v, b)
		}
		return v
	}

	assert.Equal(t, "AA", mk("10101010").Hex())
	assert.Equal(t, "170", mk("10101010").Dec())
	assert.Equal(t, "5", mk("0101").Hex())
	assert.Equal(t, "5", mk("0101").Dec())

	// X contaminates its nibble, a fully floating nibble reads Z.
	assert.Equal(t, "XA", mk("0x011010").Hex())
	assert.Equal(t, "ZA", mk("zzzz1010").Hex())
	assert.Equal(t, "XA", mk("zz0z1010").Hex())

	// Dec falls back to hex when any bit is undriven.
	assert.Equal(t, "XA", mk("0x011010").Dec())

	assert.Equal(t, "XXXX", AllX(4).String())
}
