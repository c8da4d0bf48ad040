package vcd

import (
	"strconv"
	"strings"
)

// Bit is a single four-state logic value as it appears in a VCD dump.
type Bit byte

const (
	Bit0 Bit = '0'
	Bit1 Bit = '1'
	BitX Bit = 'X'
	BitZ Bit = 'Z'
)

func bitFromRune(r rune) (Bit, bool) {
	switch r {
	case '0':
		return Bit0, true
	case '1':
		return Bit1, true
	case 'x', 'X':
		return BitX, true
	case 'z', 'Z':
		return BitZ, true
	}
	return 0, false
}

// Value is a bit vector, most significant bit first. A scalar signal has a
// Value of length 1.
type Value []Bit

// AllX returns a Value of the given width with every bit unknown. This is
// what ValueAt reports for times before a signal's first recorded change.
func AllX(width int) Value {
	v := make(Value, width)
	for i := range v {
		v[i] = BitX
	}
	return v
}

func scalarValue(b Bit) Value { return Value{b} }

func (v Value) String() string {
	var sb strings.Builder
	for _, b := range v {
		sb.WriteByte(byte(b))
	}
	return sb.String()
}

func (v Value) Equal(o Value) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Bit returns the single bit of a scalar value, or BitX for anything else.
func (v Value) Bit() Bit {
	if len(v) != 1 {
		return BitX
	}
	return v[0]
}

func (v Value) hasState(b Bit) bool {
	for _, x := range v {
		if x == b {
			return true
		}
	}
	return false
}

// HasUnknown reports whether any bit is X.
func (v Value) HasUnknown() bool { return v.hasState(BitX) }

// HasHighZ reports whether any bit is Z.
func (v Value) HasHighZ() bool { return v.hasState(BitZ) }

// Hex renders the vector as uppercase hexadecimal, grouping four bits per
// digit from the least significant end. A nibble that is entirely Z renders
// as 'Z'; a nibble containing X or mixing Z with driven bits renders as 'X'.
func (v Value) Hex() string {
	if len(v) == 0 {
		return ""
	}
	ndigits := (len(v) + 3) / 4
	digits := make([]byte, ndigits)
	for d := 0; d < ndigits; d++ {
		// Nibble d counts from the least significant end.
		hi := len(v) - d*4
		lo := hi - 4
		if lo < 0 {
			lo = 0
		}
		nib := v[lo:hi]
		switch {
		case nib.hasState(BitX):
			digits[ndigits-1-d] = 'X'
		case nib.hasState(BitZ):
			if allZ(nib) {
				digits[ndigits-1-d] = 'Z'
			} else {
				digits[ndigits-1-d] = 'X'
			}
		default:
			var n byte
			for _, b := range nib {
				n <<= 1
				if b == Bit1 {
					n |= 1
				}
			}
			digits[ndigits-1-d] = "0123456789ABCDEF"[n]
		}
	}
	return string(digits)
}

func allZ(v Value) bool {
	for _, b := range v {
		if b != BitZ {
			return false
		}
	}
	return true
}

// Dec renders the vector as an unsigned decimal number. Vectors containing
// X or Z bits, or wider than 64 bits, fall back to the Hex rendering.
func (v Value) Dec() string {
	if len(v) > 64 || v.HasUnknown() || v.HasHighZ() {
		return v.Hex()
	}
	var n uint64
	for _, b := range v {
		n <<= 1
		if b == Bit1 {
			n |= 1
		}
	}
	return strconv.FormatUint(n, 10)
}

// extend left-pads bits out to width following VCD rules: X and Z extend
// with themselves, everything else extends with zero. Over-long vectors are
// truncated from the most significant end.
func extend(bits Value, width int) Value {
	if len(bits) == width {
		return bits
	}
	if len(bits) > width {
		return bits[len(bits)-width:]
	}
	pad := Bit0
	if len(bits) > 0 && (bits[0] == BitX || bits[0] == BitZ) {
		pad = bits[0]
	}
	out := make(Value, width)
	for i := 0; i < width-len(bits); i++ {
		out[i] = pad
	}
	copy(out[width-len(bits):], bits)
	return out
}
