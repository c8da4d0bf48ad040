// Package vcd parses Value Change Dump traces into an immutable, time
// indexed waveform store.
package vcd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrKind classifies fatal parse failures.
type ErrKind int

const (
	UnexpectedToken ErrKind = iota
	MalformedHeader
	UnknownIdentifierCode
	TruncatedInput
)

func (k ErrKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case MalformedHeader:
		return "malformed header"
	case UnknownIdentifierCode:
		return "unknown identifier code"
	case TruncatedInput:
		return "truncated input"
	}
	return "parse error"
}

// ParseError is the single fatal error type of the parser. Construction of
// the Store aborts on the first ParseError; no partial Store is exposed.
type ParseError struct {
	Kind ErrKind
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Msg)
}

func parseErr(kind ErrKind, line int, format string, args ...interface{}) error {
	return &ParseError{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Directives the parser skips without inspecting their bodies.
var cosmeticDirectives = map[string]bool{
	"$date":    true,
	"$version": true,
	"$comment": true,
	"$dumpoff": true,
	"$dumpon":  true,
	"$dumpall": true,
}

type parser struct {
	line    int
	inDefs  bool
	inDump  bool
	scope   []string
	order   []string // identifier codes in declaration order
	byID    map[string]*Signal
	curTime uint64
	sawTime bool
	ts      Timescale
}

// Parse reads a VCD trace and builds the Store. Input is consumed as a
// stream; the whole file is never held in memory.
func Parse(r io.Reader) (*Store, error) {
	p := &parser{inDefs: true, byID: make(map[string]*Signal)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var dir []string // open multi-word directive, dir[0] is its keyword
	for sc.Scan() {
		p.line++
		fields := strings.Fields(sc.Text())
		for i := 0; i < len(fields); i++ {
			tok := fields[i]

			if dir != nil {
				if tok == "$end" {
					if err := p.closeDirective(dir); err != nil {
						return nil, err
					}
					dir = nil
				} else {
					dir = append(dir, tok)
				}
				continue
			}

			switch {
			case tok == "$dumpvars":
				// Initial-values block; its value tokens parse normally
				// and its $end just closes the block.
				p.inDump = true
				p.inDefs = false

			case tok == "$end":
				if p.inDump {
					p.inDump = false
					continue
				}
				return nil, parseErr(UnexpectedToken, p.line, "stray $end")

			case strings.HasPrefix(tok, "$"):
				dir = []string{tok}

			case strings.HasPrefix(tok, "#"):
				if err := p.timestamp(tok); err != nil {
					return nil, err
				}

			default:
				consumed, err := p.valueChange(tok, fields[i+1:])
				if err != nil {
					return nil, err
				}
				i += consumed
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, parseErr(TruncatedInput, p.line, "read failed: %v", err)
	}
	if dir != nil {
		return nil, parseErr(TruncatedInput, p.line, "unterminated %s directive", dir[0])
	}
	if p.inDefs {
		return nil, parseErr(TruncatedInput, p.line, "missing $enddefinitions")
	}

	return p.build(), nil
}

// ParseFile opens and parses a trace file.
func ParseFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open trace")
	}
	defer f.Close()
	st, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return st, nil
}

func (p *parser) closeDirective(dir []string) error {
	keyword, args := dir[0], dir[1:]
	switch keyword {
	case "$timescale":
		return p.timescale(args)
	case "$scope":
		if len(args) != 2 {
			return parseErr(MalformedHeader, p.line, "$scope wants <type> <name>, got %q", strings.Join(args, " "))
		}
		p.scope = append(p.scope, args[1])
		return nil
	case "$upscope":
		if len(args) != 0 {
			return parseErr(MalformedHeader, p.line, "$upscope takes no arguments")
		}
		if len(p.scope) > 0 {
			p.scope = p.scope[:len(p.scope)-1]
		}
		return nil
	case "$var":
		return p.varDecl(args)
	case "$enddefinitions":
		p.inDefs = false
		return nil
	default:
		if cosmeticDirectives[keyword] || !p.inDefs {
			return nil
		}
		// Unknown header directives are treated as cosmetic too; the
		// declaration subset we act on is $timescale/$scope/$var.
		return nil
	}
}

// timescale parses the body of $timescale: "1ns", "10 us", "100ps"...
func (p *parser) timescale(args []string) error {
	body := strings.Join(args, "")
	if body == "" {
		return parseErr(MalformedHeader, p.line, "$timescale has no body")
	}
	i := 0
	for i < len(body) && body[i] >= '0' && body[i] <= '9' {
		i++
	}
	if i == 0 {
		return parseErr(MalformedHeader, p.line, "$timescale %q has no magnitude", body)
	}
	mag, err := strconv.ParseUint(body[:i], 10, 64)
	if err != nil {
		return parseErr(MalformedHeader, p.line, "$timescale magnitude %q: %v", body[:i], err)
	}
	unit := body[i:]
	switch unit {
	case "s", "ms", "us", "ns", "ps", "fs":
	default:
		return parseErr(MalformedHeader, p.line, "$timescale unit %q is not a VCD time unit", unit)
	}
	p.ts = Timescale{Magnitude: mag, Unit: unit}
	return nil
}

// varDecl parses the body of $var: <type> <width> <code> <name> [index].
func (p *parser) varDecl(args []string) error {
	if len(args) < 4 {
		return parseErr(MalformedHeader, p.line, "$var wants <type> <width> <code> <name>, got %q", strings.Join(args, " "))
	}
	width, err := strconv.Atoi(args[1])
	if err != nil || width < 1 {
		return parseErr(MalformedHeader, p.line, "$var width %q is not a positive integer", args[1])
	}
	code := args[2]

	// The reference may be split as "name [7:0]"; glue any index back on.
	name := strings.Join(args[3:], "")

	full := name
	if len(p.scope) > 0 {
		full = strings.Join(p.scope, ".") + "." + name
	}

	kind := Scalar
	if width > 1 {
		kind = Vector
	}
	if prev, ok := p.byID[code]; ok {
		// Some dumpers re-declare a code for aliased nets. Keep the first
		// binding, as long as the width agrees.
		if prev.Width != width {
			return parseErr(MalformedHeader, p.line, "identifier code %q re-declared with width %d (was %d)", code, width, prev.Width)
		}
		return nil
	}
	p.byID[code] = &Signal{ID: code, Name: full, Width: width, Kind: kind}
	p.order = append(p.order, code)
	return nil
}

func (p *parser) timestamp(tok string) error {
	if p.inDefs {
		return parseErr(UnexpectedToken, p.line, "timestamp %q before $enddefinitions", tok)
	}
	t, err := strconv.ParseUint(tok[1:], 10, 64)
	if err != nil {
		return parseErr(UnexpectedToken, p.line, "bad timestamp %q", tok)
	}
	if p.sawTime && t < p.curTime {
		return parseErr(UnexpectedToken, p.line, "timestamp #%d goes backwards (current #%d)", t, p.curTime)
	}
	p.curTime = t
	p.sawTime = true
	return nil
}

// valueChange parses one value-change token. Vector and real tokens consume
// the following field (the identifier code); the return value is how many
// extra fields were eaten.
func (p *parser) valueChange(tok string, rest []string) (int, error) {
	if p.inDefs {
		return 0, parseErr(UnexpectedToken, p.line, "value change %q before $enddefinitions", tok)
	}

	switch tok[0] {
	case '0', '1', 'x', 'X', 'z', 'Z':
		// Scalar: one state character immediately followed by the code.
		if len(tok) < 2 {
			return 0, parseErr(UnexpectedToken, p.line, "scalar token %q has no identifier code", tok)
		}
		b, _ := bitFromRune(rune(tok[0]))
		return 0, p.record(tok[1:], scalarValue(b))

	case 'b', 'B':
		bits := make(Value, 0, len(tok)-1)
		for _, r := range tok[1:] {
			b, ok := bitFromRune(r)
			if !ok {
				return 0, parseErr(UnexpectedToken, p.line, "bad bit %q in vector token %q", r, tok)
			}
			bits = append(bits, b)
		}
		if len(bits) == 0 {
			return 0, parseErr(UnexpectedToken, p.line, "vector token %q has no bits", tok)
		}
		if len(rest) == 0 {
			return 0, parseErr(UnexpectedToken, p.line, "vector token %q has no identifier code", tok)
		}
		return 1, p.recordVector(rest[0], bits)

	case 'r', 'R':
		// Real-number values are outside the four-state model; record the
		// text as an all-X placeholder so the timeline stays complete.
		if len(rest) == 0 {
			return 0, parseErr(UnexpectedToken, p.line, "real token %q has no identifier code", tok)
		}
		sig, ok := p.byID[rest[0]]
		if !ok {
			return 0, parseErr(UnknownIdentifierCode, p.line, "identifier code %q was never declared", rest[0])
		}
		return 1, p.record(rest[0], AllX(sig.Width))
	}
	return 0, parseErr(UnexpectedToken, p.line, "unrecognized token %q in value-change section", tok)
}

func (p *parser) recordVector(code string, bits Value) error {
	sig, ok := p.byID[code]
	if !ok {
		return parseErr(UnknownIdentifierCode, p.line, "identifier code %q was never declared", code)
	}
	return p.record(code, extend(bits, sig.Width))
}

// record appends a change, coalescing duplicate writes within a timestamp
// block so the last write at a timestamp wins.
func (p *parser) record(code string, v Value) error {
	sig, ok := p.byID[code]
	if !ok {
		return parseErr(UnknownIdentifierCode, p.line, "identifier code %q was never declared", code)
	}
	if sig.Kind == Scalar && len(v) != 1 {
		v = extend(v, 1)
	}
	if n := len(sig.changes); n > 0 && sig.changes[n-1].Time == p.curTime {
		sig.changes[n-1].Val = v
		return nil
	}
	sig.changes = append(sig.changes, Change{Time: p.curTime, Val: v})
	return nil
}

func (p *parser) build() *Store {
	st := &Store{
		byName: make(map[string]*Signal, len(p.order)),
		ts:     p.ts,
		tmax:   p.curTime,
	}
	for _, code := range p.order {
		sig := p.byID[code]
		st.signals = append(st.signals, sig)
		st.byName[sig.Name] = sig
		if n := len(sig.changes); n > 0 && sig.changes[n-1].Time > st.tmax {
			st.tmax = sig.changes[n-1].Time
		}
	}
	return st
}
