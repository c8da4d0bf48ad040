package main

import (
	"fmt"
	"strconv"
	"strings"
)

type mode int

const (
	modeNormal mode = iota
	modeCommand
	modeFinder
	modeHelp
)

// commandState owns the command-mode text buffer, its cursor, and the
// command history. History recall replaces the buffer with progressively
// older entries without ever mutating the stored history.
type commandState struct {
	buf     []rune
	cursor  int
	history []string
	recall  int // index into history while recalling, -1 otherwise
	stash   string
}

func newCommandState() commandState {
	return commandState{recall: -1}
}

func (c *commandState) text() string { return string(c.buf) }

func (c *commandState) insert(r rune) {
	c.buf = append(c.buf[:c.cursor], append([]rune{r}, c.buf[c.cursor:]...)...)
	c.cursor++
}

// backspace deletes the character before the cursor.
func (c *commandState) backspace() {
	if c.cursor == 0 {
		return
	}
	c.buf = append(c.buf[:c.cursor-1], c.buf[c.cursor:]...)
	c.cursor--
}

// del deletes the character under the cursor.
func (c *commandState) del() {
	if c.cursor >= len(c.buf) {
		return
	}
	c.buf = append(c.buf[:c.cursor], c.buf[c.cursor+1:]...)
}

func (c *commandState) cursorLeft() {
	if c.cursor > 0 {
		c.cursor--
	}
}

func (c *commandState) cursorRight() {
	if c.cursor < len(c.buf) {
		c.cursor++
	}
}

func (c *commandState) cursorHome() { c.cursor = 0 }
func (c *commandState) cursorEnd()  { c.cursor = len(c.buf) }

// recallPrev loads the next-older history entry into the buffer. The
// current draft is stashed so recallNext can bring it back. Recalling past
// the oldest entry stays on the oldest.
func (c *commandState) recallPrev() {
	if len(c.history) == 0 {
		return
	}
	switch {
	case c.recall == -1:
		c.stash = c.text()
		c.recall = len(c.history) - 1
	case c.recall > 0:
		c.recall--
	default:
		return
	}
	c.buf = []rune(c.history[c.recall])
	c.cursor = len(c.buf)
}

// recallNext walks back toward the newest entry and finally restores the
// stashed draft.
func (c *commandState) recallNext() {
	if c.recall == -1 {
		return
	}
	if c.recall < len(c.history)-1 {
		c.recall++
		c.buf = []rune(c.history[c.recall])
	} else {
		c.recall = -1
		c.buf = []rune(c.stash)
	}
	c.cursor = len(c.buf)
}

// commit appends the raw buffer to history (valid or not), clears the
// buffer, and returns the raw text for parsing.
func (c *commandState) commit() string {
	raw := c.text()
	if strings.TrimSpace(raw) != "" {
		c.history = append(c.history, raw)
	}
	c.reset()
	return raw
}

func (c *commandState) reset() {
	c.buf = c.buf[:0]
	c.cursor = 0
	c.recall = -1
	c.stash = ""
}

type commandKind int

const (
	cmdUnknown commandKind = iota
	cmdZoom
	cmdZoomFull
	cmdGoto
	cmdMarker
	cmdMarkerClear
	cmdFindSignal
	cmdQuit
	cmdHelp
)

// command is one parsed command-mode entry.
type command struct {
	kind   commandKind
	factor uint64
	time   uint64
	slot   MarkerSlot
	raw    string
}

// errCommand marks invalid arguments to an otherwise recognized verb. It
// surfaces as a transient notice and never mutates viewer state.
type errCommand struct{ msg string }

func (e *errCommand) Error() string { return e.msg }

func commandErrf(format string, args ...interface{}) error {
	return &errCommand{msg: fmt.Sprintf(format, args...)}
}

// parseCommand interprets the committed command buffer:
//
//	zoom <factor> | zoomfull | zf | goto <time> | marker <1|2> <time> |
//	markerclear <1|2> | mc <1|2> | findsignal | fs | q | quit | help | h
//
// Unrecognized verbs yield cmdUnknown carrying the raw text.
func parseCommand(raw string) (command, error) {
	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return command{kind: cmdUnknown, raw: raw}, nil
	}

	switch parts[0] {
	case "zoom":
		if len(parts) != 2 {
			return command{}, commandErrf("usage: zoom <factor>")
		}
		f, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil || f == 0 {
			return command{}, commandErrf("invalid zoom factor %q", parts[1])
		}
		return command{kind: cmdZoom, factor: f}, nil

	case "zoomfull", "zf":
		return command{kind: cmdZoomFull}, nil

	case "goto":
		if len(parts) != 2 {
			return command{}, commandErrf("usage: goto <time>")
		}
		t, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return command{}, commandErrf("invalid time %q", parts[1])
		}
		return command{kind: cmdGoto, time: t}, nil

	case "marker":
		if len(parts) != 3 {
			return command{}, commandErrf("usage: marker <1|2> <time>")
		}
		slot, err := parseSlot(parts[1])
		if err != nil {
			return command{}, err
		}
		t, err := strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return command{}, commandErrf("invalid time %q", parts[2])
		}
		return command{kind: cmdMarker, slot: slot, time: t}, nil

	case "markerclear", "mc":
		if len(parts) != 2 {
			return command{}, commandErrf("usage: markerclear <1|2>")
		}
		slot, err := parseSlot(parts[1])
		if err != nil {
			return command{}, err
		}
		return command{kind: cmdMarkerClear, slot: slot}, nil

	case "findsignal", "fs":
		return command{kind: cmdFindSignal}, nil

	case "q", "quit":
		return command{kind: cmdQuit}, nil

	case "help", "h":
		return command{kind: cmdHelp}, nil
	}
	return command{kind: cmdUnknown, raw: raw}, nil
}

func parseSlot(s string) (MarkerSlot, error) {
	switch s {
	case "1":
		return MarkerPrimary, nil
	case "2":
		return MarkerSecondary, nil
	}
	return 0, commandErrf("marker slot must be 1 or 2, got %q", s)
}
