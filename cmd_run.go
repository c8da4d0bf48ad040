package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// runCommand parses and executes a committed command line. Invalid input
// only ever produces a notice; viewer state is untouched.
func (m *model) runCommand(raw string) tea.Cmd {
	cmd, err := parseCommand(raw)
	if err != nil {
		return m.startNotice(err.Error(), noticeWarn, noticeDuration)
	}

	switch cmd.kind {
	case cmdZoom:
		anchor := m.vp.Midpoint()
		if t, ok := m.markers.Get(MarkerPrimary); ok {
			anchor = t
		}
		m.vp.ZoomToFactor(cmd.factor, anchor)
		log.Printf("command: zoom %d -> [%d, %d]", cmd.factor, m.vp.Start, m.vp.End)

	case cmdZoomFull:
		m.vp.ZoomFull()

	case cmdGoto:
		if m.vp.Goto(cmd.time) {
			return m.startNotice(fmt.Sprintf("time clamped to %d", m.vp.TMax), noticeWarn, noticeDuration)
		}

	case cmdMarker:
		m.markers.SetAtTime(cmd.slot, cmd.time, m.vp.TMax)

	case cmdMarkerClear:
		m.markers.Clear(cmd.slot)

	case cmdFindSignal:
		m.openFinder()

	case cmdQuit:
		return tea.Quit

	case cmdHelp:
		m.ui.mode = modeHelp

	case cmdUnknown:
		return m.startNotice(fmt.Sprintf("unknown command: %s", cmd.raw), noticeWarn, noticeDuration)
	}
	return nil
}
