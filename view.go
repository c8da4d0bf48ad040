package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/siftly-wavedump/logging"
	"github.com/andareed/siftly-wavedump/vcd"
)

// labelWidth is the width of the signal name column, from configuration.
func (m *model) labelWidth() int {
	return m.cfg.UI.SignalListWidth
}

// waveWidth is the number of columns available to the waveform area.
func (m *model) waveWidth() int {
	w := m.width - m.labelWidth() - 3 // margins + gap
	if w < 1 {
		w = 1
	}
	return w
}

// waveColAt maps a terminal x coordinate to a wave column, reporting false
// for clicks on the label column or outside the wave area.
func (m *model) waveColAt(x int) (int, bool) {
	col := x - m.labelWidth() - 2
	if col < 0 || col >= m.waveWidth() {
		return 0, false
	}
	return col, true
}

func (m *model) titleView() string {
	ts := m.store.Timescale()
	lo, hi := m.store.Bounds()
	title := fmt.Sprintf(" sfwave ▸ %s ▸ window [%s, %s] of [%s, %s]",
		m.path,
		ts.FormatTime(m.vp.Start), ts.FormatTime(m.vp.End),
		ts.FormatTime(lo), ts.FormatTime(hi),
	)
	return m.styles.title.Render(padRightPlain(truncatePlain(title, m.width), m.width))
}

func (m *model) rulerView() string {
	gutter := strings.Repeat(" ", m.labelWidth()+1)
	return gutter + m.styles.renderCells(projectRuler(m.vp, m.waveWidth()))
}

// projectRow builds the cell row for one signal over the current window,
// with markers stamped on top.
func (m *model) projectRow(name string) []Cell {
	chs := m.store.ChangesIn(name, m.vp.Start, m.vp.End)
	sig, ok := m.store.Signal(name)

	var row []Cell
	if ok && sig.Width == 1 {
		row = projectScalarRow(chs, m.vp, m.waveWidth())
	} else {
		row = projectVectorRow(chs, m.vp, m.waveWidth())
	}
	overlayMarkers(row, m.vp, &m.markers)
	return row
}

func (m *model) labelFor(i int, e DisplayEntry) string {
	name := truncate.StringWithTail(e.Name, uint(m.labelWidth()), "…")
	name = padRightPlain(name, m.labelWidth())

	st := m.styles.label
	if e.Selected {
		st = m.styles.labelPicked
	}
	if i == m.display.Cursor() {
		st = m.styles.labelSelected
	}
	return st.Render(name)
}

// renderWaves builds the label column plus projected rows for every
// displayed signal.
func (m *model) renderWaves() string {
	logging.Debugf("renderWaves: window=[%d,%d] width=%d signals=%d",
		m.vp.Start, m.vp.End, m.waveWidth(), m.display.Len())

	if m.display.Len() == 0 {
		return m.styles.faint.Render("  no signals displayed · / to find signals")
	}

	var b strings.Builder
	for i := 0; i < m.display.Len(); i++ {
		e, _ := m.display.Entry(i)
		b.WriteString(m.labelFor(i, e))
		b.WriteString(" ")
		b.WriteString(m.styles.renderCells(m.projectRow(e.Name)))
		b.WriteString("\n")
	}
	return b.String()
}

// markerReadout describes the signal under the cursor at the primary
// marker, shown in the status bar when nothing else claims it. A marker
// sitting exactly on a change shows the transition instead of the level.
func (m *model) markerReadout() string {
	t, ok := m.markers.Get(MarkerPrimary)
	if !ok {
		return ""
	}
	name, ok := m.display.Current()
	if !ok {
		return ""
	}
	ts := m.store.Timescale()
	v := m.store.ValueAt(name, t)

	before := vcd.AllX(len(v))
	if t > 0 {
		before = m.store.ValueAt(name, t-1)
	}
	if !before.Equal(v) {
		return fmt.Sprintf("%s @ %s = %s->%s",
			name, ts.FormatTime(t), formatValue(before), formatValue(v))
	}

	if len(v) == 1 {
		return fmt.Sprintf("%s @ %s = %s", name, ts.FormatTime(t), v.String())
	}
	return fmt.Sprintf("%s @ %s = 0x%s (%s)", name, ts.FormatTime(t), v.Hex(), v.Dec())
}

func formatValue(v vcd.Value) string {
	if len(v) == 1 {
		return v.String()
	}
	return "0x" + v.Hex()
}

// activeCommandLine is the command buffer with a cursor bar, shown in the
// footer while command mode is active.
func (m *model) activeCommandLine() string {
	buf := m.cmd.buf
	return ":" + string(buf[:m.cmd.cursor]) + "▌" + string(buf[m.cmd.cursor:])
}

func (m *model) footerView(width int) string {
	styles := defaultFooterStyles()
	ts := m.store.Timescale()

	st := footerState{
		Mode:         m.ui.mode,
		FileName:     m.path,
		Signal:       m.display.Cursor() + 1,
		TotalSignals: m.display.Len(),
		Legend:       "(? help · : command · / find · +/-/0 zoom · h/l pan · y copy)",
	}
	if m.ui.mode == modeCommand {
		st.ModeInput = m.activeCommandLine()
	}
	if t, ok := m.markers.Get(MarkerPrimary); ok {
		st.PrimaryLabel = ts.FormatTime(t)
	}
	if t, ok := m.markers.Get(MarkerSecondary); ok {
		st.SecondaryLabel = ts.FormatTime(t)
	}
	if d, ok := m.markers.Delta(); ok {
		st.DeltaLabel = ts.FormatTime(d)
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeLevel)
	}
	if st.StatusMessage == "" {
		st.StatusMessage = m.markerReadout()
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d win=[%d,%d] cur=%d",
			m.width, m.height, m.vp.Start, m.vp.End, m.display.Cursor())
	}

	return renderFooter(width, st, styles)
}

func (m *model) finderView() string {
	var b strings.Builder
	b.WriteString(m.finder.input.View())
	b.WriteString("\n\n")

	shown := m.finder.results
	const maxRows = 12
	start := 0
	if m.finder.cursor >= maxRows {
		start = m.finder.cursor - maxRows + 1
	}
	if start+maxRows < len(shown) {
		shown = shown[start : start+maxRows]
	} else {
		shown = shown[start:]
	}

	for i, name := range shown {
		idx := start + i
		mark := "  "
		if m.finder.isPicked(name) {
			mark = "✓ "
		}
		line := mark + name
		if idx == m.finder.cursor {
			line = m.styles.labelSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.finder.results) == 0 {
		b.WriteString(m.styles.faint.Render("  no matches"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.faint.Render("tab: toggle · enter: apply · esc: cancel"))
	return m.styles.input.Render(b.String())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.loading {
		return m.styles.faint.Render(fmt.Sprintf("\n  parsing %s ...", m.path))
	}
	if m.store == nil {
		return m.styles.faint.Render("\n  no trace loaded")
	}

	if m.ui.mode == modeHelp {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.helpView(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	parts := []string{m.titleView(), m.rulerView(), m.wavePort.View()}
	if m.ui.mode == modeFinder {
		parts = append(parts, m.finderView())
	}
	parts = append(parts, m.footerView(m.width))
	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
