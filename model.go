package main

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/andareed/siftly-wavedump/clipboard"
	"github.com/andareed/siftly-wavedump/config"
	"github.com/andareed/siftly-wavedump/vcd"
)

type storeLoadedMsg struct{ store *vcd.Store }
type parseFailedMsg struct{ err error }

type model struct {
	path string
	cfg  config.Config
	keys Keymap

	store   *vcd.Store
	vp      Viewport
	display DisplayList
	markers Markers
	cmd     commandState
	finder  finderState
	ui      uiState

	wavePort viewport.Model
	styles   *styles
	watcher  *fsnotify.Watcher

	width   int
	height  int
	ready   bool
	loading bool
	loadErr error
}

func newModel(path string, cfg config.Config, watcher *fsnotify.Watcher) *model {
	return &model{
		path:    path,
		cfg:     cfg,
		keys:    newKeymap(cfg.Keys),
		cmd:     newCommandState(),
		styles:  newStyles(cfg.UI),
		watcher: watcher,
		loading: true,
	}
}

// parseFileCmd parses the trace off the event loop so the UI stays
// responsive while large dumps load.
func parseFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		st, err := vcd.ParseFile(path)
		if err != nil {
			return parseFailedMsg{err: err}
		}
		return storeLoadedMsg{store: st}
	}
}

func (m *model) Init() tea.Cmd {
	log.Println("sfwave: initialised")
	cmds := []tea.Cmd{parseFileCmd(m.path)}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher, m.path))
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// title + ruler + footer + margins
		h := msg.Height - 6
		if h < 1 {
			h = 1
		}
		m.wavePort = viewport.New(msg.Width-2, h)
		m.ready = true
		m.refreshWaves()
		return m, nil

	case storeLoadedMsg:
		return m.applyStore(msg.store)

	case parseFailedMsg:
		m.loadErr = msg.err
		log.Printf("parse failed: %v", msg.err)
		return m, tea.Quit

	case fileChangedMsg:
		log.Printf("trace changed on disk, reloading %s", m.path)
		m.loading = true
		cmds := []tea.Cmd{parseFileCmd(m.path)}
		if m.watcher != nil {
			cmds = append(cmds, waitForChange(m.watcher, m.path))
		}
		return m, tea.Batch(cmds...)

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeLevel = noticeInfo
		}
		return m, nil
	}

	return m, nil
}

// applyStore installs a freshly parsed store. On reload the window,
// markers and display list survive as far as the new trace allows.
func (m *model) applyStore(st *vcd.Store) (tea.Model, tea.Cmd) {
	reload := m.store != nil
	m.store = st
	m.loading = false
	_, tmax := st.Bounds()

	if !reload {
		m.vp = newViewport(tmax)
		m.display.SetAll(st.Signals())
	} else {
		old := m.vp
		m.vp = newViewport(tmax)
		if old.End <= tmax {
			m.vp.Start, m.vp.End = old.Start, old.End
		}
		kept := make([]string, 0, m.display.Len())
		for _, name := range m.display.Names() {
			if _, ok := st.Signal(name); ok {
				kept = append(kept, name)
			}
		}
		m.display.SetAll(kept)
		for _, slot := range []MarkerSlot{MarkerPrimary, MarkerSecondary} {
			if t, ok := m.markers.Get(slot); ok {
				m.markers.SetAtTime(slot, t, tmax)
			}
		}
	}
	m.refreshWaves()

	if reload {
		return m, m.startNotice("trace reloaded", noticeSuccess, noticeDuration)
	}
	return m, nil
}

func (m *model) refreshWaves() {
	if m.ready && m.store != nil {
		m.wavePort.SetContent(m.renderWaves())
	}
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeNormal:
		return m.handleNormalModeKey(msg)
	case modeCommand:
		return m.handleCommandModeKey(msg)
	case modeFinder:
		return m.handleFinderModeKey(msg)
	case modeHelp:
		return m.handleHelpModeKey(msg)
	}
	return m, nil
}

func (m *model) handleNormalModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.store == nil {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.OpenHelp):
		m.ui.mode = modeHelp
	case key.Matches(msg, m.keys.OpenCommand):
		m.ui.mode = modeCommand
		m.cmd.reset()
	case key.Matches(msg, m.keys.OpenFinder):
		m.openFinder()
	case key.Matches(msg, m.keys.PanLeft):
		m.vp.Pan(-m.panStep())
	case key.Matches(msg, m.keys.PanRight):
		m.vp.Pan(m.panStep())
	case key.Matches(msg, m.keys.ZoomIn):
		m.vp.StepIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.vp.StepOut()
	case key.Matches(msg, m.keys.ZoomFull):
		m.vp.ZoomFull()
	case key.Matches(msg, m.keys.RowDown):
		m.display.CursorDown()
	case key.Matches(msg, m.keys.RowUp):
		m.display.CursorUp()
	case key.Matches(msg, m.keys.MoveSignalUp):
		m.display.MoveUp(m.display.Cursor())
		m.display.CursorUp()
	case key.Matches(msg, m.keys.MoveSignalDown):
		m.display.MoveDown(m.display.Cursor())
		m.display.CursorDown()
	case key.Matches(msg, m.keys.RemoveSignal):
		m.display.RemoveAt(m.display.Cursor())
	case key.Matches(msg, m.keys.ToggleSelect):
		m.display.ToggleSelected(m.display.Cursor())
	case key.Matches(msg, m.keys.ClearMarkers):
		m.markers.Clear(MarkerPrimary)
		m.markers.Clear(MarkerSecondary)
	case key.Matches(msg, m.keys.CopyValue):
		cmd = m.copyValueAtMarker()
	case key.Matches(msg, m.keys.GotoStart):
		m.vp.Goto(0)
	case key.Matches(msg, m.keys.GotoEnd):
		m.vp.Goto(m.vp.TMax)
	default:
		// pgup/pgdn and friends scroll the signal rows.
		m.wavePort, cmd = m.wavePort.Update(msg)
	}

	m.refreshWaves()
	return m, cmd
}

func (m *model) panStep() int64 {
	step := int64(m.vp.Width() / 10)
	if step < 1 {
		step = 1
	}
	return step
}

func (m *model) handleCommandModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.cmd.reset()
		m.ui.mode = modeNormal
		return m, nil
	case tea.KeyEnter:
		raw := m.cmd.commit()
		m.ui.mode = modeNormal
		cmd := m.runCommand(raw)
		m.refreshWaves()
		return m, cmd
	case tea.KeyUp:
		m.cmd.recallPrev()
	case tea.KeyDown:
		m.cmd.recallNext()
	case tea.KeyLeft:
		m.cmd.cursorLeft()
	case tea.KeyRight:
		m.cmd.cursorRight()
	case tea.KeyHome, tea.KeyCtrlA:
		m.cmd.cursorHome()
	case tea.KeyEnd, tea.KeyCtrlE:
		m.cmd.cursorEnd()
	case tea.KeyBackspace:
		m.cmd.backspace()
	case tea.KeyDelete:
		m.cmd.del()
	case tea.KeySpace:
		m.cmd.insert(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.cmd.insert(r)
		}
	}
	return m, nil
}

func (m *model) openFinder() {
	m.finder = newFinderState(m.store.Signals(), m.display.Names())
	m.ui.mode = modeFinder
}

func (m *model) handleFinderModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.ui.mode = modeNormal
		return m, nil
	case tea.KeyEnter:
		if picked := m.finder.apply(); picked != nil {
			m.display.SetAll(picked)
		}
		m.ui.mode = modeNormal
		m.refreshWaves()
		return m, nil
	case tea.KeyTab:
		m.finder.togglePicked()
		return m, nil
	case tea.KeyUp:
		m.finder.cursorUp()
		return m, nil
	case tea.KeyDown:
		m.finder.cursorDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.finder.input, cmd = m.finder.input.Update(msg)
	m.finder.refresh()
	return m, cmd
}

func (m *model) handleHelpModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q", "?":
		m.ui.mode = modeNormal
	}
	return m, nil
}

// dragThreshold is the minimum drag width, in columns, treated as a
// zoom-to-selection rather than a sloppy click.
const dragThreshold = 3

func (m *model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.store == nil || m.ui.mode != modeNormal {
		return m, nil
	}

	col, inWave := m.waveColAt(msg.X)

	switch {
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if inWave {
			m.ui.dragging = true
			m.ui.dragStart = col
			m.ui.dragEnd = col
		}

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionMotion:
		if m.ui.dragging && inWave {
			m.ui.dragEnd = col
		}

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		if !m.ui.dragging {
			break
		}
		m.ui.dragging = false
		if inWave {
			m.ui.dragEnd = col
		}
		a, b := m.ui.dragStart, m.ui.dragEnd
		if a > b {
			a, b = b, a
		}
		w := m.waveWidth()
		if b-a >= dragThreshold {
			m.vp.ZoomToSelection(m.vp.ColumnToTime(a, w), m.vp.ColumnToTime(b, w))
		} else {
			m.markers.SetAtColumn(MarkerPrimary, m.ui.dragStart, w, m.vp)
		}
		m.refreshWaves()

	case msg.Button == tea.MouseButtonRight && msg.Action == tea.MouseActionPress:
		if inWave {
			m.markers.SetAtColumn(MarkerSecondary, col, m.waveWidth(), m.vp)
			m.refreshWaves()
		}

	case msg.Button == tea.MouseButtonWheelUp:
		m.vp.StepIn()
		m.refreshWaves()

	case msg.Button == tea.MouseButtonWheelDown:
		m.vp.StepOut()
		m.refreshWaves()
	}

	return m, nil
}

// copyValueAtMarker puts the cursor signal's value at the primary marker
// on the clipboard.
func (m *model) copyValueAtMarker() tea.Cmd {
	name, ok := m.display.Current()
	if !ok {
		return m.startNotice("no signal under cursor", noticeWarn, noticeDuration)
	}
	t, ok := m.markers.Get(MarkerPrimary)
	if !ok {
		return m.startNotice("set marker 1 first", noticeWarn, noticeDuration)
	}

	v := m.store.ValueAt(name, t)
	text := v.String()
	if len(v) > 1 {
		text = "0x" + v.Hex()
	}
	if err := clipboard.Copy(text); err != nil {
		return m.startNotice(fmt.Sprintf("copy failed: %v", err), noticeError, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("copied %s", text), noticeSuccess, noticeDuration)
}
