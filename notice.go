package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeLevel grades transient status messages.
type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeSuccess
	noticeWarn
	noticeError
)

func (l noticeLevel) icon() string {
	switch l {
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	}
	return "ℹ"
}

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

// noticeText prefixes a message with its level's icon.
func noticeText(msg string, level noticeLevel) string {
	if msg == "" {
		return ""
	}
	return level.icon() + " " + msg
}

// startNotice shows a transient status message and schedules its expiry.
// The sequence number keeps an already-scheduled timer from clearing a
// newer notice.
func (m *model) startNotice(msg string, level noticeLevel, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeLevel = level

	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}
