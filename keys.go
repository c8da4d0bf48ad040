package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/andareed/siftly-wavedump/config"
)

type Keymap struct {
	Quit            key.Binding
	OpenHelp        key.Binding
	OpenCommand     key.Binding
	OpenFinder      key.Binding
	PanLeft         key.Binding
	PanRight        key.Binding
	ZoomIn          key.Binding
	ZoomOut         key.Binding
	ZoomFull        key.Binding
	RowDown         key.Binding
	RowUp           key.Binding
	MoveSignalUp    key.Binding
	MoveSignalDown  key.Binding
	RemoveSignal    key.Binding
	ToggleSelect    key.Binding
	ClearMarkers    key.Binding
	CopyValue       key.Binding
	GotoStart       key.Binding
	GotoEnd         key.Binding
}

func newKeymap(kb config.Keybindings) Keymap {
	return Keymap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		OpenHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help / keys"),
		),
		OpenCommand: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command mode"),
		),
		OpenFinder: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find signals"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys(kb.PanLeft, "left"),
			key.WithHelp(kb.PanLeft+"/←", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys(kb.PanRight, "right"),
			key.WithHelp(kb.PanRight+"/→", "pan right"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys(kb.ZoomIn),
			key.WithHelp(kb.ZoomIn, "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys(kb.ZoomOut),
			key.WithHelp(kb.ZoomOut, "zoom out"),
		),
		ZoomFull: key.NewBinding(
			key.WithKeys(kb.ZoomFull),
			key.WithHelp(kb.ZoomFull, "zoom to full trace"),
		),
		RowDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next signal"),
		),
		RowUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous signal"),
		),
		MoveSignalUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move signal up"),
		),
		MoveSignalDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move signal down"),
		),
		RemoveSignal: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove signal from view"),
		),
		ToggleSelect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select signal"),
		),
		ClearMarkers: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear markers"),
		),
		CopyValue: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy value at marker"),
		),
		GotoStart: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to trace start"),
		),
		GotoEnd: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to trace end"),
		),
	}
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.OpenCommand,
		k.OpenFinder,
		k.PanLeft,
		k.PanRight,
		k.ZoomIn,
		k.ZoomOut,
		k.ZoomFull,
		k.RowUp,
		k.RowDown,
		k.MoveSignalUp,
		k.MoveSignalDown,
		k.RemoveSignal,
		k.ToggleSelect,
		k.ClearMarkers,
		k.CopyValue,
		k.GotoStart,
		k.GotoEnd,
		k.OpenHelp,
	}
}
