package main

import (
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type fileChangedMsg struct{}

// newWatcher watches the trace file's directory. Watching the directory
// instead of the file survives editors and simulators that replace the
// file on write.
func newWatcher(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// waitForChange blocks on the watcher until the trace file is written or
// recreated, then reports a fileChangedMsg. The model re-arms it after
// every reload.
func waitForChange(w *fsnotify.Watcher, path string) tea.Cmd {
	return func() tea.Msg {
		base := filepath.Base(path)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					log.Printf("watch: %s changed (%s)", ev.Name, ev.Op)
					return fileChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				log.Printf("watch: error: %v", err)
			}
		}
	}
}
