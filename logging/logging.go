// Package logging routes the app's stdlib logger. The TUI owns the
// terminal, so logs are discarded unless a debug file is given.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var debugMode bool

// Setup configures logging. With an empty filename all output is
// discarded; otherwise logs append to the file and Bubble Tea's own debug
// log is pointed at it too.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	debugMode = true

	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}

	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// IsDebugMode reports whether a debug log file is active.
func IsDebugMode() bool { return debugMode }

func Debugf(format string, args ...interface{}) {
	if debugMode {
		log.Output(2, fmt.Sprintf(format, args...))
	}
}

func Infof(format string, args ...interface{}) {
	log.Output(2, fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...interface{}) {
	log.Output(2, "WARN "+fmt.Sprintf(format, args...))
}
