// Package clipboard copies text to the system clipboard, falling back to
// an OSC 52 escape sequence when no native clipboard is reachable (ssh,
// bare containers).
package clipboard

import (
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/pkg/errors"

	"github.com/andareed/siftly-wavedump/logging"
)

// Copy writes text to the clipboard. The native clipboard is tried first;
// on failure the OSC 52 sequence is emitted for the hosting terminal to
// pick up.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		logging.Debugf("clipboard: copied %d bytes natively", len(text))
		return nil
	} else {
		logging.Warnf("clipboard: native copy failed: %v", err)
	}

	if !osc52Supported() {
		return errors.New("clipboard unavailable (no native clipboard, OSC52 unsupported)")
	}
	if _, err := osc52.New(text).WriteTo(os.Stderr); err != nil {
		return errors.Wrap(err, "writing OSC52 sequence")
	}
	logging.Infof("clipboard: copied via OSC52")
	return nil
}

func osc52Supported() bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isTTY(os.Stderr)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
