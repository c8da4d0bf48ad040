// Package config loads sfwave's TOML configuration, layered over built-in
// defaults. A missing config file is not an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type UI struct {
	SignalListWidth int    `toml:"signal_list_width"`
	WaveHigh        string `toml:"wave_high"`
	WaveLow         string `toml:"wave_low"`
	WaveUnknown     string `toml:"wave_unknown"`
	WaveHighZ       string `toml:"wave_highz"`
	VectorLabel     string `toml:"vector_label"`
	MarkerPrimary   string `toml:"marker_primary"`
	MarkerSecondary string `toml:"marker_secondary"`
	Ruler           string `toml:"ruler"`
}

type Keybindings struct {
	PanLeft  string `toml:"pan_left"`
	PanRight string `toml:"pan_right"`
	ZoomIn   string `toml:"zoom_in"`
	ZoomOut  string `toml:"zoom_out"`
	ZoomFull string `toml:"zoom_full"`
}

type Config struct {
	UI   UI          `toml:"ui"`
	Keys Keybindings `toml:"keybindings"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI: UI{
			SignalListWidth: 20,
			WaveHigh:        "#50fa7b",
			WaveLow:         "#50fa7b",
			WaveUnknown:     "#ff5555",
			WaveHighZ:       "#f1fa8c",
			VectorLabel:     "#8be9fd",
			MarkerPrimary:   "#ff79c6",
			MarkerSecondary: "#bd93f9",
			Ruler:           "#6272a4",
		},
		Keys: Keybindings{
			PanLeft:  "h",
			PanRight: "l",
			ZoomIn:   "+",
			ZoomOut:  "-",
			ZoomFull: "0",
		},
	}
}

// DefaultPath returns the conventional config location under the user's
// config directory, or "" when that cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sfwave", "config.toml")
}

// Load reads the TOML file at path on top of the defaults. An empty path
// falls back to DefaultPath, and a file that does not exist yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "loading config %q", path)
	}
	if cfg.UI.SignalListWidth < 8 {
		return cfg, errors.Errorf("config %q: signal_list_width must be at least 8", path)
	}
	return cfg, nil
}
