package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andareed/siftly-wavedump/config"
	"github.com/andareed/siftly-wavedump/logging"
)

const Version = "0.3.0"

var (
	flagConfig string
	flagDebug  string
	flagWatch  bool
)

var rootCmd = &cobra.Command{
	Use:     "sfwave <trace.vcd>",
	Short:   "Terminal waveform viewer for VCD simulation dumps",
	Args:    cobra.ExactArgs(1),
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to config.toml")
	rootCmd.Flags().StringVar(&flagDebug, "debug", "", "write debug logs to file")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload when the trace file changes")
}

func run(path string) error {
	cleanup, err := logging.Setup(flagDebug)
	if err != nil {
		return errors.Wrap(err, "setting up logging")
	}
	defer cleanup()
	log.Println("sfwave: started")

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	var watcher *fsnotify.Watcher
	if flagWatch {
		watcher, err = newWatcher(path)
		if err != nil {
			return errors.Wrapf(err, "watching %q", path)
		}
		defer watcher.Close()
	}

	m := newModel(path, cfg, watcher)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	final, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "running program")
	}

	// A parse failure quits the event loop; report it as the exit error.
	if fm, ok := final.(*model); ok && fm.loadErr != nil {
		return fm.loadErr
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
