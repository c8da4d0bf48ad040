package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-wavedump/config"
)

const (
	labelFGColor         = "#c0c0c0"
	labelSelectedFGColor = "#e0e0e0"
	labelSelectedBGColor = "#3a3a3a"
	pickedFGColor        = "#f5c542"
)

// styles holds every lipgloss style the view needs, built once from the
// loaded configuration.
type styles struct {
	app   lipgloss.Style
	title lipgloss.Style

	label         lipgloss.Style
	labelSelected lipgloss.Style
	labelPicked   lipgloss.Style

	cell map[CellClass]lipgloss.Style

	input   lipgloss.Style
	helpBox lipgloss.Style
	faint   lipgloss.Style
}

func newStyles(cfg config.UI) *styles {
	waveStyle := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &styles{
		app: lipgloss.NewStyle().Margin(0, 1),
		title: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#e0e0e0")).
			Background(lipgloss.Color("#2b2b2b")),

		label:         lipgloss.NewStyle().Foreground(lipgloss.Color(labelFGColor)),
		labelSelected: lipgloss.NewStyle().Foreground(lipgloss.Color(labelSelectedFGColor)).Background(lipgloss.Color(labelSelectedBGColor)),
		labelPicked:   lipgloss.NewStyle().Foreground(lipgloss.Color(pickedFGColor)),

		cell: map[CellClass]lipgloss.Style{
			CellLow:             waveStyle(cfg.WaveLow),
			CellHigh:            waveStyle(cfg.WaveHigh),
			CellRise:            waveStyle(cfg.WaveHigh),
			CellFall:            waveStyle(cfg.WaveLow),
			CellUnknown:         waveStyle(cfg.WaveUnknown),
			CellHighZ:           waveStyle(cfg.WaveHighZ),
			CellVector:          waveStyle(cfg.VectorLabel),
			CellEdge:            waveStyle(cfg.VectorLabel),
			CellLabel:           waveStyle(cfg.VectorLabel).Bold(true),
			CellRuler:           waveStyle(cfg.Ruler),
			CellTick:            waveStyle(cfg.Ruler).Bold(true),
			CellMarkerPrimary:   waveStyle(cfg.MarkerPrimary).Bold(true),
			CellMarkerSecondary: waveStyle(cfg.MarkerSecondary),
		},

		input: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1),
		helpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			Padding(1, 2).
			Width(60),
		faint: lipgloss.NewStyle().Faint(true),
	}
}

// renderCells turns a projected row into a styled string, batching runs of
// the same class so the output stays light on escape sequences.
func (s *styles) renderCells(cells []Cell) string {
	var out string
	var run []rune
	var runClass CellClass
	flush := func() {
		if len(run) == 0 {
			return
		}
		if st, ok := s.cell[runClass]; ok {
			out += st.Render(string(run))
		} else {
			out += string(run)
		}
		run = run[:0]
	}
	for _, c := range cells {
		if len(run) > 0 && c.Class != runClass {
			flush()
		}
		runClass = c.Class
		run = append(run, c.Glyph)
	}
	flush()
	return out
}
