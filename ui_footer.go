package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
)

type footerState struct {
	Mode      mode
	ModeInput string

	FileName string

	PrimaryLabel   string
	SecondaryLabel string
	DeltaLabel     string

	Signal       int
	TotalSignals int

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

// renderFooter renders the 2-line footer: a control bar with the mode
// pill, file name, marker readouts and signal position, then a status bar
// with the current notice and the key legend.
func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Legend == "" {
		st.Legend = "(? help · : command · / find signal)"
	}
	if st.Signal < 0 {
		st.Signal = 0
	}
	if st.TotalSignals < 0 {
		st.TotalSignals = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	gapW := 1

	markers := markerSegmentText(st)
	markersW := runewidth.StringWidth(markers)

	rightPlain := fmt.Sprintf(" Sig %d/%d", st.Signal, st.TotalSignals)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runewidth.StringWidth(rightPlain)

	leftW := width - rightW
	if leftW < 0 {
		leftW = 0
	}

	modeColW := clampInt(leftW/4, 12, 24)
	fileColW := leftW - modeColW - markersW - 2*gapW
	if fileColW < 0 {
		deficit := -fileColW
		if markersW > 10 {
			shrink := minInt(deficit, markersW-10)
			markersW -= shrink
			markers = truncatePlain(markers, markersW)
			deficit -= shrink
		}
		if deficit > 0 && modeColW > 8 {
			modeColW = maxInt(8, modeColW-deficit)
		}
		fileColW = leftW - modeColW - markersW - 2*gapW
		if fileColW < 0 {
			fileColW = 0
		}
	}

	modeText := modeLabel(st.Mode)
	pillW := runewidth.StringWidth(modeText) + 2
	if pillW < modeColW {
		fileColW += modeColW - pillW
		modeColW = pillW
	}

	modeSeg := renderModeSegment(modeColW, modeText, styles)
	fileSeg := renderFileSegment(fileColW, st, styles)
	markerSeg := applyFG(padRightPlain(markers, markersW), styles.DimFG, styles.TextFG)

	left := modeSeg + strings.Repeat(" ", gapW) + fileSeg + strings.Repeat(" ", gapW) + markerSeg
	leftWActual := modeColW + fileColW + markersW + 2*gapW
	if leftWActual < leftW {
		left += strings.Repeat(" ", leftW-leftWActual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func markerSegmentText(st footerState) string {
	p, s, d := st.PrimaryLabel, st.SecondaryLabel, st.DeltaLabel
	if p == "" {
		p = "-"
	}
	if s == "" {
		s = "-"
	}
	if d == "" {
		return fmt.Sprintf("[M1: %s] · [M2: %s]", p, s)
	}
	return fmt.Sprintf("[M1: %s] · [M2: %s] · [Δ: %s]", p, s, d)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runewidth.StringWidth(legendPlain)

	leftW := width - legendW
	if leftW < 0 {
		leftW = 0
	}

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, modeText string, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	pillPlain := truncatePlain(" "+modeText+" ", colW)
	pad := strings.Repeat(" ", colW-runewidth.StringWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	remaining := colW
	filePlain := truncatePlain("▸ "+name, remaining)
	remaining -= runewidth.StringWidth(filePlain)

	inputPlain := ""
	if input := strings.TrimSpace(st.ModeInput); input != "" && remaining > 0 {
		inputPlain = truncatePlain(" ▸ "+input, remaining)
		remaining -= runewidth.StringWidth(inputPlain)
	}
	if remaining < 0 {
		remaining = 0
	}

	pad := strings.Repeat(" ", remaining)
	return applyFG(filePlain, styles.FileNameFG, styles.TextFG) + inputPlain + pad
}

func modeLabel(m mode) string {
	switch m {
	case modeCommand:
		return "COMMAND"
	case modeFinder:
		return "FINDER"
	case modeHelp:
		return "HELP"
	default:
		return "NORMAL"
	}
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + "\x1b[0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return "\x1b[49m"
		}
		return "\x1b[39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runewidth.StringWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
