package main

import (
	"fmt"
	"strings"
)

// helpView renders the full-screen help overlay: the key legend plus the
// command-mode grammar.
func (m *model) helpView() string {
	var lines []string
	for _, b := range m.keys.Legend() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}

	commands := []string{
		"",
		"commands (:)",
		fmt.Sprintf("%-22s %s", "zoom <factor>", "window = trace/factor at marker"),
		fmt.Sprintf("%-22s %s", "zoomfull | zf", "show whole trace"),
		fmt.Sprintf("%-22s %s", "goto <time>", "center window on a time"),
		fmt.Sprintf("%-22s %s", "marker <1|2> <time>", "place a marker"),
		fmt.Sprintf("%-22s %s", "markerclear <1|2>", "clear a marker"),
		fmt.Sprintf("%-22s %s", "findsignal | fs", "open the signal finder"),
		fmt.Sprintf("%-22s %s", "q | quit", "quit"),
	}

	hint := m.styles.faint.Render("enter/esc to return")
	content := strings.Join(lines, "\n") + "\n" + strings.Join(commands, "\n") + "\n\n" + hint
	return m.styles.helpBox.Render(content)
}
