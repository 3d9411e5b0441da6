// Package render turns a scan report into its output forms: HTML,
// Markdown, a console summary and an interactive browser.
package render

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes used across renderers
const (
	Reset    = "\x1b[0m"
	Bold     = "\x1b[1m"
	Dim      = "\x1b[2m"
	Cyan     = "\x1b[36m"
	Green    = "\x1b[32m"
	Yellow   = "\x1b[33m"
	BoldBlue = "\x1b[1;34m"
)

// GetTerminalWidth returns the width of stdout, or 80 when stdout is not
// a terminal.
func GetTerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// docParagraphs joins documentation lines and splits them into
// paragraphs on blank comment lines.
func docParagraphs(doc []string) []string {
	var paragraphs []string
	for _, block := range strings.Split(strings.Join(doc, "\n"), "\n\n") {
		block = strings.TrimSpace(strings.ReplaceAll(block, "\n", " "))
		if block != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphs
}
