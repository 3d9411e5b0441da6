package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"svcdocs/scanner"
)

// Summary renders a boxed run summary with per-category function counts,
// the console counterpart of the full report.
func Summary(w io.Writer, report *scanner.Report) {
	titleLine := fmt.Sprintf(" %s ", filepath.Base(report.Root))
	statsLine := fmt.Sprintf("Categories: %d | Files: %d | Functions: %d",
		len(report.Categories), report.TotalFiles(), report.TotalFunctions())

	innerWidth := 64
	if len(statsLine)+4 > innerWidth {
		innerWidth = len(statsLine) + 4
	}
	if len(titleLine) > innerWidth {
		innerWidth = len(titleLine)
	}
	// The panel never outgrows the terminal; a root basename longer than
	// that is truncated instead.
	if max := GetTerminalWidth() - 2; innerWidth > max && max > len(statsLine)+4 {
		innerWidth = max
	}
	if len(titleLine) > innerWidth {
		titleLine = titleLine[:innerWidth-4] + "... "
	}

	// Title in top border line
	padding := innerWidth - len(titleLine)
	leftPad := padding / 2
	rightPad := padding - leftPad
	fmt.Fprintf(w, "╭%s%s%s╮\n", strings.Repeat("─", leftPad), titleLine, strings.Repeat("─", rightPad))
	fmt.Fprintf(w, "│ %-*s │\n", innerWidth-2, statsLine)
	fmt.Fprintf(w, "╰%s╯\n", strings.Repeat("─", innerWidth))

	for _, label := range report.SortedCategories() {
		count := report.CategoryFunctions(label)
		noun := "functions"
		if count == 1 {
			noun = "function"
		}
		fmt.Fprintf(w, "%s%s%s: %d %s\n", Cyan, label, Reset, count, noun)
	}
}
