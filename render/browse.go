package render

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"svcdocs/scanner"
)

type browseLevel int

const (
	levelCategories browseLevel = iota
	levelFiles
	levelFunctions
)

// Browser is a bubbletea model that drills into the report:
// categories, then files, then the function docs of one file.
type Browser struct {
	report   *scanner.Report
	level    browseLevel
	category string
	file     string
	cursor   int
}

// NewBrowser returns a browser positioned at the category list.
func NewBrowser(report *scanner.Report) Browser {
	return Browser{report: report}
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return b, tea.Quit
		case "esc", "left", "h":
			if b.level == levelCategories {
				return b, tea.Quit
			}
			b = b.back()
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.items())-1 {
				b.cursor++
			}
		case "enter", "right", "l":
			b = b.enter()
		}
	}
	return b, nil
}

// items returns the selectable entries for the current level.
func (b Browser) items() []string {
	switch b.level {
	case levelCategories:
		return b.report.SortedCategories()
	case levelFiles:
		return scanner.SortedFiles(b.report.Categories[b.category])
	default:
		return nil
	}
}

func (b Browser) enter() Browser {
	items := b.items()
	if b.cursor >= len(items) {
		return b
	}
	switch b.level {
	case levelCategories:
		b.category = items[b.cursor]
		b.level = levelFiles
		b.cursor = 0
	case levelFiles:
		b.file = items[b.cursor]
		b.level = levelFunctions
		b.cursor = 0
	}
	return b
}

func (b Browser) back() Browser {
	switch b.level {
	case levelFunctions:
		b.level = levelFiles
	case levelFiles:
		b.level = levelCategories
	}
	b.cursor = 0
	return b
}

func (b Browser) View() string {
	var sb strings.Builder

	switch b.level {
	case levelCategories:
		sb.WriteString(Bold + "Service Categories" + Reset + "\n\n")
		for i, label := range b.items() {
			sb.WriteString(b.line(i, fmt.Sprintf("%s (%d functions)", label, b.report.CategoryFunctions(label))))
		}
	case levelFiles:
		sb.WriteString(Bold + b.category + Reset + "\n\n")
		files := b.report.Categories[b.category]
		for i, path := range b.items() {
			sb.WriteString(b.line(i, fmt.Sprintf("%s (%d functions)", path, len(files[path]))))
		}
	case levelFunctions:
		sb.WriteString(Bold + b.category + Reset + Dim + " › " + Reset + Cyan + b.file + Reset + "\n")
		for _, fn := range b.report.Categories[b.category][b.file] {
			sb.WriteString("\n" + Bold + fn.Name + Reset + "\n")
			sb.WriteString(Dim + fn.Signature + Reset + "\n")
			for _, p := range docParagraphs(fn.Documentation) {
				sb.WriteString(p + "\n")
			}
		}
	}

	sb.WriteString("\n" + Dim + "↑/↓ move · enter open · esc back · q quit" + Reset + "\n")
	return sb.String()
}

func (b Browser) line(i int, text string) string {
	if i == b.cursor {
		return fmt.Sprintf("%s› %s%s\n", BoldBlue, text, Reset)
	}
	return fmt.Sprintf("  %s\n", text)
}
