package render

import (
	"fmt"
	"io"

	"svcdocs/scanner"
)

// Markdown writes the report as a Markdown document: one section per
// category, one subsection per file, signatures in fenced code blocks.
func Markdown(w io.Writer, report *scanner.Report, title string) {
	fmt.Fprintf(w, "# %s\n\n", title)
	fmt.Fprintf(w, "%d categories, %d public functions. Generated %s.\n",
		len(report.Categories), report.TotalFunctions(),
		report.GeneratedAt.Format("2006-01-02"))

	for _, label := range report.SortedCategories() {
		files := report.Categories[label]
		fmt.Fprintf(w, "\n## %s\n", label)

		for _, path := range scanner.SortedFiles(files) {
			fmt.Fprintf(w, "\n### `%s`\n", path)

			for _, fn := range files[path] {
				fmt.Fprintf(w, "\n#### %s\n\n", fn.Name)
				fmt.Fprintf(w, "```go\n%s\n```\n", fn.Signature)

				paragraphs := docParagraphs(fn.Documentation)
				if len(paragraphs) == 0 {
					fmt.Fprintf(w, "\n_No documentation available._\n")
					continue
				}
				for _, p := range paragraphs {
					fmt.Fprintf(w, "\n%s\n", p)
				}
			}
		}
	}
}
