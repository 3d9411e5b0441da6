package scanner

import (
	"sort"
	"time"
)

// FunctionRecord describes one exported top-level function found in a
// source file. Records are created during extraction and never mutated
// afterwards.
type FunctionRecord struct {
	Name          string   `json:"name"`
	Signature     string   `json:"signature"`
	Documentation []string `json:"documentation,omitempty"`
	LineNumber    int      `json:"line_number"`
}

// CategoryIndex maps category label -> relative file path -> records in
// source order. Ordering of categories and files is left to the renderers.
type CategoryIndex map[string]map[string][]FunctionRecord

// Report is the aggregate handed to the renderers once a scan completes.
type Report struct {
	Root        string        `json:"root"`
	Categories  CategoryIndex `json:"categories"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// NewReport returns an empty report for the given scan root.
func NewReport(root string) *Report {
	return &Report{
		Root:        root,
		Categories:  make(CategoryIndex),
		GeneratedAt: time.Now(),
	}
}

// Add inserts the records extracted from one file into its category
// bucket. Files that yielded no records contribute nothing, so an empty
// category is never observed by a renderer.
func (r *Report) Add(category, relPath string, records []FunctionRecord) {
	if len(records) == 0 {
		return
	}
	if r.Categories[category] == nil {
		r.Categories[category] = make(map[string][]FunctionRecord)
	}
	r.Categories[category][relPath] = records
}

// TotalFunctions counts records across all categories and files.
func (r *Report) TotalFunctions() int {
	total := 0
	for _, files := range r.Categories {
		for _, records := range files {
			total += len(records)
		}
	}
	return total
}

// TotalFiles counts files that contributed at least one record.
func (r *Report) TotalFiles() int {
	total := 0
	for _, files := range r.Categories {
		total += len(files)
	}
	return total
}

// CategoryFunctions counts records in a single category.
func (r *Report) CategoryFunctions(category string) int {
	total := 0
	for _, records := range r.Categories[category] {
		total += len(records)
	}
	return total
}

// SortedCategories returns category labels in lexicographic order.
func (r *Report) SortedCategories() []string {
	labels := make([]string, 0, len(r.Categories))
	for label := range r.Categories {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// SortedFiles returns the relative paths of a category bucket in
// lexicographic order.
func SortedFiles(files map[string][]FunctionRecord) []string {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
