package scanner

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Options tunes a scan run. The zero value scans with the default
// category rules and no progress reporting.
type Options struct {
	// Rules is the category table; the zero value means defaults.
	Rules CategoryRules
	// Excludes holds glob patterns of relative paths to skip.
	Excludes []string
	// OnStart is called once with the number of files to process.
	OnStart func(total int)
	// OnFile is called after each file has been processed.
	OnFile func(relPath string)
}

// Scan walks root, extracts exported function records from every Go
// source file and groups them into the report's category index. Files
// are processed sequentially; a file that cannot be read is logged and
// skipped, never fatal.
func Scan(root string, opts Options) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("service directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("service directory %s is not a directory", root)
	}

	rules := opts.Rules
	if rules.Fallback == "" {
		rules = DefaultCategoryRules()
	}

	excludes, err := CompileExcludes(opts.Excludes)
	if err != nil {
		return nil, err
	}

	files, err := ListSourceFiles(root, LoadGitignore(root), excludes)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	if opts.OnStart != nil {
		opts.OnStart(len(files))
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	report := NewReport(absRoot)
	for _, relPath := range files {
		data, err := os.ReadFile(filepath.Join(root, relPath))
		if err != nil {
			log.Printf("skipping %s: %v", relPath, err)
			continue
		}

		records := Extract(string(data))
		report.Add(rules.Categorize(relPath), filepath.ToSlash(relPath), records)

		if opts.OnFile != nil {
			opts.OnFile(relPath)
		}
	}
	return report, nil
}
