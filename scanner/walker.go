package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoredDirs are directories to skip during scanning
var IgnoredDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"testdata":     true,
	".idea":        true,
	".vscode":      true,
	"build":        true,
	"dist":         true,
}

// LoadGitignore loads .gitignore from root if it exists
func LoadGitignore(root string) *ignore.GitIgnore {
	gitignorePath := filepath.Join(root, ".gitignore")

	if _, err := os.Stat(gitignorePath); err == nil {
		if gitignore, err := ignore.CompileIgnoreFile(gitignorePath); err == nil {
			return gitignore
		}
	}

	return nil
}

// CompileExcludes compiles user-supplied glob patterns. Patterns match
// against slash-separated relative paths.
func CompileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("bad exclude pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// ListSourceFiles walks the directory tree and returns the relative
// paths of Go source files, excluding tests, ignored directories,
// gitignored paths and user-excluded globs.
func ListSourceFiles(root string, gitignore *ignore.GitIgnore, excludes []glob.Glob) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if IgnoredDirs[info.Name()] {
				return filepath.SkipDir
			}
			if gitignore != nil && relPath != "." && gitignore.MatchesPath(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(info.Name(), ".go") || strings.HasSuffix(info.Name(), "_test.go") {
			return nil
		}

		if gitignore != nil && gitignore.MatchesPath(relPath) {
			return nil
		}
		for _, g := range excludes {
			if g.Match(filepath.ToSlash(relPath)) {
				return nil
			}
		}

		files = append(files, relPath)
		return nil
	})

	return files, err
}
