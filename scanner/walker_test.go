package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestListSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "domain.go", "package service\n")
	writeFile(t, root, "domain_test.go", "package service\n")
	writeFile(t, root, "README.md", "# readme\n")
	writeFile(t, root, "threat_pattern/pattern_condition.go", "package threat_pattern\n")
	writeFile(t, root, "vendor/dep.go", "package dep\n")
	writeFile(t, root, "testdata/fixture.go", "package fixture\n")

	files, err := ListSourceFiles(root, nil, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"domain.go",
		filepath.Join("threat_pattern", "pattern_condition.go"),
	}, files)
}

func TestListSourceFilesGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "generated/\nskipped.go\n")
	writeFile(t, root, "kept.go", "package service\n")
	writeFile(t, root, "skipped.go", "package service\n")
	writeFile(t, root, "generated/gen.go", "package generated\n")

	files, err := ListSourceFiles(root, LoadGitignore(root), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"kept.go"}, files)
}

func TestListSourceFilesExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "domain.go", "package service\n")
	writeFile(t, root, "sub/other.go", "package sub\n")

	excludes, err := CompileExcludes([]string{"sub/*"})
	require.NoError(t, err)

	files, err := ListSourceFiles(root, nil, excludes)
	require.NoError(t, err)

	assert.Equal(t, []string{"domain.go"}, files)
}

func TestCompileExcludesBadPattern(t *testing.T) {
	_, err := CompileExcludes([]string{"[unclosed"})
	assert.Error(t, err)
}
