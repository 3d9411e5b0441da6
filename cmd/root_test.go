package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svcdocs/internal/config"
)

func TestCategoryRulesDefault(t *testing.T) {
	originalConfig := config.AppConfig
	defer func() { config.AppConfig = originalConfig }()
	config.AppConfig.CategoryFile = ""

	rules, err := categoryRules("")
	require.NoError(t, err)
	assert.Equal(t, "Miscellaneous", rules.Categorize("whatever.go"))
	assert.Equal(t, "Domain Management", rules.Categorize("domain.go"))
}

func TestCategoryRulesFromConfig(t *testing.T) {
	originalConfig := config.AppConfig
	defer func() { config.AppConfig = originalConfig }()

	path := filepath.Join(t.TempDir(), "categories.yml")
	require.NoError(t, os.WriteFile(path, []byte("fallback: Uncategorized\n"), 0644))
	config.AppConfig.CategoryFile = path

	rules, err := categoryRules("")
	require.NoError(t, err)
	assert.Equal(t, "Uncategorized", rules.Categorize("whatever.go"))
}

func TestCategoryRulesFlagWinsOverConfig(t *testing.T) {
	originalConfig := config.AppConfig
	defer func() { config.AppConfig = originalConfig }()

	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("fallback: FromConfig\n"), 0644))
	flagPath := filepath.Join(t.TempDir(), "flag.yml")
	require.NoError(t, os.WriteFile(flagPath, []byte("fallback: FromFlag\n"), 0644))
	config.AppConfig.CategoryFile = configPath

	rules, err := categoryRules(flagPath)
	require.NoError(t, err)
	assert.Equal(t, "FromFlag", rules.Categorize("whatever.go"))
}

func TestCategoryRulesMissingFile(t *testing.T) {
	originalConfig := config.AppConfig
	defer func() { config.AppConfig = originalConfig }()
	config.AppConfig.CategoryFile = ""

	_, err := categoryRules(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
