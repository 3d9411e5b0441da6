package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svcdocs/internal/config"
	"svcdocs/scanner"
)

// Root command
var rootCmd = &cobra.Command{
	Use:   "svcdocs",
	Short: "Generate service layer documentation from Go source",
	Long: `svcdocs scans a directory of Go service files, extracts exported
functions together with their comments, groups them into service
categories and renders the result as HTML, Markdown or JSON.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// firstNonEmpty lets a flag override its config default.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// categoryRules resolves the rule table every scanning command shares:
// a flag value wins over the configured category file, and with neither
// set the built-in defaults apply.
func categoryRules(flagPath string) (scanner.CategoryRules, error) {
	path := firstNonEmpty(flagPath, config.AppConfig.CategoryFile)
	if path == "" {
		return scanner.DefaultCategoryRules(), nil
	}
	return scanner.LoadCategoryRules(path)
}
