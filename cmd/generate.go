package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"svcdocs/internal/config"
	"svcdocs/render"
	"svcdocs/scanner"
)

var (
	generateDir        string
	generateOutput     string
	generateFormat     string
	generateTitle      string
	generateCategories string
	generateExclude    []string
	generateQuiet      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan service files and write a documentation report",
	Long: `Generate scans the service directory for exported Go functions and
writes grouped documentation.

Examples:
  # Scan the configured service directory, write HTML
  svcdocs generate

  # Markdown to stdout
  svcdocs generate --format markdown --output -

  # A different tree with a custom category table
  svcdocs generate --dir ./internal/service --categories categories.yml`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateDir, "dir", "d", "", "service directory to scan (default from config)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file, - for stdout (default from config)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "output format: html, markdown or json")
	generateCmd.Flags().StringVarP(&generateTitle, "title", "t", "", "report title (default from config)")
	generateCmd.Flags().StringVar(&generateCategories, "categories", "", "YAML file overriding the category rule table")
	generateCmd.Flags().StringSliceVar(&generateExclude, "exclude", nil, "glob patterns of relative paths to skip")
	generateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "disable progress output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.AppConfig
	dir := firstNonEmpty(generateDir, cfg.ServiceDir)
	format := firstNonEmpty(generateFormat, cfg.Format)
	output := firstNonEmpty(generateOutput, cfg.OutputFile)
	title := firstNonEmpty(generateTitle, cfg.Title)

	switch format {
	case "html", "markdown", "md", "json":
	default:
		return fmt.Errorf("unknown format %q (expected html, markdown or json)", format)
	}

	rules, err := categoryRules(generateCategories)
	if err != nil {
		return err
	}

	opts := scanner.Options{
		Rules:    rules,
		Excludes: append(cfg.Exclude, generateExclude...),
	}
	var bar *progressbar.ProgressBar
	if !generateQuiet {
		opts.OnStart = func(total int) {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Scanning files"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionThrottle(65*time.Millisecond),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		opts.OnFile = func(string) {
			if bar != nil {
				bar.Add(1)
			}
		}
	}

	report, err := scanner.Scan(dir, opts)
	if err != nil {
		return err
	}
	if report.TotalFunctions() == 0 {
		fmt.Printf("%sNo public functions found under %s%s\n", render.Yellow, dir, render.Reset)
		return nil
	}

	out := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "html":
		if err := render.HTML(out, report, title); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	case "markdown", "md":
		render.Markdown(out, report, title)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	}

	if !generateQuiet && output != "-" {
		fmt.Printf("%s✓%s Documented %d functions in %d categories\n",
			render.Green, render.Reset, report.TotalFunctions(), len(report.Categories))
		fmt.Printf("  Output: %s\n", output)
	}
	return nil
}
