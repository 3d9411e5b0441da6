package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"svcdocs/internal/config"
	"svcdocs/render"
	"svcdocs/scanner"
)

var browseDir string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse extracted documentation in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := firstNonEmpty(browseDir, config.AppConfig.ServiceDir)

		rules, err := categoryRules("")
		if err != nil {
			return err
		}

		report, err := scanner.Scan(dir, scanner.Options{
			Rules:    rules,
			Excludes: config.AppConfig.Exclude,
		})
		if err != nil {
			return err
		}
		if report.TotalFunctions() == 0 {
			fmt.Printf("%sNo public functions found under %s%s\n", render.Yellow, dir, render.Reset)
			return nil
		}

		program := tea.NewProgram(render.NewBrowser(report), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("browser: %w", err)
		}
		return nil
	},
}

func init() {
	browseCmd.Flags().StringVarP(&browseDir, "dir", "d", "", "service directory to scan (default from config)")
}
