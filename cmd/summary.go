package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"svcdocs/internal/config"
	"svcdocs/render"
	"svcdocs/scanner"
)

var summaryDir string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a console summary of the service layer",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := firstNonEmpty(summaryDir, config.AppConfig.ServiceDir)

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

		render.Summary(os.Stdout, report)
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryDir, "dir", "d", "", "service directory to scan (default from config)")
}
