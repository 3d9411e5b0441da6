package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the svcdocs version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("svcdocs %s\n", version)
	},
}
