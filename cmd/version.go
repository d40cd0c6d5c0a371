package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/cueform/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cueform",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cueform v%s (%s, built %s)\n",
			version.Version, version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
