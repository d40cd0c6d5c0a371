package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cueform",
	Short: "Pool cue geometry and manufacturability tool",
	Long: `cueform - cue design geometry engine

Model a pool cue butt as an ordered sequence of tapered sections,
check it against manufacturing constraints, and render its profile.

Commands operate on design records stored as JSON files:

{
  "cue_id": "CUE_001",
  "sections": [
    {
      "section_type": "forearm",
      "start_position_in": 0.0,
      "end_position_in": 11.0,
      "outer_diameter_start_mm": 21.3,
      "outer_diameter_end_mm": 20.2
    }
  ]
}`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
