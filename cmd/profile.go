package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/cueform/pkg/cue"
	"github.com/chazu/cueform/pkg/geometry"
	"github.com/chazu/cueform/pkg/render"
)

var (
	profileOut    string
	profileWidth  float64
	profileHeight float64
)

var profileCmd = &cobra.Command{
	Use:   "profile <design.json>",
	Short: "Render the SVG side-profile view of a design",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVarP(&profileOut, "out", "o", "", "Output SVG file (default stdout)")
	profileCmd.Flags().Float64Var(&profileWidth, "width", render.DefaultWidth, "Canvas width in SVG units")
	profileCmd.Flags().Float64Var(&profileHeight, "height", render.DefaultHeight, "Canvas height in SVG units")
}

func runProfile(cmd *cobra.Command, args []string) error {
	rec, err := cue.LoadDesign(args[0])
	if err != nil {
		return err
	}

	d := geometry.FromRecords(rec.Sections)
	view := render.NewProfileViewSize(d, profileWidth, profileHeight)

	out := os.Stdout
	if profileOut != "" {
		f, err := os.Create(profileOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	view.Render(out)
	return nil
}
