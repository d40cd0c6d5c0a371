package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chazu/cueform/pkg/cue"
	"github.com/chazu/cueform/pkg/geometry"
)

var propertiesJSON bool

var propertiesCmd = &cobra.Command{
	Use:   "properties <design.json>",
	Short: "Compute the geometric properties report for a design",
	Long: `Assemble the design geometry and report its derived physical
quantities: total length, surface area, volume, estimated weight,
center of mass, moment of inertia, and the radius envelope.

Weight and moments are uniform-density approximations.`,
	Args: cobra.ExactArgs(1),
	RunE: runProperties,
}

func init() {
	rootCmd.AddCommand(propertiesCmd)
	propertiesCmd.Flags().BoolVar(&propertiesJSON, "json", false, "Emit the report as JSON")
}

func runProperties(cmd *cobra.Command, args []string) error {
	rec, err := cue.LoadDesign(args[0])
	if err != nil {
		return err
	}

	d := geometry.FromRecords(rec.Sections)
	props := geometry.GeometricProperties(d)

	if propertiesJSON {
		return writeJSON(os.Stdout, props)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Cue:\t%s\n", rec.CueID)
	fmt.Fprintf(w, "Sections:\t%d\n", props.SectionCount)
	fmt.Fprintf(w, "Total length:\t%.2f in\n", props.TotalLengthIn)
	fmt.Fprintf(w, "Surface area:\t%.2f in²\n", props.SurfaceAreaIn2)
	fmt.Fprintf(w, "Volume:\t%.3f in³\n", props.VolumeIn3)
	fmt.Fprintf(w, "Est. weight:\t%.2f oz\n", props.EstimatedWtOunce)
	fmt.Fprintf(w, "Center of mass:\t%.2f in\n", props.CenterOfMass.X)
	fmt.Fprintf(w, "Moment (axial):\t%.4f\n", props.MomentOfInertia.Axial)
	fmt.Fprintf(w, "Moment (perp.):\t%.4f\n", props.MomentOfInertia.Perpendicular)
	fmt.Fprintf(w, "Radius min/avg/max:\t%.2f / %.2f / %.2f mm\n",
		props.MinRadiusMM, props.AverageRadiusMM, props.MaxRadiusMM)
	return w.Flush()
}

// writeJSON pretty-prints v to w.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
