package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chazu/cueform/pkg/cue"
	"github.com/chazu/cueform/pkg/validate"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate <design.json>",
	Short: "Check a design against all manufacturability rules",
	Long: `Run every validator over a design record: per-section field checks,
section-type dimensional envelopes, inlay pattern checks, continuity,
sequence ordering, and manufacturing constraints on the assembled
geometry.

All findings are reported in one pass; exit status is 1 when any
issue is found.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit the structured result as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	rec, err := cue.LoadDesign(args[0])
	if err != nil {
		return err
	}

	checker := validate.NewChecker(nil)
	result := checker.Design(rec)

	if validateJSON {
		if err := writeJSON(os.Stdout, result); err != nil {
			return err
		}
	} else {
		printResult(rec, result)
	}

	if !result.Valid {
		// Findings already reported; suppress cobra's usage noise.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		os.Exit(1)
	}
	return nil
}

func printResult(rec *cue.DesignRecord, result validate.Result) {
	if result.Valid {
		fmt.Printf("%s: valid (%d sections)\n", rec.CueID, len(rec.Sections))
		return
	}

	fmt.Printf("%s: %d issue(s)\n", rec.CueID, len(result.Issues))
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tSUBJECT\tMEASURED\tLIMIT\tUNIT")
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%s\n",
			issue.Kind, issue.Subject, issue.Measured, issue.Limit, issue.Unit)
	}
	w.Flush()
}
