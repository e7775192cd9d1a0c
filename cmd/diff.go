package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/localediff/internal/diff"
)

var diffCmd = &cobra.Command{
	Use:   "diff [from] [to]",
	Short: "Report keys present in one catalog but missing from the other",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromCat, from, err := openFlattened(args[0])
		if err != nil {
			return err
		}
		toCat, to, err := openFlattened(args[1])
		if err != nil {
			return err
		}

		report := diff.KeyDifference(fromCat.ID, toCat.ID, from, to)
		if len(report.Added) == 0 && len(report.Removed) == 0 {
			fmt.Printf("catalogs %s and %s cover the same keys\n", report.From, report.To)
			return nil
		}
		// "-" = present in from, missing in to (candidates to merge over);
		// "+" = present only in to.
		for _, key := range report.Removed {
			fmt.Printf("- %s\n", key)
		}
		for _, key := range report.Added {
			fmt.Printf("+ %s\n", key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
