package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/agentic-research/localediff/internal/scan"
)

var usageShowUsed bool

var usageCmd = &cobra.Command{
	Use:   "usage [catalog] [srcdir]",
	Short: "Scan a source tree for references to catalog keys",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, flat, err := openFlattened(args[0])
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(flat))
		for key := range flat {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		report, err := scan.Scan(args[1], keys)
		if err != nil {
			return err
		}
		for _, key := range report.Unused {
			fmt.Printf("unused: %s\n", key)
		}
		if usageShowUsed {
			for _, key := range report.Used {
				fmt.Printf("used: %s\n", key)
			}
		}
		return nil
	},
}

func init() {
	usageCmd.Flags().BoolVar(&usageShowUsed, "all", false, "Print used keys as well as unused ones")
	rootCmd.AddCommand(usageCmd)
}
