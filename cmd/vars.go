package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentic-research/localediff/internal/diff"
)

var varsCmd = &cobra.Command{
	Use:   "vars [from] [to]",
	Short: "Report interpolation variables that differ between catalogs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, from, err := openFlattened(args[0])
		if err != nil {
			return err
		}
		_, to, err := openFlattened(args[1])
		if err != nil {
			return err
		}

		for _, m := range diff.ValidateVariables(from, to) {
			fmt.Printf("%s: [%s] != [%s]\n", m.Key, strings.Join(m.FromVars, " "), strings.Join(m.ToVars, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(varsCmd)
}
