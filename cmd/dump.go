package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/localediff/internal/catalog"
)

var dumpSelector string

var dumpCmd = &cobra.Command{
	Use:   "dump [catalog]",
	Short: "Print the flattened form of one catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog(args[0])
		if err != nil {
			return err
		}

		tree := cat.Root
		if dumpSelector != "" {
			tree, err = catalog.Select(tree, dumpSelector)
			if err != nil {
				return err
			}
		}
		flat, err := catalog.Flatten(tree)
		if err != nil {
			return err
		}
		out, err := catalog.DumpFlat(flat)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpSelector, "selector", "s", "", "JSONPath selector narrowing the dumped subtree")
	rootCmd.AddCommand(dumpCmd)
}
