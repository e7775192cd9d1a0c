package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/agentic-research/localediff/internal/catalog"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild [flat-catalog]",
	Short: "Rebuild a nested catalog document from a flat one",
	Long: `Rebuild inverts dump: it reads a single-level document of dot-joined
paths and emits the nested catalog, restoring the filename stem as the
top-level key. Paths that are both a value and a mapping prefix are
reported on stderr; the mapping wins.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve %s: %w", args[0], err)
		}
		fs := osfs.New(filepath.Dir(abs))
		flat, id, err := catalog.LoadFlat(fs, filepath.Base(abs))
		if err != nil {
			return err
		}

		tree, conflicts := catalog.Unflatten(flat)
		for _, c := range conflicts {
			fmt.Fprintf(os.Stderr, "warning: %q is both a value and a mapping; value %q dropped\n", c.Path, c.Shadowed)
		}
		out, err := catalog.DumpTree(id, tree)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}
