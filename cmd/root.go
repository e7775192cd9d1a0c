package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/agentic-research/localediff/internal/catalog"
)

var rootCmd = &cobra.Command{
	Use:   "localediff",
	Short: "Localediff: compare and reshape hierarchical translation catalogs",
	Long: `Localediff flattens nested locale catalogs (YAML or JSON) into
dot-path maps and reports key differences, untranslated values and
placeholder mismatches between two locales.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openCatalog loads one catalog from the host filesystem.
func openCatalog(path string) (*catalog.Catalog, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fs := osfs.New(filepath.Dir(abs))
	return catalog.Load(fs, filepath.Base(abs))
}

// openFlattened loads a catalog and flattens it in one step, the shape
// every diff-style command needs.
func openFlattened(path string) (*catalog.Catalog, catalog.FlatMap, error) {
	cat, err := openCatalog(path)
	if err != nil {
		return nil, nil, err
	}
	flat, err := catalog.Flatten(cat.Root)
	if err != nil {
		return nil, nil, err
	}
	return cat, flat, nil
}
