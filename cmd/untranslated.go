package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/localediff/internal/blacklist"
	"github.com/agentic-research/localediff/internal/diff"
)

var (
	blacklistPath string
	noBlacklist   bool
)

var untranslatedCmd = &cobra.Command{
	Use:   "untranslated [from] [to]",
	Short: "List keys whose target value still equals the source value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, from, err := openFlattened(args[0])
		if err != nil {
			return err
		}
		toCat, to, err := openFlattened(args[1])
		if err != nil {
			return err
		}

		keys := diff.UntranslatedKeys(from, to)
		if !noBlacklist {
			table, err := loadTable()
			if err != nil {
				return err
			}
			keys = diff.PruneWithBlacklist(table, toCat.ID, keys)
		}
		for _, key := range keys {
			fmt.Println(key)
		}
		return nil
	},
}

func loadTable() (*blacklist.Table, error) {
	if blacklistPath == "" {
		return blacklist.DefaultTable()
	}
	content, err := os.ReadFile(blacklistPath)
	if err != nil {
		return nil, fmt.Errorf("read blacklist: %w", err)
	}
	return blacklist.Parse(blacklistPath, content)
}

func init() {
	untranslatedCmd.Flags().StringVarP(&blacklistPath, "blacklist", "b", "", "Path to a blacklist HCL file (default: built-in table)")
	untranslatedCmd.Flags().BoolVar(&noBlacklist, "no-blacklist", false, "Report blacklisted keys too")
	rootCmd.AddCommand(untranslatedCmd)
}
