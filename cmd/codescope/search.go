package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <name> [root]",
		Short: "Look up symbols by name prefix",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			root, err := resolveRoot(args[1:])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			if !indexExists(cfg, root) {
				printRebuildFirst()
				return nil
			}

			db, err := openIndex(cfg, root)
			if err != nil {
				return err
			}
			defer db.Close()

			results, err := db.SearchSymbols(query, limit)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Printf("No symbols found matching %q\n", query)
				return nil
			}

			for _, s := range results {
				fmt.Printf("%s [%s]: %s:%d\n", color.YellowString(s.Name), s.Kind, s.Path, s.Line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of results")
	return cmd
}
