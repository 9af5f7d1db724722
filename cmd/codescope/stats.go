package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [root]",
		Short: "Show index table counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
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

			stats, err := db.Stats()
			if err != nil {
				return err
			}

			tables := make([]string, 0, len(stats))
			for table := range stats {
				tables = append(tables, table)
			}
			sort.Strings(tables)

			color.New(color.Bold).Println("Index statistics:")
			for _, table := range tables {
				fmt.Printf("  %-18s %d\n", table, stats[table])
			}
			return nil
		},
	}
}
