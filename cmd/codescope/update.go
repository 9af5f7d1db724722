package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codescope/codescope/internal/core"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [root]",
		Short: "Incrementally update the index",
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

			start := time.Now()
			counts, err := core.NewIndexer(root, cfg, db).Update()
			if err != nil {
				return err
			}

			fmt.Printf("Updated %d files, %d changed, %d deleted\n", counts.Updated, counts.Changed, counts.Deleted)
			fmt.Fprintln(os.Stderr, color.New(color.Faint).Sprintf("Time: %v", time.Since(start).Round(time.Millisecond)))
			return nil
		},
	}
}
