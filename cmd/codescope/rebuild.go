package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codescope/codescope/internal/core"
)

func newRebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild [root]",
		Short: "Rebuild the index from scratch",
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

			db, err := openIndex(cfg, root)
			if err != nil {
				return err
			}
			defer db.Close()

			color.Cyan("Indexing %s...", root)
			start := time.Now()

			counts, err := core.NewIndexer(root, cfg, db).Rebuild()
			if err != nil {
				return err
			}

			color.Green("Indexed %d files (%d changed, %d deleted)", counts.Updated, counts.Changed, counts.Deleted)
			fmt.Fprintln(os.Stderr, color.New(color.Faint).Sprintf("Time: %v", time.Since(start).Round(time.Millisecond)))
			return nil
		},
	}
}
