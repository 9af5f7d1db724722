package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codescope/codescope/internal/core"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [root]",
		Short: "Watch for file changes and keep the index up to date",
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

			color.Cyan("Watching for changes in %s...", root)
			fmt.Println(color.New(color.Faint).Sprint("Press Ctrl+C to stop."))

			watcher, err := core.NewWatcher(core.NewIndexer(root, cfg, db))
			if err != nil {
				return err
			}
			defer watcher.Close()

			watcher.OnUpdate = func(counts core.Counts, elapsed time.Duration) {
				if counts.Updated > 0 || counts.Deleted > 0 {
					color.New(color.FgGreen).Fprintf(os.Stderr, "Updated %d files, deleted %d (%v)\n",
						counts.Updated, counts.Deleted, elapsed.Round(time.Millisecond))
				} else {
					color.New(color.Faint).Fprintf(os.Stderr, "No index changes (%v)\n",
						elapsed.Round(time.Millisecond))
				}
			}

			return watcher.Run()
		},
	}
}
