package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codescope/codescope/internal/config"
	"github.com/codescope/codescope/internal/database"
	"github.com/codescope/codescope/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "codescope",
		Short:         "Cross-language source code indexer",
		Long:          "codescope scans a project tree, extracts declared symbols and textual references across language dialects, and keeps them in a queryable index.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newRebuildCmd(),
		newUpdateCmd(),
		newWatchCmd(),
		newUnusedSymbolsCmd(),
		newStatsCmd(),
		newSearchCmd(),
	)

	return cmd
}

// resolveRoot turns an optional positional root argument into an
// absolute path, defaulting to the current directory.
func resolveRoot(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid project root: %w", err)
	}
	return absRoot, nil
}

// loadConfig reads project configuration and applies the configured log
// level.
func loadConfig(root string) (*config.Config, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	utils.SetLevel(cfg.LogLevel)
	return cfg, nil
}

// openIndex opens (creating if needed) the index database for root.
func openIndex(cfg *config.Config, root string) (*database.DB, error) {
	return database.Open(cfg.DBPath(root))
}

// indexExists reports whether the index database file is present.
func indexExists(cfg *config.Config, root string) bool {
	return utils.FileExists(cfg.DBPath(root))
}

// printRebuildFirst is the shared "no index yet" message; commands that
// need an index print it and exit cleanly.
func printRebuildFirst() {
	color.Red("Index not found. Run 'codescope rebuild' first.")
}
