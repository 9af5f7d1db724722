package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codescope/codescope/internal/analysis"
	"github.com/codescope/codescope/internal/config"
	"github.com/codescope/codescope/pkg/types"
)

func newUnusedSymbolsCmd() *cobra.Command {
	var (
		module     string
		exportOnly bool
		limit      int
		format     string
	)

	cmd := &cobra.Command{
		Use:   "unused-symbols [root]",
		Short: "Report potentially unused symbols",
		Long:  "Reports symbols with no textual reference, layout usage or UI descriptor usage anywhere in the index. Matching is by name only, so treat results as candidates, not proof.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format: %q (want text or json)", format)
			}

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
			report, err := analysis.FindUnused(db, analysis.UnusedOptions{
				Module:     module,
				ExportOnly: exportOnly,
				Limit:      limit,
			})
			if err != nil {
				return err
			}

			if format == "json" {
				unused := report.Unused
				if unused == nil {
					unused = []types.SearchResult{}
				}
				payload, err := json.MarshalIndent(unused, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(payload))
				return nil
			}

			scope := module
			if scope == "" {
				scope = "project"
			}
			color.New(color.Bold).Printf("Potentially unused symbols in '%s' (%d/%d checked):\n",
				scope, len(report.Unused), report.Checked)

			for _, s := range report.Unused {
				fmt.Printf("  %s [%s]: %s:%d\n", color.YellowString(s.Name), s.Kind, s.Path, s.Line)
			}
			if len(report.Unused) == 0 {
				fmt.Println("  No unused symbols found.")
			}

			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, color.New(color.Faint).Sprintf("Time: %v", time.Since(start).Round(time.Millisecond)))
			return nil
		},
	}

	cmd.Flags().StringVar(&module, "module", "", "restrict to symbols under this path prefix")
	cmd.Flags().BoolVar(&exportOnly, "export-only", false, "restrict to exported (uppercase-initial) symbols")
	cmd.Flags().IntVar(&limit, "limit", config.DefaultLimit, "maximum number of symbols to report")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")

	return cmd
}
