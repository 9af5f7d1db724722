// Package analysis answers queries over the persisted index. The only
// analysis today is the unused-symbol report: a symbol is potentially
// unused when no reference, layout usage or UI descriptor usage matches
// its name. Name equality is over-inclusive by design, so missed-unused
// results dominate false positives.
package analysis

import (
	"github.com/codescope/codescope/internal/database"
	"github.com/codescope/codescope/pkg/types"
)

// UnusedOptions filters the candidate set.
type UnusedOptions struct {
	// Module restricts candidates to files whose path starts with this
	// prefix.
	Module string
	// ExportOnly restricts candidates to uppercase-initial names. It is
	// ignored when Module is set.
	ExportOnly bool
	// Limit caps the number of reported symbols.
	Limit int
}

// UnusedReport is the analysis result: the reported symbols plus how
// many candidates were checked to find them.
type UnusedReport struct {
	Unused  []types.SearchResult
	Checked int
}

// FindUnused selects candidate symbols and probes the three usage
// tables for each, in order, stopping as soon as the limit is reached.
// Per-candidate probing keeps the query count proportional to the
// number of actually-unused symbols: the common "referenced" case exits
// on the first probe.
func FindUnused(db *database.DB, opts UnusedOptions) (*UnusedReport, error) {
	candidates, err := db.UnusedCandidates(opts.Module, opts.Module == "" && opts.ExportOnly)
	if err != nil {
		return nil, err
	}

	report := &UnusedReport{}

	for _, sym := range candidates {
		report.Checked++
		referenced, err := db.HasRef(sym.Name)
		if err != nil {
			return nil, err
		}
		if referenced {
			continue
		}

		inLayout, err := db.HasXmlUsage(sym.Name)
		if err != nil {
			return nil, err
		}
		if inLayout {
			continue
		}

		inStoryboard, err := db.HasStoryboardUsage(sym.Name)
		if err != nil {
			return nil, err
		}
		if inStoryboard {
			continue
		}

		report.Unused = append(report.Unused, sym)
		if opts.Limit > 0 && len(report.Unused) >= opts.Limit {
			break
		}
	}

	return report, nil
}
