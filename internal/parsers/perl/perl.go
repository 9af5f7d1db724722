// Package perl extracts symbols from Perl sources (.pm, .pl, .t):
// packages, subroutines, constants, our-variables and inheritance via
// use base/parent and @ISA.
package perl

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	packageRe = regexp.MustCompile(`^\s*package\s+([A-Za-z_][A-Za-z0-9_:]*)\s*;`)

	subRe = regexp.MustCompile(`^\s*sub\s+([A-Za-z_][A-Za-z0-9_]*)\s*[\{(]?`)

	constantRe = regexp.MustCompile(`^\s*use\s+constant\s+([A-Z_][A-Z0-9_]*)\s*=>`)

	ourRe = regexp.MustCompile(`^\s*our\s+([\$@%][A-Za-z_][A-Za-z0-9_]*)`)

	// use base qw/Parent1 Parent2/; or use parent 'Parent';
	useBaseRe = regexp.MustCompile(`use\s+(?:base|parent)\s+(?:qw[/(]([^)/\\]+)[)/\\]|['"]([^'"]+)['"])`)

	// our @ISA = qw(Parent1 Parent2);
	isaRe = regexp.MustCompile(`our\s+@ISA\s*=\s*(?:qw[/(]([^)/\\]+)[)/\\]|\(([^)]+)\))`)
)

// Parse extracts Perl symbols from content. Inheritance edges seen
// before the first package declaration are deferred and attached to it.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	currentPackage := -1
	var pendingParents []types.Parent

	addParent := func(p types.Parent) {
		if currentPackage >= 0 && currentPackage < len(symbols) {
			symbols[currentPackage].Parents = append(symbols[currentPackage].Parents, p)
		} else {
			pendingParents = append(pendingParents, p)
		}
	}

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1

		if m := packageRe.FindStringSubmatch(line); m != nil {
			if name := m[1]; name != "" {
				parents := pendingParents
				pendingParents = nil
				symbols = append(symbols, types.ParsedSymbol{
					Name:      name,
					Kind:      types.KindPackage,
					Line:      lineNum,
					Signature: strings.TrimSpace(line),
					Parents:   parents,
				})
				currentPackage = len(symbols) - 1
			}
			continue
		}

		if m := subRe.FindStringSubmatch(line); m != nil {
			if name := m[1]; name != "" {
				symbols = append(symbols, types.ParsedSymbol{
					Name:      name,
					Kind:      types.KindFunction,
					Line:      lineNum,
					Signature: strings.TrimSpace(line),
				})
			}
			continue
		}

		if m := constantRe.FindStringSubmatch(line); m != nil {
			if name := m[1]; name != "" {
				symbols = append(symbols, types.ParsedSymbol{
					Name:      name,
					Kind:      types.KindConstant,
					Line:      lineNum,
					Signature: strings.TrimSpace(line),
				})
			}
			continue
		}

		// @ISA carries inheritance, not a variable worth indexing.
		if m := ourRe.FindStringSubmatch(line); m != nil {
			if name := m[1]; name != "" && name != "@ISA" {
				symbols = append(symbols, types.ParsedSymbol{
					Name:      name,
					Kind:      types.KindProperty,
					Line:      lineNum,
					Signature: strings.TrimSpace(line),
				})
			}
		}

		if m := useBaseRe.FindStringSubmatch(line); m != nil {
			parentsStr := m[1]
			if parentsStr == "" {
				parentsStr = m[2]
			}
			for _, parent := range strings.Fields(parentsStr) {
				if parent != "" {
					addParent(types.Parent{Name: parent, Kind: types.InheritExtends})
				}
			}
		}

		if m := isaRe.FindStringSubmatch(line); m != nil {
			parentsStr := m[1]
			if parentsStr == "" {
				parentsStr = m[2]
			}
			for _, parent := range strings.FieldsFunc(parentsStr, func(c rune) bool {
				return c == ' ' || c == '\t' || c == ','
			}) {
				parent = strings.Trim(parent, `'"`)
				if parent != "" {
					addParent(types.Parent{Name: parent, Kind: types.InheritExtends})
				}
			}
		}
	}

	return symbols
}
