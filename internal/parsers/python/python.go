// Package python extracts symbols from Python sources: classes with
// their base list, functions and module-level constants.
package python

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	classRe = regexp.MustCompile(`^\s*class\s+(\w+)(?:\s*\(([^)]*)\))?\s*:`)

	defRe = regexp.MustCompile(`^\s*(?:async\s+)?def\s+(\w+)\s*\(`)

	constantRe = regexp.MustCompile(`^([A-Z][A-Z0-9_]*)\s*(?::[^=]+)?=\s*\S`)
)

// Parse extracts Python symbols from content.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1

		if m := classRe.FindStringSubmatch(line); m != nil {
			var parents []types.Parent
			if m[2] != "" {
				for _, base := range strings.Split(m[2], ",") {
					name := strings.TrimSpace(strings.SplitN(strings.TrimSpace(base), "[", 2)[0])
					if name == "" || name == "object" || strings.HasPrefix(name, "metaclass") {
						continue
					}
					// Qualified bases keep only the final attribute.
					if idx := strings.LastIndex(name, "."); idx >= 0 {
						name = name[idx+1:]
					}
					parents = append(parents, types.Parent{Name: name, Kind: types.InheritExtends})
				}
			}
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindClass,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
				Parents:   parents,
			})
			continue
		}

		if m := defRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
			continue
		}

		if m := constantRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindConstant,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}
	}

	return symbols
}
