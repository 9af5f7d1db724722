// Package ruby extracts symbols from Ruby sources: classes with their
// superclass and included modules, modules, methods and constants.
package ruby

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	classRe = regexp.MustCompile(`^\s*class\s+([A-Z]\w*(?:::[A-Z]\w*)*)(?:\s*<\s*([A-Z]\w*(?:::[A-Z]\w*)*))?`)

	moduleRe = regexp.MustCompile(`^\s*module\s+([A-Z]\w*(?:::[A-Z]\w*)*)`)

	defRe = regexp.MustCompile(`^\s*def\s+(?:self\.)?([a-z_]\w*[?!=]?)`)

	includeRe = regexp.MustCompile(`^\s*(?:include|prepend)\s+([A-Z]\w*(?:::[A-Z]\w*)*)`)

	constantRe = regexp.MustCompile(`^\s*([A-Z][A-Z0-9_]*)\s*=\s*\S`)
)

// Parse extracts Ruby symbols from content. An include inside a class
// body attaches to the most recently declared class or module.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol
	currentType := -1

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		sig := strings.TrimSpace(line)

		if m := classRe.FindStringSubmatch(line); m != nil {
			var parents []types.Parent
			if m[2] != "" {
				parents = append(parents, types.Parent{Name: m[2], Kind: types.InheritExtends})
			}
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindClass,
				Line:      lineNum,
				Signature: sig,
				Parents:   parents,
			})
			currentType = len(symbols) - 1
			continue
		}

		if m := moduleRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindPackage,
				Line:      lineNum,
				Signature: sig,
			})
			currentType = len(symbols) - 1
			continue
		}

		if m := defRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := includeRe.FindStringSubmatch(line); m != nil {
			if currentType >= 0 && currentType < len(symbols) {
				symbols[currentType].Parents = append(symbols[currentType].Parents,
					types.Parent{Name: m[1], Kind: types.InheritImplements})
			}
			continue
		}

		if m := constantRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindConstant,
				Line:      lineNum,
				Signature: sig,
			})
		}
	}

	return symbols
}
