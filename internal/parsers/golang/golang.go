// Package golang extracts symbols from Go sources: package clauses,
// struct and interface types, other type declarations, functions,
// constants and variables.
package golang

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	packageRe = regexp.MustCompile(`^package\s+(\w+)`)

	structRe = regexp.MustCompile(`^type\s+(\w+)(?:\[[^\]]*\])?\s+struct\b`)

	interfaceRe = regexp.MustCompile(`^type\s+(\w+)(?:\[[^\]]*\])?\s+interface\b`)

	typeRe = regexp.MustCompile(`^type\s+(\w+)(?:\[[^\]]*\])?\s+\S`)

	funcRe = regexp.MustCompile(`^func\s+(?:\([^)]+\)\s+)?(\w+)(?:\[[^\]]*\])?\s*\(`)

	constRe = regexp.MustCompile(`^const\s+(\w+)`)

	varRe = regexp.MustCompile(`^var\s+(\w+)`)
)

// Parse extracts Go symbols from content.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		sig := strings.TrimSpace(line)

		if m := packageRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindPackage,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := structRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindStruct,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := interfaceRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindInterface,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := typeRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindTypeAlias,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := funcRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := constRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindConstant,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := varRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindProperty,
				Line:      lineNum,
				Signature: sig,
			})
		}
	}

	return symbols
}
