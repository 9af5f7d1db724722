// Package dart extracts symbols from Dart sources: classes with
// extends/implements/with clauses, mixins, enums, typedefs, functions
// and fields.
package dart

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	classRe = regexp.MustCompile(`^\s*(?:abstract\s+)?(?:base\s+|final\s+|sealed\s+|interface\s+)?class\s+(\w+)(?:\s*<[^>]*>)?([^{]*)`)

	mixinRe = regexp.MustCompile(`^\s*(?:base\s+)?mixin\s+(\w+)`)

	enumRe = regexp.MustCompile(`^\s*enum\s+(\w+)`)

	typedefRe = regexp.MustCompile(`^\s*typedef\s+(\w+)`)

	functionRe = regexp.MustCompile(`^\s*(?:Future<[^>]*>|Stream<[^>]*>|void|int|double|bool|String|num|dynamic|[A-Z]\w*(?:<[^>]*>)?\??)\s+(\w+)\s*\(`)

	fieldRe = regexp.MustCompile(`^\s*(?:static\s+)?(?:late\s+)?(?:final|const)\s+(?:[\w<>,?\s]+\s)?(\w+)\s*=`)

	extendsRe    = regexp.MustCompile(`\bextends\s+(\w+)`)
	implementsRe = regexp.MustCompile(`\bimplements\s+([^{]+?)(?:\s+with\b|\s*\{|$)`)
	withRe       = regexp.MustCompile(`\bwith\s+([^{]+?)(?:\s+implements\b|\s*\{|$)`)
)

// Parse extracts Dart symbols from content. Mixin applications count as
// implements edges.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		sig := strings.TrimSpace(line)

		if m := classRe.FindStringSubmatch(line); m != nil {
			name := m[1]
			clause := m[2]

			var parents []types.Parent
			if em := extendsRe.FindStringSubmatch(clause); em != nil {
				parents = append(parents, types.Parent{Name: em[1], Kind: types.InheritExtends})
			}
			if im := implementsRe.FindStringSubmatch(clause); im != nil {
				for _, p := range splitNames(im[1]) {
					parents = append(parents, types.Parent{Name: p, Kind: types.InheritImplements})
				}
			}
			if wm := withRe.FindStringSubmatch(clause); wm != nil {
				for _, p := range splitNames(wm[1]) {
					parents = append(parents, types.Parent{Name: p, Kind: types.InheritImplements})
				}
			}

			symbols = append(symbols, types.ParsedSymbol{
				Name:      name,
				Kind:      types.KindClass,
				Line:      lineNum,
				Signature: sig,
				Parents:   parents,
			})
			continue
		}

		if m := mixinRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindInterface,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := enumRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindEnum,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := typedefRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindTypeAlias,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := functionRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := fieldRe.FindStringSubmatch(line); m != nil {
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

func splitNames(clause string) []string {
	var result []string
	for _, p := range strings.Split(clause, ",") {
		name := strings.TrimSpace(strings.SplitN(strings.TrimSpace(p), "<", 2)[0])
		if name != "" {
			result = append(result, name)
		}
	}
	return result
}
