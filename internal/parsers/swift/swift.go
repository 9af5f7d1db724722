// Package swift extracts symbols from Swift sources: classes, structs,
// protocols, enums, actors, extensions, functions, properties and type
// aliases.
package swift

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	typeRe = regexp.MustCompile(`^[\s]*((?:public|private|internal|fileprivate|open|final|indirect)[\s]+)*(class|struct|protocol|enum|actor)\s+(\w+)(?:\s*<[^>]*>)?(?:\s*:\s*([^{]+))?`)

	extensionRe = regexp.MustCompile(`^[\s]*(?:public|private|internal|fileprivate)?\s*extension\s+(\w+)`)

	funcRe = regexp.MustCompile(`^[\s]*((?:public|private|internal|fileprivate|open|static|class|override|mutating|final|convenience|required)[\s]+)*func\s+(\w+)(?:\s*<[^>]*>)?\s*\(`)

	propertyRe = regexp.MustCompile(`^[\s]*((?:public|private|internal|fileprivate|open|static|class|override|lazy|weak|unowned)[\s]+)*(?:let|var)\s+(\w+)\s*[:=]`)

	typealiasRe = regexp.MustCompile(`^[\s]*(?:public|private|internal|fileprivate)?\s*typealias\s+(\w+)\s*=`)
)

// Parse extracts Swift symbols from content. For classes the first
// parent in the inheritance clause is the superclass; every other
// parent, and every parent of a struct or enum, is protocol adoption.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1

		if m := typeRe.FindStringSubmatch(line); m != nil {
			keyword := m[2]
			name := m[3]

			var kind types.SymbolKind
			switch keyword {
			case "class", "actor":
				kind = types.KindClass
			case "struct":
				kind = types.KindStruct
			case "protocol":
				kind = types.KindProtocol
			case "enum":
				kind = types.KindEnum
			}

			var parents []types.Parent
			if m[4] != "" {
				for idx, p := range splitParents(m[4]) {
					inherit := types.InheritImplements
					if keyword == "protocol" || (keyword == "class" && idx == 0) {
						inherit = types.InheritExtends
					}
					parents = append(parents, types.Parent{Name: p, Kind: inherit})
				}
			}

			symbols = append(symbols, types.ParsedSymbol{
				Name:      name,
				Kind:      kind,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
				Parents:   parents,
			})
		}

		if m := extensionRe.FindStringSubmatch(line); m != nil {
			name := m[1]
			symbols = append(symbols, types.ParsedSymbol{
				Name:      name + "+Extension",
				Kind:      types.KindObject,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
				Parents:   []types.Parent{{Name: name, Kind: types.InheritExtends}},
			})
		}

		if m := funcRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[2],
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := propertyRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[2],
				Kind:      types.KindProperty,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := typealiasRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindTypeAlias,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}
	}

	return symbols
}

func splitParents(clause string) []string {
	var result []string
	for _, p := range strings.Split(clause, ",") {
		name := strings.TrimSpace(strings.SplitN(strings.TrimSpace(p), "<", 2)[0])
		name = strings.TrimSuffix(name, "?")
		if name != "" && name != "{" {
			result = append(result, name)
		}
	}
	return result
}
