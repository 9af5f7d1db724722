// Package csharp extracts symbols from C# sources: classes, interfaces,
// structs, enums with their base lists, methods, properties, constants
// and delegates.
package csharp

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	typeRe = regexp.MustCompile(`^\s*((?:public|private|protected|internal|static|abstract|sealed|partial|readonly)\s+)*(class|interface|struct|enum)\s+(\w+)(?:\s*<[^>]*>)?(?:\s*:\s*([^{]+))?`)

	methodRe = regexp.MustCompile(`^\s*((?:public|private|protected|internal|static|virtual|override|abstract|sealed|async|partial|extern)\s+)+[\w<>\[\],.?]+\s+(\w+)\s*\(`)

	propertyRe = regexp.MustCompile(`^\s*((?:public|private|protected|internal|static|virtual|override|abstract|required)\s+)+[\w<>\[\],.?]+\s+(\w+)\s*\{\s*get`)

	constRe = regexp.MustCompile(`^\s*((?:public|private|protected|internal)\s+)*const\s+[\w<>\[\].?]+\s+(\w+)\s*=`)

	delegateRe = regexp.MustCompile(`^\s*((?:public|private|protected|internal)\s+)*delegate\s+[\w<>\[\].?]+\s+(\w+)\s*\(`)
)

// Parse extracts C# symbols from content. In a base list the first
// entry is the superclass unless it carries the I-prefix interface
// convention; I-prefixed names are adopted interfaces.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		sig := strings.TrimSpace(line)

		if m := typeRe.FindStringSubmatch(line); m != nil {
			keyword := m[2]
			name := m[3]

			var kind types.SymbolKind
			switch keyword {
			case "class":
				kind = types.KindClass
			case "interface":
				kind = types.KindInterface
			case "struct":
				kind = types.KindStruct
			case "enum":
				kind = types.KindEnum
			}

			var parents []types.Parent
			if m[4] != "" && keyword != "enum" {
				for idx, base := range strings.Split(m[4], ",") {
					baseName := strings.TrimSpace(strings.SplitN(strings.TrimSpace(base), "<", 2)[0])
					if baseName == "" {
						continue
					}
					inherit := types.InheritImplements
					if keyword == "interface" {
						inherit = types.InheritExtends
					} else if idx == 0 && !isInterfaceName(baseName) {
						inherit = types.InheritExtends
					}
					parents = append(parents, types.Parent{Name: baseName, Kind: inherit})
				}
			}

			symbols = append(symbols, types.ParsedSymbol{
				Name:      name,
				Kind:      kind,
				Line:      lineNum,
				Signature: sig,
				Parents:   parents,
			})
			continue
		}

		if m := delegateRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[2],
				Kind:      types.KindTypeAlias,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := constRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[2],
				Kind:      types.KindConstant,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := propertyRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[2],
				Kind:      types.KindProperty,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := methodRe.FindStringSubmatch(line); m != nil {
			name := m[2]
			if name == "if" || name == "while" || name == "switch" || name == "for" {
				continue
			}
			symbols = append(symbols, types.ParsedSymbol{
				Name:      name,
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: sig,
			})
		}
	}

	return symbols
}

// isInterfaceName follows the .NET convention of an I prefix followed
// by another capital.
func isInterfaceName(name string) bool {
	return len(name) >= 2 && name[0] == 'I' && name[1] >= 'A' && name[1] <= 'Z'
}
