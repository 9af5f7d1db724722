// Package cpp extracts symbols from C and C++ sources (.cpp, .cc, .c,
// .hpp): classes, structs, enums, typedefs, using aliases, function
// definitions and #define constants.
package cpp

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	// class Name : public Base, private Other
	classRe = regexp.MustCompile(`^\s*(?:template\s*<[^>]*>\s*)?(class|struct)\s+(\w+)(?:\s*final)?(?:\s*:\s*([^{]+))?\s*\{?`)

	enumRe = regexp.MustCompile(`^\s*enum(?:\s+class|\s+struct)?\s+(\w+)`)

	typedefRe = regexp.MustCompile(`^\s*typedef\s+.+\s+(\w+)\s*;`)

	usingRe = regexp.MustCompile(`^\s*using\s+(\w+)\s*=`)

	// A definition line: return type, name, parameter list, no trailing
	// semicolon (declarations in headers stay out).
	functionRe = regexp.MustCompile(`^\s*(?:static\s+|inline\s+|virtual\s+|constexpr\s+|extern\s+)*[\w:<>,*&~\s]+?[\s*&]([A-Za-z_]\w*)\s*\([^;]*$`)

	defineRe = regexp.MustCompile(`^\s*#define\s+([A-Z_][A-Z0-9_]*)\s+\S`)
)

var cppKeywords = map[string]struct{}{
	"if": {}, "for": {}, "while": {}, "switch": {}, "return": {}, "sizeof": {},
	"catch": {}, "new": {}, "delete": {}, "throw": {}, "else": {}, "do": {},
}

// Parse extracts C/C++ symbols from content.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		sig := strings.TrimSpace(line)

		if m := classRe.FindStringSubmatch(line); m != nil {
			keyword := m[1]
			kind := types.KindClass
			if keyword == "struct" {
				kind = types.KindStruct
			}

			var parents []types.Parent
			if m[3] != "" {
				for _, base := range strings.Split(m[3], ",") {
					base = strings.TrimSpace(base)
					for _, access := range []string{"public", "protected", "private", "virtual"} {
						base = strings.TrimSpace(strings.TrimPrefix(base, access+" "))
					}
					name := strings.TrimSpace(strings.SplitN(base, "<", 2)[0])
					if name != "" {
						parents = append(parents, types.Parent{Name: name, Kind: types.InheritExtends})
					}
				}
			}

			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[2],
				Kind:      kind,
				Line:      lineNum,
				Signature: sig,
				Parents:   parents,
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

		if m := usingRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindTypeAlias,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := defineRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindConstant,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := functionRe.FindStringSubmatch(line); m != nil {
			name := m[1]
			if _, kw := cppKeywords[name]; kw {
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
