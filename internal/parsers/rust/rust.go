// Package rust extracts symbols from Rust sources: structs, enums,
// traits, functions, type aliases, constants and statics. Trait
// implementations attach an edge to the type when it is declared earlier
// in the same file.
package rust

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	structRe = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?struct\s+(\w+)`)

	enumRe = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?enum\s+(\w+)`)

	traitRe = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?(?:unsafe\s+)?trait\s+(\w+)(?:\s*<[^>]*>)?(?:\s*:\s*([^{]+))?`)

	fnRe = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?(?:const\s+)?(?:async\s+)?(?:unsafe\s+)?(?:extern\s+"[^"]*"\s+)?fn\s+(\w+)`)

	typeAliasRe = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?type\s+(\w+)(?:\s*<[^>]*>)?\s*=`)

	constRe = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?(?:const|static)\s+(?:mut\s+)?([A-Za-z_]\w*)\s*:`)

	implRe = regexp.MustCompile(`^\s*(?:unsafe\s+)?impl(?:\s*<[^>]*>)?\s+(?:(\w+)(?:\s*<[^>]*>)?\s+for\s+)?(\w+)`)
)

// Parse extracts Rust symbols from content.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		sig := strings.TrimSpace(line)

		if m := structRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindStruct,
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

		if m := traitRe.FindStringSubmatch(line); m != nil {
			var parents []types.Parent
			if m[2] != "" {
				for _, super := range strings.Split(m[2], "+") {
					name := strings.TrimSpace(strings.SplitN(strings.TrimSpace(super), "<", 2)[0])
					if name != "" {
						parents = append(parents, types.Parent{Name: name, Kind: types.InheritExtends})
					}
				}
			}
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindInterface,
				Line:      lineNum,
				Signature: sig,
				Parents:   parents,
			})
			continue
		}

		if m := typeAliasRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindTypeAlias,
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

		if m := fnRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: sig,
			})
			continue
		}

		if m := implRe.FindStringSubmatch(line); m != nil {
			trait, typeName := m[1], m[2]
			if trait == "" {
				continue
			}
			// Attach only when the implementing type was declared above.
			for idx := range symbols {
				s := &symbols[idx]
				if s.Name == typeName && (s.Kind == types.KindStruct || s.Kind == types.KindEnum) {
					s.Parents = append(s.Parents, types.Parent{Name: trait, Kind: types.InheritImplements})
					break
				}
			}
		}
	}

	return symbols
}
