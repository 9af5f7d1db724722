// Package typescript extracts symbols from TypeScript and JavaScript
// sources (.ts, .tsx, .js, .jsx, .mjs, .cjs), and from the script block
// of Vue and Svelte single-file components.
package typescript

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	classRe = regexp.MustCompile(`^[\s]*(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+(\w+)(?:\s*<[^>]*>)?(?:\s+extends\s+([\w.]+)(?:\s*<[^>]*>)?)?(?:\s+implements\s+([^{]+))?`)

	interfaceRe = regexp.MustCompile(`^[\s]*(?:export\s+)?(?:declare\s+)?interface\s+(\w+)(?:\s*<[^>]*>)?(?:\s+extends\s+([^{]+))?`)

	enumRe = regexp.MustCompile(`^[\s]*(?:export\s+)?(?:const\s+)?enum\s+(\w+)`)

	functionRe = regexp.MustCompile(`^[\s]*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*(\w+)\s*\(`)

	// const handler = async (...) => or const double = x =>; function
	// expressions (const render = function(...)) are not matched.
	arrowFnRe = regexp.MustCompile(`^[\s]*(?:export\s+)?(?:const|let|var)\s+(\w+)\s*(?::[^=]+)?=\s*(?:async\s+)?(?:\([^)]*\)|\w+)\s*=>`)

	typeAliasRe = regexp.MustCompile(`^[\s]*(?:export\s+)?type\s+(\w+)(?:\s*<[^>]*>)?\s*=`)

	constRe = regexp.MustCompile(`^[\s]*(?:export\s+)?const\s+([A-Z][A-Z0-9_]*)\s*(?::[^=]+)?=`)

	scriptOpenRe  = regexp.MustCompile(`<script[^>]*>`)
	scriptCloseRe = regexp.MustCompile(`</script>`)
)

// Parse extracts TypeScript/JavaScript symbols from content.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1

		if m := classRe.FindStringSubmatch(line); m != nil {
			var parents []types.Parent
			if m[2] != "" {
				parents = append(parents, types.Parent{Name: baseName(m[2]), Kind: types.InheritExtends})
			}
			if m[3] != "" {
				for _, p := range strings.Split(m[3], ",") {
					name := baseName(strings.TrimSpace(strings.SplitN(strings.TrimSpace(p), "<", 2)[0]))
					if name != "" {
						parents = append(parents, types.Parent{Name: name, Kind: types.InheritImplements})
					}
				}
			}
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindClass,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
				Parents:   parents,
			})
		}

		if m := interfaceRe.FindStringSubmatch(line); m != nil {
			var parents []types.Parent
			if m[2] != "" {
				for _, p := range strings.Split(m[2], ",") {
					name := baseName(strings.TrimSpace(strings.SplitN(strings.TrimSpace(p), "<", 2)[0]))
					if name != "" {
						parents = append(parents, types.Parent{Name: name, Kind: types.InheritExtends})
					}
				}
			}
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindInterface,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
				Parents:   parents,
			})
		}

		if m := enumRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindEnum,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := functionRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := arrowFnRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := typeAliasRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindTypeAlias,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := constRe.FindStringSubmatch(line); m != nil {
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

// ExtractVueScript returns the content of the <script> block of a Vue
// single-file component, or an empty string when none is present.
func ExtractVueScript(content string) string {
	return extractScript(content)
}

// ExtractSvelteScript returns the content of the <script> block of a
// Svelte component, or an empty string when none is present.
func ExtractSvelteScript(content string) string {
	return extractScript(content)
}

func extractScript(content string) string {
	open := scriptOpenRe.FindStringIndex(content)
	if open == nil {
		return ""
	}
	rest := content[open[1]:]
	end := scriptCloseRe.FindStringIndex(rest)
	if end == nil {
		return rest
	}
	return rest[:end[0]]
}

func baseName(name string) string {
	// Drop a namespace qualifier: React.Component -> Component.
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
