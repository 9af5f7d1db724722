package parsers

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/codescope/codescope/pkg/types"
)

// maxContextLen caps stored context strings so minified lines don't
// bloat the index.
const maxContextLen = 500

// maxLineLen is the cutoff above which a line is assumed minified or
// generated and yields no references.
const maxLineLen = 2000

var (
	// Capitalized identifiers: candidate type references.
	identifierRe = regexp.MustCompile(`\b([A-Z][a-zA-Z0-9]*)\b`)

	// Lowercase identifiers followed by an open paren: candidate calls.
	funcCallRe = regexp.MustCompile(`\b([a-z][a-zA-Z0-9]*)\(`)
)

// refKeywords are never emitted as references: control flow, modifiers
// and a denylist of standard-library type names that would otherwise
// dominate the refs table.
var refKeywords = map[string]struct{}{
	"if": {}, "else": {}, "when": {}, "while": {}, "for": {}, "do": {}, "try": {},
	"catch": {}, "finally": {}, "return": {}, "break": {}, "continue": {}, "throw": {},
	"is": {}, "in": {}, "as": {}, "true": {}, "false": {}, "null": {}, "this": {},
	"super": {}, "class": {}, "interface": {}, "object": {}, "fun": {}, "val": {},
	"var": {}, "import": {}, "package": {}, "private": {}, "public": {},
	"protected": {}, "internal": {}, "override": {}, "abstract": {}, "final": {},
	"open": {}, "sealed": {}, "data": {}, "inner": {}, "enum": {}, "companion": {},
	"lateinit": {}, "const": {}, "suspend": {}, "inline": {}, "crossinline": {},
	"noinline": {}, "reified": {}, "annotation": {}, "typealias": {}, "get": {},
	"set": {}, "init": {}, "constructor": {}, "by": {}, "where": {},
	"String": {}, "Int": {}, "Long": {}, "Double": {}, "Float": {}, "Boolean": {},
	"Byte": {}, "Short": {}, "Char": {}, "Unit": {}, "Any": {}, "Nothing": {},
	"List": {}, "Map": {}, "Set": {}, "Array": {}, "Pair": {}, "Triple": {},
	"MutableList": {}, "MutableMap": {}, "MutableSet": {}, "HashMap": {},
	"ArrayList": {}, "HashSet": {}, "Exception": {}, "Error": {}, "Throwable": {},
	"Result": {}, "Sequence": {},
}

// ExtractRefs scans content for identifier uses that are not keywords
// and not declared in the same file. References are intentionally
// over-inclusive: the analyzer treats any matching name as evidence of
// use.
func ExtractRefs(content string, defined []types.ParsedSymbol) []types.ParsedRef {
	definedNames := make(map[string]struct{}, len(defined))
	for _, s := range defined {
		definedNames[s.Name] = struct{}{}
	}

	var refs []types.ParsedRef

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		if len(trimmed) > maxLineLen {
			continue
		}
		if strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "package ") {
			continue
		}
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "*") {
			continue
		}

		for _, m := range identifierRe.FindAllStringSubmatch(line, -1) {
			name := m[1]
			if _, kw := refKeywords[name]; kw {
				continue
			}
			if _, local := definedNames[name]; local {
				continue
			}
			refs = append(refs, types.ParsedRef{
				Name:    name,
				Line:    lineNum,
				Context: truncateContext(trimmed),
			})
		}

		for _, m := range funcCallRe.FindAllStringSubmatch(line, -1) {
			name := m[1]
			if len(name) <= 2 {
				continue
			}
			if _, kw := refKeywords[name]; kw {
				continue
			}
			if _, local := definedNames[name]; local {
				continue
			}
			refs = append(refs, types.ParsedRef{
				Name:    name,
				Line:    lineNum,
				Context: truncateContext(trimmed),
			})
		}
	}

	return refs
}

// truncateContext caps a context string at maxContextLen, extending to
// the next rune boundary so multi-byte runs are never split.
func truncateContext(s string) string {
	if len(s) <= maxContextLen {
		return s
	}
	end := maxContextLen
	for end < len(s) && !utf8.RuneStart(s[end]) {
		end++
	}
	return s[:end] + "..."
}
