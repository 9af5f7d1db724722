// Package wsdl extracts symbols from WSDL and XSD documents: complex
// types, simple types, elements, port types and operations.
package wsdl

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	complexTypeRe = regexp.MustCompile(`<(?:xsd?|xs):complexType[^>]*\bname\s*=\s*"([^"]+)"`)
	simpleTypeRe  = regexp.MustCompile(`<(?:xsd?|xs):simpleType[^>]*\bname\s*=\s*"([^"]+)"`)
	elementRe     = regexp.MustCompile(`<(?:xsd?|xs):element[^>]*\bname\s*=\s*"([^"]+)"`)
	portTypeRe    = regexp.MustCompile(`<(?:wsdl:)?portType[^>]*\bname\s*=\s*"([^"]+)"`)
	operationRe   = regexp.MustCompile(`<(?:wsdl:)?operation[^>]*\bname\s*=\s*"([^"]+)"`)
	messageRe     = regexp.MustCompile(`<(?:wsdl:)?message[^>]*\bname\s*=\s*"([^"]+)"`)
)

// Parse extracts WSDL/XSD symbols from content.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	add := func(name string, kind types.SymbolKind, line int, sig string) {
		symbols = append(symbols, types.ParsedSymbol{
			Name:      name,
			Kind:      kind,
			Line:      line,
			Signature: sig,
		})
	}

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		sig := strings.TrimSpace(line)

		if m := complexTypeRe.FindStringSubmatch(line); m != nil {
			add(m[1], types.KindClass, lineNum, sig)
		}
		if m := simpleTypeRe.FindStringSubmatch(line); m != nil {
			add(m[1], types.KindTypeAlias, lineNum, sig)
		}
		if m := elementRe.FindStringSubmatch(line); m != nil {
			add(m[1], types.KindProperty, lineNum, sig)
		}
		if m := portTypeRe.FindStringSubmatch(line); m != nil {
			add(m[1], types.KindInterface, lineNum, sig)
		}
		if m := operationRe.FindStringSubmatch(line); m != nil {
			add(m[1], types.KindFunction, lineNum, sig)
		}
		if m := messageRe.FindStringSubmatch(line); m != nil {
			add(m[1], types.KindClass, lineNum, sig)
		}
	}

	return symbols
}
