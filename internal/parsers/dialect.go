package parsers

import (
	"github.com/codescope/codescope/internal/parsers/cpp"
	"github.com/codescope/codescope/internal/parsers/csharp"
	"github.com/codescope/codescope/internal/parsers/dart"
	"github.com/codescope/codescope/internal/parsers/golang"
	"github.com/codescope/codescope/internal/parsers/kotlin"
	"github.com/codescope/codescope/internal/parsers/objc"
	"github.com/codescope/codescope/internal/parsers/perl"
	"github.com/codescope/codescope/internal/parsers/proto"
	"github.com/codescope/codescope/internal/parsers/python"
	"github.com/codescope/codescope/internal/parsers/ruby"
	"github.com/codescope/codescope/internal/parsers/rust"
	"github.com/codescope/codescope/internal/parsers/swift"
	"github.com/codescope/codescope/internal/parsers/typescript"
	"github.com/codescope/codescope/internal/parsers/wsdl"
	"github.com/codescope/codescope/pkg/types"
)

// Dialect selects the pattern set applied to a file's content.
type Dialect int

const (
	DialectKotlin Dialect = iota
	DialectSwift
	DialectObjC
	DialectTypeScript
	DialectVue
	DialectSvelte
	DialectPerl
	DialectProto
	DialectWSDL
	DialectCpp
	DialectPython
	DialectGo
	DialectRust
	DialectRuby
	DialectCSharp
	DialectDart
)

var dialectByExt = map[string]Dialect{
	"kt":   DialectKotlin,
	"java": DialectKotlin,

	"swift": DialectSwift,

	"m": DialectObjC,
	"h": DialectObjC,

	"ts":     DialectTypeScript,
	"tsx":    DialectTypeScript,
	"js":     DialectTypeScript,
	"jsx":    DialectTypeScript,
	"mjs":    DialectTypeScript,
	"cjs":    DialectTypeScript,
	"vue":    DialectVue,
	"svelte": DialectSvelte,

	"pm": DialectPerl,
	"pl": DialectPerl,
	"t":  DialectPerl,

	"proto": DialectProto,

	"wsdl": DialectWSDL,
	"xsd":  DialectWSDL,

	"cpp": DialectCpp,
	"cc":  DialectCpp,
	"c":   DialectCpp,
	"hpp": DialectCpp,

	"py": DialectPython,

	"go": DialectGo,

	"rs": DialectRust,

	"rb": DialectRuby,

	"cs": DialectCSharp,

	"dart": DialectDart,
}

// SupportedExtension reports whether files with the given extension
// (without the leading dot) are indexed.
func SupportedExtension(ext string) bool {
	_, ok := dialectByExt[ext]
	return ok
}

// DialectForExt maps an extension to its dialect. The second return is
// false for extensions outside the supported set; such files must be
// rejected before extraction.
func DialectForExt(ext string) (Dialect, bool) {
	d, ok := dialectByExt[ext]
	return d, ok
}

// ParseSymbols runs the dialect's pattern set over the content. Vue and
// Svelte components are reduced to their script block first and parsed
// with the TypeScript set. Unrecognized dialect values fall back to the
// Kotlin set, matching the historical dispatcher behavior.
func ParseSymbols(d Dialect, content string) []types.ParsedSymbol {
	switch d {
	case DialectSwift:
		return swift.Parse(content)
	case DialectObjC:
		return objc.Parse(content)
	case DialectTypeScript:
		return typescript.Parse(content)
	case DialectVue:
		return typescript.Parse(typescript.ExtractVueScript(content))
	case DialectSvelte:
		return typescript.Parse(typescript.ExtractSvelteScript(content))
	case DialectPerl:
		return perl.Parse(content)
	case DialectProto:
		return proto.Parse(content)
	case DialectWSDL:
		return wsdl.Parse(content)
	case DialectCpp:
		return cpp.Parse(content)
	case DialectPython:
		return python.Parse(content)
	case DialectGo:
		return golang.Parse(content)
	case DialectRust:
		return rust.Parse(content)
	case DialectRuby:
		return ruby.Parse(content)
	case DialectCSharp:
		return csharp.Parse(content)
	case DialectDart:
		return dart.Parse(content)
	default:
		return kotlin.Parse(content)
	}
}

// ParseFile extracts both symbols and references for a file.
func ParseFile(d Dialect, content string) ([]types.ParsedSymbol, []types.ParsedRef) {
	symbols := ParseSymbols(d, content)
	refs := ExtractRefs(content, symbols)
	return symbols, refs
}
