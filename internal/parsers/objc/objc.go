// Package objc extracts symbols from Objective-C sources (.m, .h):
// @interface, @protocol, @implementation, methods, @property and
// typedefs.
package objc

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	// @interface ClassName : SuperClass <Protocol1, Protocol2>
	interfaceRe = regexp.MustCompile(`^[\s]*@interface\s+(\w+)(?:\s*\([^)]*\))?(?:\s*:\s*(\w+))?(?:\s*<([^>]+)>)?`)

	protocolRe = regexp.MustCompile(`^[\s]*@protocol\s+(\w+)(?:\s*<([^>]+)>)?`)

	implRe = regexp.MustCompile(`^[\s]*@implementation\s+(\w+)`)

	// - (returnType)methodName:(paramType)param
	methodRe = regexp.MustCompile(`^[\s]*[-+]\s*\([^)]+\)\s*(\w+)`)

	propertyRe = regexp.MustCompile(`^[\s]*@property\s*(?:\([^)]*\))?\s*\w+[\s*]*(\w+)\s*;`)

	typedefRe = regexp.MustCompile(`^[\s]*typedef\s+(?:struct|enum|NS_ENUM|NS_OPTIONS)?\s*(?:\([^)]*\))?\s*\{?[^}]*\}?\s*(\w+)\s*;`)
)

// Parse extracts Objective-C symbols from content.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1

		if m := interfaceRe.FindStringSubmatch(line); m != nil {
			name := m[1]
			var parents []types.Parent

			if m[2] != "" {
				parents = append(parents, types.Parent{Name: m[2], Kind: types.InheritExtends})
			}
			if m[3] != "" {
				for _, proto := range strings.Split(m[3], ",") {
					if proto = strings.TrimSpace(proto); proto != "" {
						parents = append(parents, types.Parent{Name: proto, Kind: types.InheritImplements})
					}
				}
			}

			// A parenthesized tag after the name marks a category.
			isCategory := strings.Contains(line, name+"(") || strings.Contains(line, name+" (")

			if isCategory {
				symbols = append(symbols, types.ParsedSymbol{
					Name:      name + "+Category",
					Kind:      types.KindObject,
					Line:      lineNum,
					Signature: strings.TrimSpace(line),
					Parents:   []types.Parent{{Name: name, Kind: types.InheritExtends}},
				})
			} else {
				symbols = append(symbols, types.ParsedSymbol{
					Name:      name,
					Kind:      types.KindClass,
					Line:      lineNum,
					Signature: strings.TrimSpace(line),
					Parents:   parents,
				})
			}
		}

		if m := protocolRe.FindStringSubmatch(line); m != nil {
			var parents []types.Parent
			if m[2] != "" {
				for _, proto := range strings.Split(m[2], ",") {
					if proto = strings.TrimSpace(proto); proto != "" {
						parents = append(parents, types.Parent{Name: proto, Kind: types.InheritExtends})
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

		if m := implRe.FindStringSubmatch(line); m != nil {
			name := m[1]
			// The implementation only stands in for the class when no
			// @interface emitted it earlier in the file.
			if !hasClass(symbols, name) {
				symbols = append(symbols, types.ParsedSymbol{
					Name:      name,
					Kind:      types.KindClass,
					Line:      lineNum,
					Signature: strings.TrimSpace(line),
				})
			}
		}

		if m := methodRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := propertyRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindProperty,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := typedefRe.FindStringSubmatch(line); m != nil {
			if name := m[1]; name != "" && name != "NS_ENUM" && name != "NS_OPTIONS" {
				symbols = append(symbols, types.ParsedSymbol{
					Name:      name,
					Kind:      types.KindTypeAlias,
					Line:      lineNum,
					Signature: strings.TrimSpace(line),
				})
			}
		}
	}

	return symbols
}

func hasClass(symbols []types.ParsedSymbol, name string) bool {
	for _, s := range symbols {
		if s.Name == name && s.Kind == types.KindClass {
			return true
		}
	}
	return false
}
