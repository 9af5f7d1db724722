// Package kotlin extracts symbols from Kotlin and Java sources (.kt,
// .java): classes, objects, interfaces, enums, functions, properties,
// type aliases and Java-style static fields.
package kotlin

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

// maxHeaderLines bounds how far a class header may span before parent
// collection gives up.
const maxHeaderLines = 20

var (
	classStartRe = regexp.MustCompile(`^[\s]*((?:public|private|protected|internal|abstract|open|final|sealed|data|value|inline|annotation|inner|enum)[\s]+)*(?:class|object)\s+(\w+)`)

	interfaceRe = regexp.MustCompile(`^[\s]*((?:public|private|protected|internal|sealed|fun)[\s]+)*interface\s+(\w+)(?:\s*<[^>]*>)?(?:\s*:\s*([^{]+))?`)

	enumRe = regexp.MustCompile(`^[\s]*((?:public|private|protected|internal)[\s]+)*enum\s+class\s+(\w+)`)

	funRe = regexp.MustCompile(`^[\s]*((?:public|private|protected|internal|override|suspend|inline|operator|infix|tailrec|external|actual|expect)[\s]+)*fun\s+(?:<[^>]*>\s*)?(?:(\w+)\.)?(\w+)\s*\(([^)]*)\)(?:\s*:\s*(\S+))?`)

	propertyRe = regexp.MustCompile(`^[\s]*((?:public|private|protected|internal|override|const|lateinit|lazy)[\s]+)*(?:val|var)\s+(\w+)(?:\s*:\s*(\S+))?`)

	typealiasRe = regexp.MustCompile(`^[\s]*typealias\s+(\w+)(?:\s*<[^>]*>)?\s*=\s*(.+)`)

	// Java static fields: public static final Type NAME = value;
	javaFieldRe = regexp.MustCompile(`^[\s]*((?:public|private|protected)[\s]+)?(?:static[\s]+)?(?:final[\s]+)?(\w+(?:<[^>]+>)?)\s+([A-Z][A-Z0-9_]*)\s*=`)

	// Inheritance clause after a primary constructor: ) : Parent1, Parent2 {
	inheritanceRe = regexp.MustCompile(`\)\s*:\s*([^{]+)`)

	// Simple inheritance without a constructor: class Name : Parent
	simpleInheritRe = regexp.MustCompile(`(?:class|object)\s+\w+(?:\s*<[^>]*>)?\s*:\s*([^{]+)`)
)

// Parse extracts Kotlin/Java symbols from content.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		lineNum := i + 1

		// Classes and objects; headers may span multiple lines.
		if m := classStartRe.FindStringSubmatch(line); m != nil {
			name := m[2]
			kind := types.KindClass
			if strings.Contains(line, "object ") {
				kind = types.KindObject
			}

			decl := collectClassDeclaration(lines, i)
			symbols = append(symbols, types.ParsedSymbol{
				Name:      name,
				Kind:      kind,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
				Parents:   parentsFromDeclaration(decl),
			})
		}

		if m := interfaceRe.FindStringSubmatch(line); m != nil {
			name := m[2]
			var parents []types.Parent
			if m[3] != "" {
				for _, parent := range SplitParents(strings.TrimSpace(m[3])) {
					parentName := strings.TrimSpace(strings.SplitN(strings.TrimSpace(parent), "<", 2)[0])
					if parentName != "" {
						parents = append(parents, types.Parent{Name: parentName, Kind: types.InheritExtends})
					}
				}
			}
			symbols = append(symbols, types.ParsedSymbol{
				Name:      name,
				Kind:      types.KindInterface,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
				Parents:   parents,
			})
		}

		if m := enumRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[2],
				Kind:      types.KindEnum,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := funRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[3],
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := propertyRe.FindStringSubmatch(line); m != nil {
			name := m[2]
			if name != "" && name != "val" && name != "var" {
				symbols = append(symbols, types.ParsedSymbol{
					Name:      name,
					Kind:      types.KindProperty,
					Line:      lineNum,
					Signature: strings.TrimSpace(line),
				})
			}
		}

		if m := typealiasRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindTypeAlias,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := javaFieldRe.FindStringSubmatch(line); m != nil {
			if name := m[3]; name != "" {
				symbols = append(symbols, types.ParsedSymbol{
					Name:      name,
					Kind:      types.KindProperty,
					Line:      lineNum,
					Signature: strings.TrimSpace(line),
				})
			}
		}
	}

	return symbols
}

// collectClassDeclaration gathers a class header that may span several
// lines, tracking parenthesis depth and stopping at the opening brace.
func collectClassDeclaration(lines []string, startIdx int) string {
	var b strings.Builder
	parenDepth := 0
	foundBrace := false

	end := len(lines)
	if startIdx+maxHeaderLines < end {
		end = startIdx + maxHeaderLines
	}

	for i := startIdx; i < end; i++ {
		line := lines[i]
		b.WriteString(line)
		b.WriteByte(' ')

		for _, c := range line {
			switch c {
			case '(':
				parenDepth++
			case ')':
				parenDepth--
			case '{':
				foundBrace = true
			}
			if foundBrace {
				break
			}
		}
		if foundBrace {
			break
		}

		// Parens balanced and an inheritance clause present: stop once
		// the next line opens the body.
		if parenDepth == 0 && strings.Contains(line, ":") && i > startIdx {
			if i+1 < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i+1]), "{") {
				break
			}
		}
	}

	return b.String()
}

// parentsFromDeclaration extracts the parent list from a collected
// header. A trailing () on a parent marks a concrete superclass.
func parentsFromDeclaration(decl string) []types.Parent {
	var parents []types.Parent

	if m := inheritanceRe.FindStringSubmatch(decl); m != nil {
		for _, parent := range SplitParents(m[1]) {
			kind := types.InheritImplements
			if strings.Contains(parent, "()") {
				kind = types.InheritExtends
			}
			name := strings.TrimSpace(strings.SplitN(strings.TrimSuffix(strings.TrimSpace(parent), "()"), "<", 2)[0])
			if name != "" {
				parents = append(parents, types.Parent{Name: name, Kind: kind})
			}
		}
	}

	if len(parents) == 0 {
		if m := simpleInheritRe.FindStringSubmatch(decl); m != nil {
			for _, parent := range SplitParents(m[1]) {
				kind := types.InheritImplements
				if strings.Contains(parent, "()") {
					kind = types.InheritExtends
				}
				name := strings.TrimSpace(strings.SplitN(strings.TrimSuffix(strings.TrimSpace(parent), "()"), "<", 2)[0])
				if name != "" {
					parents = append(parents, types.Parent{Name: name, Kind: kind})
				}
			}
		}
	}

	return parents
}

// SplitParents splits an inheritance clause on commas, skipping commas
// nested inside generic arguments.
func SplitParents(parentsStr string) []string {
	var result []string
	depth := 0
	start := 0

	for i, c := range parentsStr {
		switch c {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				if p := strings.TrimSpace(parentsStr[start:i]); p != "" {
					result = append(result, p)
				}
				start = i + 1
			}
		}
	}

	if p := strings.TrimSpace(parentsStr[start:]); p != "" {
		result = append(result, p)
	}

	return result
}
