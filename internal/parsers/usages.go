package parsers

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	// A capitalized element tag in a layout file, package-qualified or
	// not: <com.example.widget.MyView ...> or <LinearLayout ...>
	xmlCustomTagRe = regexp.MustCompile(`<([\w.]+\.)?([A-Z]\w*)`)

	// class / android:name attributes carrying a fully qualified class.
	xmlClassAttrRe = regexp.MustCompile(`(?:\bclass|android:name|app:name)="([\w.]+)"`)

	// customClass attributes in storyboards and xibs.
	storyboardClassRe = regexp.MustCompile(`customClass="(\w+)"`)
)

// ScanXmlUsages extracts class names referenced from a layout/markup
// file. Qualified names keep only the final segment, matching how the
// symbol table stores declarations.
func ScanXmlUsages(content string) []types.Usage {
	var usages []types.Usage

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1

		for _, m := range xmlCustomTagRe.FindAllStringSubmatch(line, -1) {
			usages = append(usages, types.Usage{ClassName: m[2], Line: lineNum})
		}
		for _, m := range xmlClassAttrRe.FindAllStringSubmatch(line, -1) {
			name := m[1]
			if idx := strings.LastIndex(name, "."); idx >= 0 {
				name = name[idx+1:]
			}
			if name != "" {
				usages = append(usages, types.Usage{ClassName: name, Line: lineNum})
			}
		}
	}

	return usages
}

// ScanStoryboardUsages extracts customClass references from a
// storyboard or xib file.
func ScanStoryboardUsages(content string) []types.Usage {
	var usages []types.Usage

	for i, line := range strings.Split(content, "\n") {
		for _, m := range storyboardClassRe.FindAllStringSubmatch(line, -1) {
			usages = append(usages, types.Usage{ClassName: m[1], Line: i + 1})
		}
	}

	return usages
}
