// Package proto extracts symbols from Protocol Buffer definitions
// (proto2 and proto3): messages, enums, services, rpcs and packages.
package proto

import (
	"regexp"
	"strings"

	"github.com/codescope/codescope/pkg/types"
)

var (
	packageRe = regexp.MustCompile(`^\s*package\s+([\w.]+)\s*;`)
	messageRe = regexp.MustCompile(`^\s*message\s+(\w+)\s*\{?`)
	enumRe    = regexp.MustCompile(`^\s*enum\s+(\w+)\s*\{?`)
	serviceRe = regexp.MustCompile(`^\s*service\s+(\w+)\s*\{?`)
	rpcRe     = regexp.MustCompile(`^\s*rpc\s+(\w+)\s*\(`)
)

// Parse extracts protobuf symbols from content.
func Parse(content string) []types.ParsedSymbol {
	var symbols []types.ParsedSymbol

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1

		if m := packageRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindPackage,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := messageRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindClass,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
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

		if m := serviceRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindInterface,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}

		if m := rpcRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, types.ParsedSymbol{
				Name:      m[1],
				Kind:      types.KindFunction,
				Line:      lineNum,
				Signature: strings.TrimSpace(line),
			})
		}
	}

	return symbols
}
