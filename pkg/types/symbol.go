package types

import "fmt"

// SymbolKind classifies a declared symbol. The set is closed; the store
// rejects labels outside it.
type SymbolKind int

const (
	KindClass SymbolKind = iota
	KindInterface
	KindObject
	KindEnum
	KindProtocol
	KindStruct
	KindFunction
	KindProperty
	KindTypeAlias
	KindPackage
	KindConstant
)

var kindLabels = [...]string{
	KindClass:     "class",
	KindInterface: "interface",
	KindObject:    "object",
	KindEnum:      "enum",
	KindProtocol:  "protocol",
	KindStruct:    "struct",
	KindFunction:  "function",
	KindProperty:  "property",
	KindTypeAlias: "typealias",
	KindPackage:   "package",
	KindConstant:  "constant",
}

// String returns the stable textual label used at the store boundary.
func (k SymbolKind) String() string {
	if k < 0 || int(k) >= len(kindLabels) {
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
	return kindLabels[k]
}

// ParseSymbolKind maps a stored label back to its kind.
func ParseSymbolKind(label string) (SymbolKind, error) {
	for k, l := range kindLabels {
		if l == label {
			return SymbolKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown symbol kind: %q", label)
}

// InheritKind is the relation recorded on a parent edge.
type InheritKind string

const (
	InheritExtends    InheritKind = "extends"
	InheritImplements InheritKind = "implements"
)

// Parent is an inheritance edge stored by name; resolution to a symbol
// id happens at query time, by design.
type Parent struct {
	Name string
	Kind InheritKind
}

// ParsedSymbol is a single declaration extracted from source.
type ParsedSymbol struct {
	Name      string
	Kind      SymbolKind
	Line      int
	Signature string
	Parents   []Parent
}

// ParsedRef is a textual occurrence of an identifier that is neither a
// declaration nor a keyword.
type ParsedRef struct {
	Name    string
	Line    int
	Context string
}

// Usage is a class referenced from a layout or UI descriptor file.
type Usage struct {
	ClassName string
	Line      int
}
