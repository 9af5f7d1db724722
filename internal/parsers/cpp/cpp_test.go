package cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codescope/codescope/pkg/types"
)

func findSymbol(t *testing.T, symbols []types.ParsedSymbol, name string) types.ParsedSymbol {
	t.Helper()
	for _, s := range symbols {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("symbol %q not found in %v", name, symbols)
	return types.ParsedSymbol{}
}

func hasParent(s types.ParsedSymbol, name string, kind types.InheritKind) bool {
	for _, p := range s.Parents {
		if p.Name == name && p.Kind == kind {
			return true
		}
	}
	return false
}

func TestParseClassWithBases(t *testing.T) {
	symbols := Parse("class CardView : public View, private Loggable {\n};\n")
	cls := findSymbol(t, symbols, "CardView")
	assert.Equal(t, types.KindClass, cls.Kind)
	assert.True(t, hasParent(cls, "View", types.InheritExtends))
	assert.True(t, hasParent(cls, "Loggable", types.InheritExtends))
}

func TestParseStruct(t *testing.T) {
	symbols := Parse("struct Point {\n  int x;\n};\n")
	s := findSymbol(t, symbols, "Point")
	assert.Equal(t, types.KindStruct, s.Kind)
}

func TestParseTemplateClass(t *testing.T) {
	symbols := Parse("template <typename T> class Buffer {\n};\n")
	cls := findSymbol(t, symbols, "Buffer")
	assert.Equal(t, types.KindClass, cls.Kind)
}

func TestParseEnums(t *testing.T) {
	symbols := Parse("enum Color { RED };\nenum class State { IDLE };\n")
	assert.Equal(t, types.KindEnum, findSymbol(t, symbols, "Color").Kind)
	assert.Equal(t, types.KindEnum, findSymbol(t, symbols, "State").Kind)
}

func TestParseTypedefAndUsing(t *testing.T) {
	symbols := Parse("typedef unsigned long card_id_t;\nusing CardMap = std::map<int, Card>;\n")
	assert.Equal(t, types.KindTypeAlias, findSymbol(t, symbols, "card_id_t").Kind)
	assert.Equal(t, types.KindTypeAlias, findSymbol(t, symbols, "CardMap").Kind)
}

func TestParseFunctionDefinition(t *testing.T) {
	symbols := Parse("int computeTotal(const Cart& cart) {\n  return 0;\n}\n")
	f := findSymbol(t, symbols, "computeTotal")
	assert.Equal(t, types.KindFunction, f.Kind)
}

func TestControlFlowNotAFunction(t *testing.T) {
	symbols := Parse("  if (ready) {\n  while (running) {\n")
	for _, s := range symbols {
		assert.NotEqual(t, "if", s.Name)
		assert.NotEqual(t, "while", s.Name)
	}
}

func TestParseDefine(t *testing.T) {
	symbols := Parse("#define MAX_CARDS 52\n")
	c := findSymbol(t, symbols, "MAX_CARDS")
	assert.Equal(t, types.KindConstant, c.Kind)
}
