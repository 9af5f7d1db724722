package rust

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

func TestParseStruct(t *testing.T) {
	symbols := Parse("pub struct CardIndex {\n    entries: Vec<Entry>,\n}\n")
	s := findSymbol(t, symbols, "CardIndex")
	assert.Equal(t, types.KindStruct, s.Kind)
}

func TestParseEnum(t *testing.T) {
	symbols := Parse("pub(crate) enum State {\n    Active,\n}\n")
	e := findSymbol(t, symbols, "State")
	assert.Equal(t, types.KindEnum, e.Kind)
}

func TestParseTraitWithSupertraits(t *testing.T) {
	symbols := Parse("pub trait Storage: Send + Sync {\n}\n")
	tr := findSymbol(t, symbols, "Storage")
	assert.Equal(t, types.KindInterface, tr.Kind)
	assert.True(t, hasParent(tr, "Send", types.InheritExtends))
	assert.True(t, hasParent(tr, "Sync", types.InheritExtends))
}

func TestParseFunctions(t *testing.T) {
	symbols := Parse("pub async fn fetch_cards() {}\nfn helper() {}\n")
	assert.Equal(t, types.KindFunction, findSymbol(t, symbols, "fetch_cards").Kind)
	assert.Equal(t, types.KindFunction, findSymbol(t, symbols, "helper").Kind)
}

func TestParseTypeAlias(t *testing.T) {
	symbols := Parse("pub type CardId = u64;\n")
	ta := findSymbol(t, symbols, "CardId")
	assert.Equal(t, types.KindTypeAlias, ta.Kind)
}

func TestParseConstAndStatic(t *testing.T) {
	symbols := Parse("pub const MAX_RETRIES: u32 = 3;\nstatic TIMEOUT: u64 = 30;\n")
	assert.Equal(t, types.KindConstant, findSymbol(t, symbols, "MAX_RETRIES").Kind)
	assert.Equal(t, types.KindConstant, findSymbol(t, symbols, "TIMEOUT").Kind)
}

func TestImplAttachesTraitToLocalType(t *testing.T) {
	symbols := Parse("struct Index;\n\nimpl Display for Index {\n}\n")
	s := findSymbol(t, symbols, "Index")
	assert.True(t, hasParent(s, "Display", types.InheritImplements))
}

func TestInherentImplAddsNoParent(t *testing.T) {
	symbols := Parse("struct Index;\n\nimpl Index {\n}\n")
	s := findSymbol(t, symbols, "Index")
	assert.Empty(t, s.Parents)
}
