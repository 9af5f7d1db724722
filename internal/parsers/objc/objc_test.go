package objc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestParseInterface(t *testing.T) {
	symbols := Parse("@interface MyView : UIView <UITableViewDelegate, UITableViewDataSource>\n@end\n")
	cls := findSymbol(t, symbols, "MyView")
	assert.Equal(t, types.KindClass, cls.Kind)
	assert.True(t, hasParent(cls, "UIView", types.InheritExtends))
	assert.True(t, hasParent(cls, "UITableViewDelegate", types.InheritImplements))
	assert.True(t, hasParent(cls, "UITableViewDataSource", types.InheritImplements))
}

func TestParseCategory(t *testing.T) {
	symbols := Parse("@interface NSString (Utilities)\n@end\n")
	cat := findSymbol(t, symbols, "NSString+Category")
	assert.Equal(t, types.KindObject, cat.Kind)
	assert.Equal(t, 1, cat.Line)
	assert.True(t, hasParent(cat, "NSString", types.InheritExtends))
}

func TestParseProtocol(t *testing.T) {
	symbols := Parse("@protocol Fetchable <NSObject>\n@end\n")
	p := findSymbol(t, symbols, "Fetchable")
	assert.Equal(t, types.KindInterface, p.Kind)
	assert.True(t, hasParent(p, "NSObject", types.InheritExtends))
}

func TestParseImplementation(t *testing.T) {
	symbols := Parse("@implementation MyService\n@end\n")
	cls := findSymbol(t, symbols, "MyService")
	assert.Equal(t, types.KindClass, cls.Kind)
}

func TestImplementationSkippedWhenInterfaceSeenFirst(t *testing.T) {
	symbols := Parse("@interface MyClass : NSObject\n@end\n@implementation MyClass\n@end\n")

	count := 0
	for _, s := range symbols {
		if s.Name == "MyClass" && s.Kind == types.KindClass {
			count++
		}
	}
	assert.Equal(t, 1, count, "should not duplicate class from @implementation")
}

func TestImplementationBeforeInterfaceDuplicates(t *testing.T) {
	// Dedup runs in document order, so a header declared after its
	// implementation produces a second symbol.
	symbols := Parse("@implementation MyClass\n@end\n@interface MyClass : NSObject\n@end\n")

	count := 0
	for _, s := range symbols {
		if s.Name == "MyClass" && s.Kind == types.KindClass {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestParseMethods(t *testing.T) {
	symbols := Parse("- (void)viewDidLoad {\n}\n+ (instancetype)sharedInstance {\n}\n")
	assert.Equal(t, types.KindFunction, findSymbol(t, symbols, "viewDidLoad").Kind)
	assert.Equal(t, types.KindFunction, findSymbol(t, symbols, "sharedInstance").Kind)
}

func TestParseProperty(t *testing.T) {
	symbols := Parse("@property (nonatomic, strong) NSString *name;\n")
	p := findSymbol(t, symbols, "name")
	assert.Equal(t, types.KindProperty, p.Kind)
}

func TestParseTypedef(t *testing.T) {
	symbols := Parse("typedef struct { int x; int y; } CGPoint;\n")
	ta := findSymbol(t, symbols, "CGPoint")
	assert.Equal(t, types.KindTypeAlias, ta.Kind)
}

func TestParseNSEnumTypedefSuppressesMacroName(t *testing.T) {
	symbols := Parse("typedef NS_ENUM(NSInteger, CardState);\n")
	for _, s := range symbols {
		require.NotEqual(t, "NS_ENUM", s.Name)
		require.NotEqual(t, "NS_OPTIONS", s.Name)
	}
}
