package perl

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

func TestParsePackage(t *testing.T) {
	symbols := Parse("package My::Module;\n")
	pkg := findSymbol(t, symbols, "My::Module")
	assert.Equal(t, types.KindPackage, pkg.Kind)
}

func TestParseSubroutine(t *testing.T) {
	symbols := Parse("sub process_data {\n    my ($self) = @_;\n}\n")
	f := findSymbol(t, symbols, "process_data")
	assert.Equal(t, types.KindFunction, f.Kind)
}

func TestParseConstant(t *testing.T) {
	symbols := Parse("use constant MAX_RETRIES => 3;\n")
	c := findSymbol(t, symbols, "MAX_RETRIES")
	assert.Equal(t, types.KindConstant, c.Kind)
}

func TestParseOurVariables(t *testing.T) {
	symbols := Parse("our $VERSION = '1.0';\nour @EXPORT = qw(foo bar);\nour %CONFIG;\n")
	assert.Equal(t, types.KindProperty, findSymbol(t, symbols, "$VERSION").Kind)
	assert.Equal(t, types.KindProperty, findSymbol(t, symbols, "@EXPORT").Kind)
	assert.Equal(t, types.KindProperty, findSymbol(t, symbols, "%CONFIG").Kind)
}

func TestSkipISAVariable(t *testing.T) {
	symbols := Parse("our @ISA = qw(Parent);\n")
	for _, s := range symbols {
		assert.NotEqual(t, "@ISA", s.Name, "@ISA carries inheritance, not a property")
	}
}

func TestParseUseBaseInheritance(t *testing.T) {
	symbols := Parse("package Child;\nuse base qw/Parent1 Parent2/;\n")
	pkg := findSymbol(t, symbols, "Child")
	assert.True(t, hasParent(pkg, "Parent1", types.InheritExtends))
	assert.True(t, hasParent(pkg, "Parent2", types.InheritExtends))
}

func TestParseUseParentInheritance(t *testing.T) {
	symbols := Parse("package MyModule;\nuse parent 'Base::Class';\n")
	pkg := findSymbol(t, symbols, "MyModule")
	assert.True(t, hasParent(pkg, "Base::Class", types.InheritExtends))
}

func TestParseISAInheritance(t *testing.T) {
	symbols := Parse("package Derived;\nour @ISA = qw(Base1 Base2);\n")
	pkg := findSymbol(t, symbols, "Derived")
	assert.True(t, hasParent(pkg, "Base1", types.InheritExtends))
	assert.True(t, hasParent(pkg, "Base2", types.InheritExtends))
}

func TestInheritanceBeforePackageIsDeferred(t *testing.T) {
	symbols := Parse("use base 'Early::Base';\npackage Late;\n")
	pkg := findSymbol(t, symbols, "Late")
	assert.True(t, hasParent(pkg, "Early::Base", types.InheritExtends),
		"parents seen before the first package attach to it")
}

func TestFullPerlModule(t *testing.T) {
	content := `package My::Service;
use base qw/My::Base/;

use constant TIMEOUT => 30;

our $VERSION = '2.0';

sub new {
    my ($class, %args) = @_;
    return bless \%args, $class;
}

sub process {
    my ($self, $data) = @_;
}

1;
`
	symbols := Parse(content)
	assert.Equal(t, types.KindPackage, findSymbol(t, symbols, "My::Service").Kind)
	assert.Equal(t, types.KindConstant, findSymbol(t, symbols, "TIMEOUT").Kind)
	assert.Equal(t, types.KindProperty, findSymbol(t, symbols, "$VERSION").Kind)
	assert.Equal(t, types.KindFunction, findSymbol(t, symbols, "new").Kind)
	assert.Equal(t, types.KindFunction, findSymbol(t, symbols, "process").Kind)

	pkg := findSymbol(t, symbols, "My::Service")
	assert.True(t, hasParent(pkg, "My::Base", types.InheritExtends))
}
