package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codescope/codescope/pkg/types"
)

func TestSupportedExtensions(t *testing.T) {
	supported := []string{
		"kt", "java", "swift", "m", "h", "ts", "tsx", "js", "jsx", "mjs",
		"cjs", "vue", "svelte", "pm", "pl", "t", "proto", "wsdl", "xsd",
		"cpp", "cc", "c", "hpp", "py", "go", "rs", "rb", "cs", "dart",
	}
	for _, ext := range supported {
		assert.True(t, SupportedExtension(ext), "extension %q should be supported", ext)
	}

	for _, ext := range []string{"txt", "md", "json", "xml", "yaml", "toml", ""} {
		assert.False(t, SupportedExtension(ext), "extension %q should not be supported", ext)
	}
}

func TestDialectForExt(t *testing.T) {
	d, ok := DialectForExt("kt")
	require.True(t, ok)
	assert.Equal(t, DialectKotlin, d)

	d, ok = DialectForExt("vue")
	require.True(t, ok)
	assert.Equal(t, DialectVue, d)

	_, ok = DialectForExt("md")
	assert.False(t, ok)
}

func TestParseSymbolsVueUsesScriptBlock(t *testing.T) {
	content := "<template><div/></template>\n<script>\nexport class CardView {\n}\n</script>\n"
	symbols := ParseSymbols(DialectVue, content)

	require.NotEmpty(t, symbols)
	assert.Equal(t, "CardView", symbols[0].Name)
}

func TestParseSymbolsUnknownDialectFallsBackToKotlin(t *testing.T) {
	// Out-of-range dialect values route to the Kotlin set, matching the
	// historical dispatcher.
	symbols := ParseSymbols(Dialect(99), "class Fallback {\n}\n")
	require.NotEmpty(t, symbols)
	assert.Equal(t, "Fallback", symbols[0].Name)
	assert.Equal(t, types.KindClass, symbols[0].Kind)
}

func TestParseFileReturnsSymbolsAndRefs(t *testing.T) {
	content := "class MyClass {\n  val other: OtherClass = OtherClass()\n}\n"
	symbols, refs := ParseFile(DialectKotlin, content)

	require.NotEmpty(t, symbols)
	assert.Equal(t, "MyClass", symbols[0].Name)

	var names []string
	for _, r := range refs {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "OtherClass")
	assert.NotContains(t, names, "MyClass")
}
