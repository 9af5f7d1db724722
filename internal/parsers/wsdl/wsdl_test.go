package wsdl

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

func TestParseXsdTypes(t *testing.T) {
	content := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:complexType name="CardType">
    <xs:sequence>
      <xs:element name="cardNumber" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
  <xs:simpleType name="CurrencyCode">
    <xs:restriction base="xs:string"/>
  </xs:simpleType>
</xs:schema>
`
	symbols := Parse(content)
	assert.Equal(t, types.KindClass, findSymbol(t, symbols, "CardType").Kind)
	assert.Equal(t, types.KindProperty, findSymbol(t, symbols, "cardNumber").Kind)
	assert.Equal(t, types.KindTypeAlias, findSymbol(t, symbols, "CurrencyCode").Kind)
}

func TestParseWsdlOperations(t *testing.T) {
	content := `<wsdl:definitions>
  <wsdl:message name="GetCardRequest"/>
  <wsdl:portType name="CardPort">
    <wsdl:operation name="GetCard"/>
  </wsdl:portType>
</wsdl:definitions>
`
	symbols := Parse(content)
	assert.Equal(t, types.KindClass, findSymbol(t, symbols, "GetCardRequest").Kind)
	assert.Equal(t, types.KindInterface, findSymbol(t, symbols, "CardPort").Kind)
	assert.Equal(t, types.KindFunction, findSymbol(t, symbols, "GetCard").Kind)
}

func TestParseUnprefixedElements(t *testing.T) {
	symbols := Parse(`<portType name="BarePort"/>` + "\n")
	assert.Equal(t, types.KindInterface, findSymbol(t, symbols, "BarePort").Kind)
}
