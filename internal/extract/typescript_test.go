package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the TypeScript extractor:
// - Extract interface and type-alias documentation
// - Emit property signatures and class fields with the property label
// - Attribute interface members to the interface scope and class members
//   to the class scope
// - Share the usage shapes with the JavaScript extractor

func TestTypeScriptExtractor_Docstrings(t *testing.T) {
	t.Parallel()

	e := NewTypeScriptExtractor()
	docs, err := e.ExtractDocstrings(loadFixture(t, "typescript/sample.ts"))
	require.NoError(t, err)

	require.Len(t, docs, 7)

	assert.Equal(t, Docstring{
		Name:      "Point",
		Type:      "interface declaration",
		Docstring: "/** A point in 2-D space. */",
	}, docs[0])

	assert.Equal(t, Docstring{
		Name:      "x",
		Parent:    "Point",
		Type:      "property",
		Docstring: "/** Horizontal offset. */",
	}, docs[1])

	assert.Equal(t, Docstring{
		Name:      "y",
		Parent:    "Point",
		Type:      "property",
		Docstring: "/** Vertical offset. */",
	}, docs[2])

	assert.Equal(t, Docstring{
		Name:      "Pair",
		Type:      "type alias declaration",
		Docstring: "/** Pair of strings. */",
	}, docs[3])

	assert.Equal(t, Docstring{
		Name:      "Widget",
		Type:      "class declaration",
		Docstring: "/** Widget base. */",
	}, docs[4])

	assert.Equal(t, Docstring{
		Name:      "label",
		Parent:    "Widget",
		Type:      "property",
		Docstring: "/** Widget label. */",
	}, docs[5])

	assert.Equal(t, Docstring{
		Name:      "draw",
		Parent:    "Widget",
		Type:      "method definition",
		Docstring: "/** Draws the widget. */",
	}, docs[6])
}

func TestTypeScriptExtractor_UsedSymbols(t *testing.T) {
	t.Parallel()

	source := []byte(`function demo(): void {
  const c = new Client();
  c.connect();
  start();
}
`)

	e := NewTypeScriptExtractor()
	symbols, err := e.ExtractUsedSymbols(source)
	require.NoError(t, err)

	assert.Equal(t, []Symbol{
		{Name: "Client", Type: "constructor"},
		{Name: "connect", Parent: "c", Type: "method"},
		{Name: "start", Type: "function"},
	}, symbols)
}
