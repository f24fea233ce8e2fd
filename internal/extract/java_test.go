package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Java extractor:
// - Require the Javadoc prefix for block documentation
// - Join contiguous // comment lines in source order
// - Attribute fields, constructors and methods to the enclosing class
// - Resolve field names through the variable declarator
// - Extract usage occurrences: method invocations, object creations,
//   field accesses, with the casing heuristic for receiverless calls

func TestJavaExtractor_Docstrings(t *testing.T) {
	t.Parallel()

	e := NewJavaExtractor()
	docs, err := e.ExtractDocstrings(loadFixture(t, "java/Sample.java"))
	require.NoError(t, err)

	require.Len(t, docs, 4)

	assert.Equal(t, Docstring{
		Name:      "Sample",
		Type:      "class declaration",
		Docstring: "/** A sample holder. */",
	}, docs[0])

	assert.Equal(t, Docstring{
		Name:      "name",
		Parent:    "Sample",
		Type:      "field declaration",
		Docstring: "/** The sample's name. */",
	}, docs[1])

	assert.Equal(t, Docstring{
		Name:      "Sample",
		Parent:    "Sample",
		Type:      "constructor declaration",
		Docstring: "/** Creates a new sample. */",
	}, docs[2])

	assert.Equal(t, Docstring{
		Name:      "getName",
		Parent:    "Sample",
		Type:      "method declaration",
		Docstring: "// Returns the sample's name.\n// Never null.",
	}, docs[3])
}

func TestJavaExtractor_PlainBlockCommentIgnored(t *testing.T) {
	t.Parallel()

	source := []byte(`/* not javadoc */
class Plain {
}
`)

	e := NewJavaExtractor()
	docs, err := e.ExtractDocstrings(source)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestJavaExtractor_UsedSymbols(t *testing.T) {
	t.Parallel()

	source := []byte(`class Demo {
    void run() {
        Helper h = new Helper();
        h.start();
        int n = compute();
        Logger log = Factory.create();
        int m = h.count;
    }
}
`)

	e := NewJavaExtractor()
	symbols, err := e.ExtractUsedSymbols(source)
	require.NoError(t, err)

	assert.Equal(t, []Symbol{
		{Name: "Helper", Type: "constructor"},
		{Name: "start", Parent: "h", Type: "method"},
		{Name: "compute", Type: "function"},
		{Name: "create", Parent: "Factory", Type: "method"},
		{Name: "count", Parent: "h", Type: "field"},
	}, symbols)
}
