package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the C++ extractor:
// - Join contiguous // comment lines in source order
// - Require the Doxygen prefix for block documentation; a plain /* block
//   is not documentation and stops the backward scan
// - Attribute class members to the enclosing class scope
// - Attribute declarations inside a namespace to the namespace scope
// - Extract usage occurrences: plain and qualified calls, member calls,
//   template instantiations, constructions, namespace imports

func TestCppExtractor_Docstrings(t *testing.T) {
	t.Parallel()

	e := NewCppExtractor()
	docs, err := e.ExtractDocstrings(loadFixture(t, "cpp/sample.cpp"))
	require.NoError(t, err)

	require.Len(t, docs, 4)

	assert.Equal(t, Docstring{
		Name:      "add",
		Type:      "function definition",
		Docstring: "// Adds two integers\n// Returns the sum",
	}, docs[0])

	// sub carries only a plain /* block, which is not documentation.
	assert.Equal(t, Docstring{
		Name:      "User",
		Type:      "class specifier",
		Docstring: "/** Represents a user. */",
	}, docs[1])

	assert.Equal(t, Docstring{
		Name:      "id",
		Parent:    "User",
		Type:      "field declaration",
		Docstring: "/** The user's ID. */",
	}, docs[2])

	assert.Equal(t, Docstring{
		Name:      "getId",
		Parent:    "User",
		Type:      "function definition",
		Docstring: "/** Returns the user ID. */",
	}, docs[3])
}

func TestCppExtractor_NamespaceScope(t *testing.T) {
	t.Parallel()

	source := []byte(`namespace util {
/** Logs a message. */
void log(const char *msg) {}
}
`)

	e := NewCppExtractor()
	docs, err := e.ExtractDocstrings(source)
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "log", docs[0].Name)
	assert.Equal(t, "util", docs[0].Parent)
}

func TestCppExtractor_UsedSymbols(t *testing.T) {
	t.Parallel()

	source := []byte(`using namespace std;

void demo() {
    std::vector<int> v;
    foo();
    util::log("x");
    obj.update();
    auto w = new gui::Window();
}
`)

	e := NewCppExtractor()
	symbols, err := e.ExtractUsedSymbols(source)
	require.NoError(t, err)

	assert.Equal(t, []Symbol{
		{Name: "std", Type: "namespace"},
		{Name: "vector", Type: "template"},
		{Name: "foo", Type: "function"},
		{Name: "log", Parent: "util", Type: "function"},
		{Name: "update", Parent: "obj", Type: "method"},
		{Name: "Window", Parent: "gui", Type: "constructor"},
	}, symbols)
}
