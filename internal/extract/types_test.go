package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the record types:
// - Docstring JSON omits empty file and parent fields
// - Symbol JSON omits an empty parent field
// - Records survive a marshal/unmarshal round trip unchanged

func TestDocstring_JSONShape(t *testing.T) {
	t.Parallel()

	d := Docstring{
		Name:      "add",
		Type:      "function",
		Docstring: `"""Add two numbers."""`,
	}

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"add","type":"function","docstring":"\"\"\"Add two numbers.\"\"\""}`, string(data))

	d.File = "pkg/math.py"
	d.Parent = "Calculator"
	data, err = json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"file":"pkg/math.py","name":"add","parent":"Calculator","type":"function","docstring":"\"\"\"Add two numbers.\"\"\""}`, string(data))
}

func TestSymbol_JSONShape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Symbol{Name: "foo", Type: "function"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"foo","type":"function"}`, string(data))
}

func TestRecords_RoundTrip(t *testing.T) {
	t.Parallel()

	docs := []Docstring{
		{File: "a.c", Name: "add", Type: "function definition", Docstring: "// Adds"},
		{File: "a.c", Name: "age", Parent: "Person", Type: "field declaration", Docstring: "/* age */"},
	}
	data, err := json.Marshal(docs)
	require.NoError(t, err)

	var back []Docstring
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, docs, back)

	symbols := []Symbol{
		{Name: "vector", Type: "template"},
		{Name: "log", Parent: "util", Type: "function"},
	}
	data, err = json.Marshal(symbols)
	require.NoError(t, err)

	var symbolsBack []Symbol
	require.NoError(t, json.Unmarshal(data, &symbolsBack))
	assert.Equal(t, symbols, symbolsBack)
}
