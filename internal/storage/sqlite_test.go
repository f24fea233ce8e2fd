package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/docharvest/internal/extract"
)

// Test Plan for the SQLite store:
// - Open creates the database file and schema
// - Docstrings round-trip through save and read in insertion order
// - Symbols round-trip through save and read in insertion order
// - Saving replaces previous contents instead of appending
// - Reading an empty table yields no records

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "harvest.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_DocstringsRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	docs := []extract.Docstring{
		{File: "a.py", Name: "<module>", Type: "module", Docstring: `"""mod doc"""`},
		{File: "a.py", Name: "add", Parent: "Calculator", Type: "function", Docstring: `"""Add."""`},
	}
	require.NoError(t, store.SaveDocstrings(docs))

	back, err := store.ReadDocstrings()
	require.NoError(t, err)
	assert.Equal(t, docs, back)
}

func TestStore_SymbolsRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	symbols := []extract.Symbol{
		{Name: "vector", Type: "template"},
		{Name: "log", Parent: "util", Type: "function"},
	}
	require.NoError(t, store.SaveSymbols(symbols))

	back, err := store.ReadSymbols()
	require.NoError(t, err)
	assert.Equal(t, symbols, back)
}

func TestStore_SaveReplaces(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	require.NoError(t, store.SaveDocstrings([]extract.Docstring{
		{File: "old.py", Name: "old", Type: "function", Docstring: "d"},
	}))
	require.NoError(t, store.SaveDocstrings([]extract.Docstring{
		{File: "new.py", Name: "new", Type: "function", Docstring: "d"},
	}))

	back, err := store.ReadDocstrings()
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, "new", back[0].Name)
}

func TestStore_EmptyReads(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	docs, err := store.ReadDocstrings()
	require.NoError(t, err)
	assert.Empty(t, docs)

	symbols, err := store.ReadSymbols()
	require.NoError(t, err)
	assert.Empty(t, symbols)
}
