package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the extractor registry:
// - AllExtractors covers every supported language
// - ExtractorsFor with no names returns everything
// - ExtractorsFor selects by name, case-insensitively
// - ExtractorsFor rejects unknown language names

func TestAllExtractors(t *testing.T) {
	t.Parallel()

	extractors := AllExtractors()
	require.Len(t, extractors, 6)

	claimed := make(map[string]bool)
	for _, e := range extractors {
		for _, suffix := range e.Suffixes() {
			claimed[suffix] = true
		}
	}
	for _, suffix := range []string{".c", ".h", ".cpp", ".java", ".js", ".ts", ".py"} {
		assert.True(t, claimed[suffix], "suffix %s should be claimed", suffix)
	}
}

func TestExtractorsFor(t *testing.T) {
	t.Parallel()

	all, err := ExtractorsFor(nil)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	selected, err := ExtractorsFor([]string{"Python", " c "})
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "python", selected[0].(*languageExtractor).Name())
	assert.Equal(t, "c", selected[1].(*languageExtractor).Name())

	_, err = ExtractorsFor([]string{"cobol"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}
