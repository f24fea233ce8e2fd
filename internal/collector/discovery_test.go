package collector

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for file discovery:
// - Collect only files with claimed extensions, in walk order
// - Never descend into .git
// - Skip directories matched by a pattern with a /** suffix
// - Match root-level files against **/-prefixed patterns
// - Reject invalid glob patterns at construction

func discoverUnder(t *testing.T, root string, patterns []string) []string {
	t.Helper()

	fd, err := newFileDiscovery(root, map[string]bool{".py": true, ".js": true}, patterns)
	require.NoError(t, err)

	files, err := fd.discoverFiles()
	require.NoError(t, err)

	rel := make([]string, len(files))
	for i, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel[i] = filepath.ToSlash(r)
	}
	return rel
}

func TestDiscovery_ClaimedSuffixesOnly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "a.py", "")
	writeSource(t, root, "b.txt", "")
	writeSource(t, root, "sub/c.js", "")

	assert.ElementsMatch(t, []string{"a.py", "sub/c.js"}, discoverUnder(t, root, nil))
}

func TestDiscovery_GitDirectorySkipped(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, ".git/hooks/hook.py", "")
	writeSource(t, root, "a.py", "")

	assert.Equal(t, []string{"a.py"}, discoverUnder(t, root, nil))
}

func TestDiscovery_DirectoryPattern(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "node_modules/lib/index.js", "")
	writeSource(t, root, "src/app.js", "")

	assert.Equal(t, []string{"src/app.js"}, discoverUnder(t, root, []string{"node_modules/**"}))
}

func TestDiscovery_RootLevelDoubleStarPattern(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "app.min.js", "")
	writeSource(t, root, "dist/vendor.min.js", "")
	writeSource(t, root, "app.js", "")

	assert.Equal(t, []string{"app.js"}, discoverUnder(t, root, []string{"**/*.min.js"}))
}

func TestDiscovery_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := newFileDiscovery(t.TempDir(), nil, []string{"[unclosed"})
	require.Error(t, err)
}
