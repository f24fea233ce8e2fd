package collector

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// fileDiscovery walks a root directory and yields the files whose extension
// some extractor claims, honoring ignore patterns.
type fileDiscovery struct {
	rootDir        string
	suffixes       map[string]bool
	ignorePatterns []compiledPattern
}

func newFileDiscovery(rootDir string, suffixes map[string]bool, ignorePatterns []string) (*fileDiscovery, error) {
	fd := &fileDiscovery{
		rootDir:  rootDir,
		suffixes: suffixes,
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		fd.ignorePatterns = append(fd.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return fd, nil
}

// discoverFiles returns all matching files under the root, in walk order.
func (fd *fileDiscovery) discoverFiles() ([]string, error) {
	files := []string{}

	err := filepath.Walk(fd.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fd.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if fd.shouldIgnore(relPath) && relPath != "." {
				return filepath.SkipDir
			}
			return nil
		}

		if fd.shouldIgnore(relPath) {
			return nil
		}

		if fd.suffixes[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// shouldIgnore checks if a path matches any ignore pattern.
func (fd *fileDiscovery) shouldIgnore(relPath string) bool {
	// Version control metadata is never harvested.
	if relPath == ".git" || strings.HasPrefix(relPath, ".git/") {
		return true
	}

	if fd.matchesAnyPattern(relPath) {
		return true
	}

	// A directory name should also match patterns written with a /** suffix,
	// e.g. "node_modules" against "node_modules/**".
	return fd.matchesAnyPattern(relPath + "/**")
}

func (fd *fileDiscovery) matchesAnyPattern(path string) bool {
	for _, cp := range fd.ignorePatterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// Root-level files should match "**/"-prefixed patterns too, so that
	// "**/*.min.js" excludes both "x.min.js" and "dist/x.min.js".
	if !strings.Contains(path, "/") {
		for _, cp := range fd.ignorePatterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if g, err := glob.Compile(simplified, '/'); err == nil && g.Match(path) {
					return true
				}
			}
		}
	}

	return false
}
