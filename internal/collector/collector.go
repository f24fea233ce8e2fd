// Package collector routes source files to language extractors, aggregates
// the harvested records, and persists them.
package collector

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mvp-joe/docharvest/internal/extract"
)

// Collector walks a project tree and runs the registered extractors over
// every file whose extension they claim. A per-file failure is logged and the
// file is skipped; collection never aborts as a whole.
type Collector struct {
	extractors []extract.Extractor
	bySuffix   map[string]extract.Extractor
	ignore     []string
	workers    int

	// OnProgress, when set, is called after each processed file with the
	// number of files done and the total.
	OnProgress func(done, total int)
}

// Option configures a Collector.
type Option func(*Collector)

// WithIgnorePatterns sets glob patterns (slash-separated, relative to the
// root) for paths to skip.
func WithIgnorePatterns(patterns []string) Option {
	return func(c *Collector) {
		c.ignore = patterns
	}
}

// WithWorkers sets the number of files processed concurrently. Values below
// one select sequential processing.
func WithWorkers(n int) Option {
	return func(c *Collector) {
		c.workers = n
	}
}

// New creates a Collector over the given extractors. When two extractors
// claim the same extension, the last registered one wins.
func New(extractors []extract.Extractor, opts ...Option) *Collector {
	c := &Collector{
		extractors: extractors,
		bySuffix:   make(map[string]extract.Extractor),
		workers:    1,
	}
	for _, e := range extractors {
		for _, suffix := range e.Suffixes() {
			c.bySuffix[strings.ToLower(suffix)] = e
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CollectDocstrings extracts Docstring records from every matched file under
// rootDir and tags each record with its source path.
func (c *Collector) CollectDocstrings(rootDir string) ([]extract.Docstring, error) {
	files, err := c.discover(rootDir)
	if err != nil {
		return nil, err
	}

	batches := make([][]extract.Docstring, len(files))
	err = c.forEachFile(files, func(i int, path string, source []byte) error {
		docs, err := c.bySuffix[fileSuffix(path)].ExtractDocstrings(source)
		if err != nil {
			return err
		}
		for j := range docs {
			docs[j].File = path
		}
		batches[i] = docs
		return nil
	})
	if err != nil {
		return nil, err
	}

	all := []extract.Docstring{}
	for _, batch := range batches {
		all = append(all, batch...)
	}
	log.Printf("Collected %d docstrings from %s", len(all), rootDir)
	return all, nil
}

// CollectSymbols extracts Symbol usage records from every matched file under
// rootDir. Extractors without usage support contribute nothing.
func (c *Collector) CollectSymbols(rootDir string) ([]extract.Symbol, error) {
	files, err := c.discover(rootDir)
	if err != nil {
		return nil, err
	}

	batches := make([][]extract.Symbol, len(files))
	err = c.forEachFile(files, func(i int, path string, source []byte) error {
		usage, ok := c.bySuffix[fileSuffix(path)].(extract.UsageExtractor)
		if !ok {
			return nil
		}
		symbols, err := usage.ExtractUsedSymbols(source)
		if err != nil {
			return err
		}
		batches[i] = symbols
		return nil
	})
	if err != nil {
		return nil, err
	}

	all := []extract.Symbol{}
	for _, batch := range batches {
		all = append(all, batch...)
	}
	log.Printf("Collected %d symbols from %s", len(all), rootDir)
	return all, nil
}

// CollectFileDocstrings extracts docstrings from one file, routed by its
// extension. Files no extractor claims yield nothing.
func (c *Collector) CollectFileDocstrings(path string) ([]extract.Docstring, error) {
	extractor, ok := c.bySuffix[fileSuffix(path)]
	if !ok {
		return nil, nil
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	docs, err := extractor.ExtractDocstrings(source)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].File = path
	}
	return docs, nil
}

func (c *Collector) discover(rootDir string) ([]string, error) {
	suffixes := make(map[string]bool)
	for suffix := range c.bySuffix {
		suffixes[suffix] = true
	}
	fd, err := newFileDiscovery(rootDir, suffixes, c.ignore)
	if err != nil {
		return nil, err
	}
	return fd.discoverFiles()
}

// forEachFile reads and processes every file, sequentially or on a bounded
// worker pool. Results land in per-file slots so aggregate order follows walk
// order regardless of scheduling. Per-file errors are logged, not returned.
func (c *Collector) forEachFile(files []string, process func(i int, path string, source []byte) error) error {
	total := len(files)
	processOne := func(i int) {
		path := files[i]
		source, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Warning: failed to read %s: %v", path, err)
			return
		}
		if err := process(i, path, source); err != nil {
			log.Printf("Warning: failed to parse %s: %v", path, err)
		}
	}

	if c.workers <= 1 {
		for i := range files {
			processOne(i)
			if c.OnProgress != nil {
				c.OnProgress(i+1, total)
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(c.workers)
	done := 0
	progressCh := make(chan struct{}, total)
	for i := range files {
		g.Go(func() error {
			processOne(i)
			progressCh <- struct{}{}
			return nil
		})
	}

	if c.OnProgress != nil {
		for range files {
			<-progressCh
			done++
			c.OnProgress(done, total)
		}
	}

	return g.Wait()
}

func fileSuffix(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
