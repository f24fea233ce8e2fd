package collector

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a project tree and re-harvests it whenever matched files
// change, invoking the supplied callback with the fresh aggregate.
type Watcher struct {
	collector    *Collector
	rootDir      string
	discovery    *fileDiscovery
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	onHarvest    func(*Collector, string)
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
}

// NewWatcher creates a file watcher over rootDir. onHarvest runs after each
// debounced batch of changes.
func NewWatcher(c *Collector, rootDir string, onHarvest func(*Collector, string)) (*Watcher, error) {
	discovery, err := newFileDiscovery(rootDir, nil, c.ignore)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		collector:    c,
		rootDir:      rootDir,
		discovery:    discovery,
		watcher:      watcher,
		debounceTime: 500 * time.Millisecond,
		onHarvest:    onHarvest,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}

	if err := w.addDirectoriesRecursively(rootDir); err != nil {
		watcher.Close()
		return nil, err
	}

	return w, nil
}

// Start begins watching for file changes.
func (w *Watcher) Start(ctx context.Context) {
	go w.watch(ctx)
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		w.watcher.Close()
	})
}

// watch is the event loop with debouncing.
func (w *Watcher) watch(ctx context.Context) {
	defer close(w.doneCh)

	var debounceTimer *time.Timer
	harvestCh := make(chan struct{}, 1)
	changed := 0

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.shouldProcessEvent(event) {
				continue
			}
			changed++

			// New directories need watching too.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addDirectoriesRecursively(event.Name); err != nil {
						log.Printf("Warning: failed to watch new directory %s: %v", event.Name, err)
					}
				}
			}

			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}
			debounceTimer = time.AfterFunc(w.debounceTime, func() {
				select {
				case harvestCh <- struct{}{}:
				default:
				}
			})

		case <-harvestCh:
			if changed == 0 {
				continue
			}
			log.Printf("Re-harvesting after %d change(s)...", changed)
			changed = 0
			start := time.Now()
			w.onHarvest(w.collector, w.rootDir)
			log.Printf("Harvest complete in %v", time.Since(start))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// shouldProcessEvent keeps only write/create/remove events on files some
// extractor claims and that discovery would not ignore.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
		return false
	}

	relPath, err := filepath.Rel(w.rootDir, event.Name)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	if w.discovery.shouldIgnore(relPath) {
		return false
	}

	// Directory creations pass through so new subtrees get watched.
	if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
		return true
	}

	_, claimed := w.collector.bySuffix[strings.ToLower(filepath.Ext(event.Name))]
	return claimed
}

// addDirectoriesRecursively adds all non-ignored directories under rootPath
// to the watcher.
func (w *Watcher) addDirectoriesRecursively(rootPath string) error {
	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Printf("Warning: error accessing %s: %v", path, err)
			return nil
		}

		if !info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(w.rootDir, path)
		if err != nil {
			return nil
		}
		if relPath != "." && w.discovery.shouldIgnore(filepath.ToSlash(relPath)) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			log.Printf("Warning: failed to watch directory %s: %v", path, err)
		}
		return nil
	})
}
