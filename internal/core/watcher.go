package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/codescope/codescope/internal/parsers"
	"github.com/codescope/codescope/internal/utils"
)

// debounceWindow is how long after the first event of a batch the
// watcher waits before triggering an incremental pass.
const debounceWindow = 500 * time.Millisecond

// Watcher consumes filesystem events and requests incremental updates.
// It never inspects individual paths beyond filtering: any non-empty
// filtered batch triggers a full incremental pass, which is cheap
// because of fingerprint short-circuiting.
type Watcher struct {
	indexer  *Indexer
	fsw      *fsnotify.Watcher
	logger   *utils.Logger
	OnUpdate func(Counts, time.Duration)
}

// NewWatcher creates a watcher bound to the indexer's root.
func NewWatcher(indexer *Indexer) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		indexer: indexer,
		fsw:     fsw,
		logger:  utils.NewLogger("watcher"),
	}, nil
}

// Run watches the tree and processes debounced event batches serially
// until the event channel closes. A nil return is a clean close;
// anything else is unrecoverable.
func (w *Watcher) Run() error {
	if err := w.addDirectoryRecursive(w.indexer.root); err != nil {
		return err
	}

	var batch []string
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			// Newly created directories join the watch set.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !w.excludedPath(event.Name) {
						if err := w.fsw.Add(event.Name); err != nil {
							w.logger.Warnf("failed to watch %s: %v", event.Name, err)
						}
					}
				}
			}

			batch = append(batch, event.Name)
			if timerC == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Errorf("watch error: %v", err)

		case <-timerC:
			timerC = nil
			timer = nil
			paths := batch
			batch = nil

			if !w.anyRelevant(paths) {
				continue
			}

			start := time.Now()
			counts, err := w.indexer.Update()
			if err != nil {
				w.logger.Errorf("update failed: %v", err)
				continue
			}
			if w.OnUpdate != nil {
				w.OnUpdate(counts, time.Since(start))
			}
		}
	}
}

// Close stops the watcher; Run returns once the channels drain.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// anyRelevant reports whether a batch contains at least one file with a
// supported extension that doesn't cross an excluded directory.
func (w *Watcher) anyRelevant(paths []string) bool {
	for _, path := range paths {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if !parsers.SupportedExtension(ext) {
			continue
		}
		if !w.excludedPath(path) {
			return true
		}
	}
	return false
}

// excludedPath reports whether any component of the path is an excluded
// directory name.
func (w *Watcher) excludedPath(path string) bool {
	rel, err := filepath.Rel(w.indexer.root, path)
	if err != nil {
		rel = path
	}
	for _, component := range strings.Split(filepath.ToSlash(rel), "/") {
		if _, excluded := excludedDirs[component]; excluded {
			return true
		}
		if component == w.indexer.cfg.IndexDir {
			return true
		}
	}
	return false
}

// addDirectoryRecursive adds dir and all non-excluded subdirectories to
// the watch list.
func (w *Watcher) addDirectoryRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir {
			if _, excluded := excludedDirs[d.Name()]; excluded {
				return filepath.SkipDir
			}
			if d.Name() == w.indexer.cfg.IndexDir {
				return filepath.SkipDir
			}
		}
		if err := w.fsw.Add(path); err != nil {
			w.logger.Warnf("failed to watch %s: %v", path, err)
		}
		return nil
	})
}
