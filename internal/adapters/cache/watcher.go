package cache

import (
	"context"
	"cost-intelligence-service/internal/ports"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher invalidates a cache whenever one of the watched files changes.
// Directories are watched rather than files so editors that replace a file
// by rename are still noticed.
type Watcher struct {
	cache   ports.EnrichedCache
	files   map[string]struct{}
	watcher *fsnotify.Watcher
}

func NewWatcher(c ports.EnrichedCache, paths []string) (*Watcher, error) {
	if c == nil {
		return nil, errors.New("new watcher: cache is nil")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("new watcher: %w", err)
	}

	w := &Watcher{cache: c, files: map[string]struct{}{}, watcher: fw}
	dirs := map[string]struct{}{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("new watcher: resolve %q: %w", p, err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for d := range dirs {
		if err := fw.Add(d); err != nil {
			fw.Close()
			return nil, fmt.Errorf("new watcher: watch %q: %w", d, err)
		}
	}

	return w, nil
}

// Run consumes file events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				log.Info().Str("file", ev.Name).Str("event", ev.Op.String()).Msg("source changed, cache invalidated")
				w.cache.Invalidate()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("source watcher error")
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}
