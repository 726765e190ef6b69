package catalog

import (
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrWatcherFailed indicates the filesystem watcher failed to initialize.
var ErrWatcherFailed = errors.New("failed to initialize filesystem watcher")

// Watcher reloads catalog entries when their manifest files change on disk.
type Watcher struct {
	catalog *Catalog
	watcher *fsnotify.Watcher
	logger  *zap.Logger
	stop    chan struct{}
	done    chan struct{}
	started bool
}

// NewWatcher creates a watcher bound to a catalog.
func NewWatcher(c *Catalog, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatcherFailed, err)
	}
	return &Watcher{
		catalog: c,
		watcher: w,
		logger:  logger.Named("watcher"),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}, nil
}

// Watch loads the manifest into the catalog and registers it for reload on
// change.
func (w *Watcher) Watch(path string) error {
	if _, err := w.catalog.LoadFile(path); err != nil {
		return err
	}
	if err := w.watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	return nil
}

// Start begins processing filesystem events until Close is called.
func (w *Watcher) Start() {
	w.started = true
	go w.loop()
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Editors often replace rather than rewrite; a failed
			// reload keeps the previous tree registered.
			if _, err := w.catalog.LoadFile(event.Name); err != nil {
				w.logger.Warn("manifest reload failed",
					zap.String("path", event.Name),
					zap.Error(err),
				)
				continue
			}
			w.logger.Info("manifest reloaded", zap.String("path", event.Name))
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	close(w.stop)
	err := w.watcher.Close()
	if w.started {
		<-w.done
	}
	return err
}
