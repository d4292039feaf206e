package discovery

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/archlane/semindex/pkg/lang"
)

// ChangeEvent reports that a source file was created, modified, or removed.
type ChangeEvent struct {
	Path string
	Op   fsnotify.Op
}

// Watcher watches every directory under a root for changes to recognised
// source files and forwards them on Events.
type Watcher struct {
	fsw    *fsnotify.Watcher
	logger *slog.Logger

	Events chan ChangeEvent
	done   chan struct{}
}

// NewWatcher creates a Watcher rooted at root. It recursively adds every
// directory under root (skipping the same directories Walk ignores).
func NewWatcher(root string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("discovery: create watcher: %w", err)
	}

	w := &Watcher{
		fsw:    fsw,
		logger: logger,
		Events: make(chan ChangeEvent, 64),
		done:   make(chan struct{}),
	}

	if err := w.addDirs(root); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.loop()

	return w, nil
}

func (w *Watcher) addDirs(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr == nil && rel != "." && isIgnored(rel) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) loop() {
	defer close(w.Events)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if lang.DetectLanguage(event.Name) == lang.LanguageUnknown {
				continue
			}
			select {
			case w.Events <- ChangeEvent{Path: event.Name, Op: event.Op}:
			case <-w.done:
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the Watcher and releases its underlying OS resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
