package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Store serves the current document and swaps it on reload. Readers never
// see a partially loaded document.
type Store struct {
	fs      afero.Fs
	path    string
	current atomic.Pointer[Document]

	mu        sync.Mutex
	listeners []func(*Document)
}

// NewStore loads the document at path from fs, or the embedded default
// when path is empty.
func NewStore(fs afero.Fs, path string) (*Store, error) {
	s := &Store{fs: fs, path: path}
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	s.current.Store(doc)
	return s, nil
}

// NewStaticStore wraps an already loaded document. Reload is a no-op.
func NewStaticStore(doc *Document) *Store {
	s := &Store{}
	s.current.Store(doc)
	return s
}

// Current returns the active document.
func (s *Store) Current() *Document {
	return s.current.Load()
}

// Path returns the file backing the store, empty for the embedded default.
func (s *Store) Path() string {
	return s.path
}

// OnReload registers fn to run after every successful reload.
func (s *Store) OnReload(fn func(*Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload re-reads the document. On failure the previous document stays
// active and the error is returned.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	doc, err := s.load()
	if err != nil {
		return err
	}
	s.current.Store(doc)

	s.mu.Lock()
	listeners := append([]func(*Document){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(doc)
	}
	return nil
}

func (s *Store) load() (*Document, error) {
	if s.path == "" {
		return Default()
	}
	return Load(s.fs, s.path)
}

// Watch reloads the document whenever its file changes on disk. It blocks
// until ctx is canceled. The directory is watched so editors that replace
// the file on save are handled.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	slog.Debug("Watching content document for changes", "path", s.path)

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("Content watcher context cancelled")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				slog.Error("Failed to reload content document, keeping previous version", "path", s.path, "error", err)
				continue
			}
			slog.Info("Reloaded content document", "path", s.path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}
