// Package watch reports template file changes under a directory tree.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger routes watcher diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithExtension restricts change notifications to files with ext.
func WithExtension(ext string) Option {
	return func(w *Watcher) {
		w.extension = ext
	}
}

// Watcher watches every directory below root and reports the slash separated
// path (relative to root) of template files that are written, created,
// removed or renamed.
type Watcher struct {
	root      string
	extension string
	watcher   *fsnotify.Watcher
	changed   chan string
	errors    chan error
	logger    *zap.Logger

	mu      sync.Mutex
	watched map[string]bool
	closed  bool
}

// New starts watching root recursively.
func New(root string, options ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("watch: root is not a directory: " + root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		root:      abs,
		extension: ".tmpl",
		watcher:   fsw,
		changed:   make(chan string, 16),
		errors:    make(chan error, 1),
		logger:    zap.NewNop(),
		watched:   map[string]bool{},
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	if err := w.addTree(abs); err != nil {
		fsw.Close()
		return nil, err
	}
	go w.loop()
	return w, nil
}

// Changed delivers the relative path of each changed template.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

// Errors delivers errors reported by the underlying watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching. Changed and Errors are closed once the event loop
// exits.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()
	return w.watcher.Close()
}

// Run calls fn for every change until ctx is done or the watcher is closed.
// Watcher errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, fn func(name string)) error {
	defer w.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case name, ok := <-w.changed:
			if !ok {
				return nil
			}
			fn(name)
		case err, ok := <-w.errors:
			if !ok {
				return nil
			}
			w.logger.Warn("template watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) loop() {
	defer close(w.changed)
	defer close(w.errors)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				w.logger.Warn("dropping template watcher error", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("watch new directory", zap.String("dir", event.Name), zap.Error(err))
			}
			return
		}
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if w.extension != "" && !strings.EqualFold(filepath.Ext(event.Name), w.extension) {
		return
	}
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return
	}
	name := filepath.ToSlash(rel)
	w.logger.Debug("template changed", zap.String("template", name), zap.String("op", event.Op.String()))
	select {
	case w.changed <- name:
	default:
		w.logger.Debug("change queue full, dropping notification", zap.String("template", name))
	}
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		return w.add(path)
	})
}

func (w *Watcher) add(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watched[dir] {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.watched[dir] = true
	return nil
}
