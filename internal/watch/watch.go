// Package watch turns filesystem changes in a vault into note-activation and
// marker-change events.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fbkclanna/vaultdvc/internal/vault"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Kind classifies an Event.
type Kind int

const (
	// NoteChanged reports a created or written note.
	NoteChanged Kind = iota
	// MarkerChanged reports a marker file that was created, written,
	// removed or renamed.
	MarkerChanged
)

func (k Kind) String() string {
	if k == MarkerChanged {
		return "marker"
	}
	return "note"
}

// Event is one change in the vault. Path is vault-relative and
// slash-separated.
type Event struct {
	Kind Kind
	Path string
}

// HandlerFunc receives vault events.
type HandlerFunc func(Event)

// Watcher watches every non-hidden directory of a vault.
type Watcher struct {
	root string
	fsw  *fsnotify.Watcher
	log  *zap.Logger
}

// New creates a Watcher for the vault at root and registers its directories.
func New(root string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	w := &Watcher{root: root, fsw: fsw, log: log}
	if err := w.addTree(root, nil); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run delivers events to handle until ctx is done. handle is called from
// the watch loop in event order and should return quickly.
func (w *Watcher) Run(ctx context.Context, handle HandlerFunc) error {
	defer func() { _ = w.fsw.Close() }()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ev, handle)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// WatchedDirs returns the number of registered directories.
func (w *Watcher) WatchedDirs() int { return len(w.fsw.WatchList()) }

func (w *Watcher) handleEvent(ev fsnotify.Event, handle HandlerFunc) {
	if hidden(filepath.Base(ev.Name)) {
		return
	}
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		// Gone files can only matter to the index.
		if f, ok := w.file(ev.Name); ok && f.IsMarker() {
			w.send(Event{Kind: MarkerChanged, Path: f.Path}, handle)
		}
		return
	}
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			// Notes may land in a new directory before it is watched.
			if err := w.addTree(ev.Name, handle); err != nil {
				w.log.Warn("watching new directory", zap.String("dir", ev.Name), zap.Error(err))
			}
			return
		}
	}
	w.emit(ev.Name, handle)
}

func (w *Watcher) emit(path string, handle HandlerFunc) {
	f, ok := w.file(path)
	switch {
	case !ok:
	case f.IsNote():
		w.send(Event{Kind: NoteChanged, Path: f.Path}, handle)
	case f.IsMarker():
		w.send(Event{Kind: MarkerChanged, Path: f.Path}, handle)
	}
}

func (w *Watcher) send(ev Event, handle HandlerFunc) {
	w.log.Debug("vault changed", zap.Stringer("kind", ev.Kind), zap.String("path", ev.Path))
	handle(ev)
}

func (w *Watcher) file(path string) (vault.File, bool) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return vault.File{}, false
	}
	return vault.NewFile(rel), true
}

// addTree registers dir and its non-hidden subdirectories. When handle is
// non-nil, notes and markers already present in the tree are emitted.
func (w *Watcher) addTree(dir string, handle HandlerFunc) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p != dir {
				return nil
			}
			return err
		}
		if p != w.root && hidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if err := w.fsw.Add(p); err != nil {
				return fmt.Errorf("watching %s: %w", p, err)
			}
			return nil
		}
		if handle != nil && d.Type().IsRegular() {
			w.emit(p, handle)
		}
		return nil
	})
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
