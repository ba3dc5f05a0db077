package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/commentary/internal/log"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a Manager when one of its layer files changes.
//
// Directories are watched rather than files, so editors that save by
// writing a temp file and renaming it over the original are seen.
type Watcher struct {
	manager  *Manager
	fsw      *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long to wait for a burst of events to settle.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the watcher's logger.
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher watches the directories holding m's layer files. Layers whose
// directory does not exist are skipped.
func NewWatcher(m *Manager, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		manager:  m,
		fsw:      fsw,
		files:    make(map[string]bool),
		debounce: defaultDebounce,
		logger:   log.Discard(),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = log.WithComponent(w.logger, "config-watcher")

	dirs := make(map[string]bool)
	for _, l := range m.Layers() {
		abs, err := filepath.Abs(l.Path)
		if err != nil {
			continue
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			w.logger.Debug("config directory missing, not watched", log.PathKey, dir)
			continue
		}
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
		dirs[dir] = true
	}
	return w, nil
}

// Run processes file events until ctx is done or Close is called.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-w.closeCh:
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", log.Error(err))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

func (w *Watcher) reload() {
	if _, err := w.manager.Load(); err != nil {
		w.logger.Warn("config reload failed, keeping previous settings", log.Error(err))
		return
	}
	w.logger.Info("config reloaded")
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	return w.fsw.Close()
}
