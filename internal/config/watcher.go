package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk. Files that fail
// to load or validate are logged and skipped; the previous config stays in
// effect.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	override Override
	onReload func(*Config)
	logger   *zap.Logger
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
	wg    sync.WaitGroup
}

// NewWatcher watches path. override, if set, runs on every reloaded config
// before it is validated and handed to onReload.
func NewWatcher(path string, logger *zap.Logger, override Override, onReload func(*Config)) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(absPath); err != nil {
		watcher.Close()
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Watcher{
		watcher:  watcher,
		path:     absPath,
		override: override,
		onReload: onReload,
		logger:   logger,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.watch()
	return w, nil
}

// Path is the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) watch() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.schedule()
			}

			// Editors that save by rename drop the watch; re-arm it.
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				if err := w.watcher.Add(w.path); err != nil {
					w.logger.Debug("config file not re-added", zap.String("path", w.path), zap.Error(err))
				} else {
					w.schedule()
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// reload holds mu throughout so Close never returns while onReload runs.
func (w *Watcher) reload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}

	cfg, err := Reload(w.path, w.override)
	if err != nil {
		w.logger.Warn("ignoring config change", zap.String("path", w.path), zap.Error(err))
		return
	}

	w.logger.Info("config reloaded", zap.String("path", w.path))
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

// Close stops watching. No onReload call is in progress once it returns.
func (w *Watcher) Close() error {
	w.mu.Lock()
	close(w.done)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
