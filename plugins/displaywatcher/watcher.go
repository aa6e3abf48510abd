// Package displaywatcher invalidates a cached display resolution when the
// display profile file changes.
//
// It watches the directory holding the profile (editors and atomic writers
// replace the file rather than writing in place), debounces bursts of events
// and then resets the resolution cache so the next conversion re-probes.
package displaywatcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/sizeconv/pkg/log"
)

// Resetter is satisfied by *resolution.Detector.
type Resetter interface {
	Reset()
}

// Config holds configuration options for the watcher.
type Config struct {
	// Path is the display profile file to watch.
	Path string

	// DebounceDelay is the delay to wait after a file change before resetting.
	// Default: 100 milliseconds
	DebounceDelay time.Duration

	// OnChange, if set, runs after every reset.
	OnChange func()
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig(path string) Config {
	return Config{
		Path:          path,
		DebounceDelay: 100 * time.Millisecond,
	}
}

// Watcher resets a resolution cache whenever the display profile changes.
type Watcher struct {
	mu sync.Mutex

	path          string
	debounceDelay time.Duration
	onChange      func()
	target        Resetter
	logger        log.Logger

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
	resets   int
}

// New creates a watcher for cfg.Path that resets target.
func New(cfg Config, target Resetter, logger log.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:          filepath.Clean(cfg.Path),
		debounceDelay: cfg.DebounceDelay,
		onChange:      cfg.OnChange,
		target:        target,
		logger:        logger,
	}
}

// Start begins watching. It returns once the watch is registered; events are
// handled on a background goroutine until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if w.path == "" || w.path == "." {
		return errors.New("displaywatcher: no profile path")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.logger.Info("display profile watcher started", log.String("path", w.path))

	w.wg.Add(1)
	go w.watchLoop(watchCtx, fw)
	return nil
}

// Stop ends watching and waits for the event loop to exit.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()

	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()
}

// Resets returns how many times the cache has been reset.
func (w *Watcher) Resets() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.resets
}

func (w *Watcher) watchLoop(ctx context.Context, fw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fw.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.scheduleReset(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("display profile watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) scheduleReset(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		w.reset()
	})
}

func (w *Watcher) reset() {
	w.target.Reset()

	w.mu.Lock()
	w.resets++
	resets := w.resets
	w.mu.Unlock()

	w.logger.Info("display profile changed, resolution cache reset",
		log.String("path", w.path),
		log.Int("resets", resets),
	)
	if w.onChange != nil {
		w.onChange()
	}
}
