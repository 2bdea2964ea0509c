package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/fsnotify/fsnotify"
)

// Watcher regenerates the HTML report whenever the store file changes.
// It watches the store's parent directory so the atomic temp+rename writes
// the store performs are observed as create/rename events.
type Watcher struct {
	storePath  string
	reportPath string
	opts       Options
	debounce   time.Duration
	onRender   func(path string, entries int)
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long to wait after the last event before
// re-rendering. Rapid write bursts produce a single render.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnRender registers a callback invoked after each successful render.
func WithOnRender(fn func(path string, entries int)) WatcherOption {
	return func(w *Watcher) {
		w.onRender = fn
	}
}

// NewWatcher creates a Watcher that renders storePath into reportPath.
func NewWatcher(storePath, reportPath string, opts Options, watcherOpts ...WatcherOption) *Watcher {
	w := &Watcher{
		storePath:  storePath,
		reportPath: reportPath,
		opts:       opts,
		debounce:   200 * time.Millisecond,
	}

	for _, opt := range watcherOpts {
		opt(w)
	}

	return w
}

// Run renders once immediately, then blocks, re-rendering on every store
// change until the context is cancelled. Render failures from transient
// states (store mid-write) are reported to stderr and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.storePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching store directory: %w", err)
	}

	if err := w.render(); err != nil {
		return err
	}

	return w.watchLoop(ctx, fsw)
}

// watchLoop is the debounced event loop.
func (w *Watcher) watchLoop(ctx context.Context, fsw *fsnotify.Watcher) error {
	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if !w.isStoreEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			fmt.Fprintf(os.Stderr, "Warning: watch error: %v\n", err)

		case <-timerCh:
			timer = nil
			timerCh = nil
			if err := w.render(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: report not regenerated: %v\n", err)
			}
		}
	}
}

// isStoreEvent reports whether the event concerns the store file itself.
func (w *Watcher) isStoreEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.storePath) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}

// render reloads the store and writes the report.
func (w *Watcher) render() error {
	store, err := changelog.Open(w.storePath)
	if err != nil {
		return err
	}

	entries := store.List()
	if err := WriteFile(w.reportPath, entries, w.opts); err != nil {
		return err
	}

	if w.onRender != nil {
		w.onRender(w.reportPath, len(entries))
	}

	return nil
}
