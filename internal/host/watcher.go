package host

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/colsplit/internal/columns"
)

// DefaultDebounce is how long the watcher waits for writes to settle
const DefaultDebounce = 200 * time.Millisecond

// Debouncer coalesces bursts of calls into the last one
type Debouncer struct {
	duration time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	seq      uint64
}

// NewDebouncer creates a debouncer; zero duration means DefaultDebounce
func NewDebouncer(d time.Duration) *Debouncer {
	if d == 0 {
		d = DefaultDebounce
	}
	return &Debouncer{duration: d}
}

// Trigger schedules fn, replacing any call still pending
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			fn()
		}
	})
}

// Cancel drops any pending call
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Watcher reloads a layout file whenever the host rewrites it
type Watcher struct {
	// Defaults fill fields the reloaded layout leaves out
	Defaults columns.Defaults

	path      string
	debouncer *Debouncer
	onChange  func(*columns.Config)
	onError   func(error)
}

// NewWatcher creates a watcher for path. onChange receives every successfully parsed
// layout; onError receives parse and watch failures and may be nil.
func NewWatcher(path string, debounce time.Duration, onChange func(*columns.Config), onError func(error)) *Watcher {
	if onError == nil {
		onError = func(err error) { logrus.Warnf("Layout watcher: %v", err) }
	}
	return &Watcher{
		Defaults:  columns.StandardDefaults(),
		path:      path,
		debouncer: NewDebouncer(debounce),
		onChange:  onChange,
		onError:   onError,
	}
}

// Run watches until ctx is cancelled. The parent directory is watched so editors that
// replace the file on save are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("failed to resolve layout path: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	logrus.Debugf("Watching layout file %s", abs)

	defer w.debouncer.Cancel()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logrus.Debugf("Layout file event: %s", ev)
			w.debouncer.Trigger(w.reload)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.onError(fmt.Errorf("watch error: %w", err))
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := columns.LoadFileWith(w.path, w.Defaults)
	if err != nil {
		w.onError(err)
		return
	}
	w.onChange(cfg)
}
