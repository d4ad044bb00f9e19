package routes

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/lvroute/logging"
)

// DefaultQuietPeriod is how long a Watcher waits after the last change event
// before reloading. Editors often emit several events per save.
const DefaultQuietPeriod = 100 * time.Millisecond

// Watcher reloads a Service whenever its graph file is written or recreated.
// A failed reload keeps the previous graph.
type Watcher struct {
	svc     *Service
	path    string
	format  string
	quiet   time.Duration
	fsw     *fsnotify.Watcher
	onLoad  func(error)
	stop    chan struct{}
	stopped sync.WaitGroup
	once    sync.Once
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithQuietPeriod overrides DefaultQuietPeriod.
func WithQuietPeriod(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.quiet = d }
}

// WithOnReload registers fn to run after every reload attempt with its result.
func WithOnReload(fn func(error)) WatcherOption {
	return func(w *Watcher) { w.onLoad = fn }
}

// NewWatcher watches the directory holding path; watching the directory
// survives editors that save by rename.
func NewWatcher(svc *Service, path, format string, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("routes: create watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("routes: watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("routes: watch %s: %w", path, err)
	}

	w := &Watcher{
		svc:    svc,
		path:   abs,
		format: format,
		quiet:  DefaultQuietPeriod,
		fsw:    fsw,
		stop:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Start processes events in a goroutine until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	w.stopped.Add(1)
	go w.run(ctx)
	logging.Info("watching graph file", "path", w.path)
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		w.stopped.Wait()
		err = w.fsw.Close()
	})

	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer w.stopped.Done()

	timer := time.NewTimer(w.quiet)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				logging.Debug("graph file changed", "path", ev.Name, "op", ev.Op.String())
				timer.Reset(w.quiet)
			}

		case <-timer.C:
			err := w.svc.Load(w.path, w.format)
			if err != nil {
				logging.Warn("hot-reload skipped, keeping previous graph", "path", w.path, "error", err)
			}
			if w.onLoad != nil {
				w.onLoad(err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Error("watcher error", "error", err)
		}
	}
}
