package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/paulfryers/coronavirus-dashboard/internal/eventbus"
)

// Watcher publishes a DataFileChangedEvent when one file is written,
// created or renamed into place. It watches the parent directory so that
// editors which replace the file atomically are still seen.
type Watcher struct {
	mu        sync.Mutex
	fsw       *fsnotify.Watcher
	path      string
	dir       string
	name      string
	bus       eventbus.EventBus
	logger    *zap.Logger
	debouncer *Debouncer
	stopCh    chan struct{}
	doneCh    chan struct{}
	running   bool
	stopped   bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before an event is published.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debouncer = NewDebouncer(d)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Watcher for path. Nothing is watched until Start.
func New(path string, bus eventbus.EventBus, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{
		fsw:       fsw,
		path:      abs,
		dir:       filepath.Dir(abs),
		name:      filepath.Base(abs),
		bus:       bus,
		logger:    zap.NewNop(),
		debouncer: NewDebouncer(0),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching. It returns once the directory is registered; the
// event loop runs until ctx is cancelled or Stop is called. A watcher whose
// context was cancelled can be started again; a stopped one cannot.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return fmt.Errorf("watcher for %s already stopped", w.path)
	}
	if w.running {
		return nil
	}
	if err := w.fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.running = true
	w.doneCh = make(chan struct{})
	w.logger.Debug("watching data file", zap.String("path", w.path))

	go w.run(ctx, w.doneCh)
	return nil
}

// Running reports whether the event loop is active.
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Stop ends the event loop and releases the underlying watcher. It is
// safe to call more than once and without a prior Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	running, done := w.running, w.doneCh
	w.mu.Unlock()

	close(w.stopCh)
	if running {
		<-done
	}
	w.debouncer.Cancel()
	if err := w.fsw.Close(); err != nil {
		w.logger.Warn("closing file watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context, done chan struct{}) {
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if filepath.Base(ev.Name) != w.name {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return
	}
	w.logger.Debug("data file event", zap.String("op", ev.Op.String()))
	w.debouncer.Trigger(func() {
		w.bus.Publish(eventbus.DataFileChangedEvent{Path: w.path})
	})
}
