package dataset

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	"github.com/paulfryers/coronavirus-dashboard/internal/eventbus"
	"github.com/paulfryers/coronavirus-dashboard/internal/logic"
)

// DefaultTimeout bounds a single load.
const DefaultTimeout = 15 * time.Second

// Source names the documents a dataset is loaded from: either one
// combined document in Path, or the four split documents.
type Source struct {
	Path      string
	Overview  string
	Countries string
	Regions   string
	Utlas     string
}

// Split reports whether the split documents are used.
func (s Source) Split() bool {
	return s.Overview != "" && s.Countries != "" && s.Regions != "" && s.Utlas != ""
}

// String returns a short description for the status line.
func (s Source) String() string {
	if s.Split() {
		return s.Overview + " (+3)"
	}
	return s.Path
}

// WatchPaths returns the local files worth watching for changes.
func (s Source) WatchPaths() []string {
	candidates := []string{s.Path}
	if s.Split() {
		candidates = []string{s.Overview, s.Countries, s.Regions, s.Utlas}
	}
	var paths []string
	for _, p := range candidates {
		if p != "" && !IsRemote(p) {
			paths = append(paths, p)
		}
	}
	return paths
}

// Service reloads the dataset whenever a reload is requested or the data
// file changes, and publishes the outcome on the event bus.
type Service struct {
	loader  *Loader
	store   logic.DatasetStore
	bus     eventbus.EventBus
	source  Source
	timeout time.Duration
	logger  *zap.Logger

	loadMu sync.Mutex // one load at a time

	mu       sync.Mutex
	unsubs   []func()
	ctx      context.Context
	cancel   context.CancelFunc
	stopping bool
	wg       sync.WaitGroup
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithTimeout bounds each load.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithServiceLogger sets the logger
func WithServiceLogger(logger *zap.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a reload service
func NewService(loader *Loader, store logic.DatasetStore, bus eventbus.EventBus, src Source, opts ...ServiceOption) *Service {
	if loader == nil {
		loader = NewLoader(nil)
	}
	s := &Service{
		loader:  loader,
		store:   store,
		bus:     bus,
		source:  src,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("dataset")
	return s
}

// Source returns where the service loads from.
func (s *Service) Source() Source {
	return s.source
}

// Start subscribes to reload triggers. Loads triggered by events run in
// the background until ctx is cancelled or Stop is called.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)

	// Handlers already dispatched may still run after Stop.
	trigger := func(reason string) {
		s.mu.Lock()
		if s.stopping {
			s.mu.Unlock()
			return
		}
		ctx := s.ctx
		s.wg.Add(1)
		s.mu.Unlock()

		go func() {
			defer s.wg.Done()
			_ = s.Reload(ctx)
		}()
		s.logger.Debug("reload triggered", zap.String("reason", reason))
	}

	s.unsubs = append(s.unsubs,
		s.bus.Subscribe(eventbus.EventDataLoadRequested, func(e eventbus.DomainEvent) {
			trigger(e.(eventbus.DataLoadRequestedEvent).Reason)
		}),
		s.bus.Subscribe(eventbus.EventDataFileChanged, func(e eventbus.DomainEvent) {
			trigger("file changed: " + e.(eventbus.DataFileChangedEvent).Path)
		}),
	)
}

// Stop unsubscribes and waits for running loads to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	s.stopping = true
	unsubs := s.unsubs
	s.unsubs = nil
	cancel := s.cancel
	s.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// Reload loads the dataset now. On success the store is replaced and
// DataLoadedEvent is published; on failure the store keeps the previous
// dataset and DataLoadFailedEvent is published.
func (s *Service) Reload(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	var (
		ds  *domain.Dataset
		err error
	)
	if s.source.Split() {
		ds, err = s.loader.LoadSplit(ctx, s.source.Overview, s.source.Countries, s.source.Regions, s.source.Utlas)
	} else {
		ds, err = s.loader.Load(ctx, s.source.Path)
	}

	name := s.source.String()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.Debug("load cancelled", zap.String("source", name))
			return err
		}
		s.logger.Warn("load failed", zap.String("source", name), zap.Error(err))
		s.bus.Publish(eventbus.DataLoadFailedEvent{Source: name, Err: err})
		return err
	}

	s.store.Replace(ds)
	s.store.SetSource(name)
	areas := ds.Countries.Len() + ds.Regions.Len() + ds.Utlas.Len()
	s.logger.Info("dataset loaded",
		zap.String("source", name),
		zap.Int("areas", areas),
		zap.Duration("elapsed", time.Since(start)),
	)
	s.bus.Publish(eventbus.DataLoadedEvent{Source: name, Areas: areas})
	return nil
}
