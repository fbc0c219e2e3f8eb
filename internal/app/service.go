// Package app provides the core service that implements the
// dependencies required by the HTTP API: record loading, per-session
// sort state and the sorted table views built from both.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/adurand33/Performance/internal/adapters/repository"
	"github.com/adurand33/Performance/internal/domain/model"
	"github.com/adurand33/Performance/internal/domain/session"
	"github.com/adurand33/Performance/internal/domain/sorting"
	"github.com/adurand33/Performance/pkg/logger"
)

// Default service configuration.
const (
	defaultRecordsPath   = "athletes.json"
	defaultCacheTTL      = 5 * time.Second
	defaultSessionTTL    = 30 * time.Minute
	defaultMaxSessions   = 10_000
	sessionSweepInterval = time.Minute
)

// TableView is the sorted projection of one athlete's records together
// with the sort state that produced it.
type TableView struct {
	Athlete string         `json:"athlete"`
	Sort    model.SortKey  `json:"sort"`
	Records []model.Record `json:"records"`
	Warning string         `json:"warning,omitempty"`
}

// Service implements the dashboard operations.
type Service struct {
	mu sync.RWMutex

	store    repository.Store
	sessions *session.Registry

	recordsPath  string
	cacheTTL     time.Duration
	watchRecords bool
	sessionTTL   time.Duration
	maxSessions  int

	started bool
	stopCh  chan struct{}

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRecordsPath sets the JSON record store location.
func WithRecordsPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.recordsPath = path
		}
	}
}

// WithCacheTTL sets the dataset cache lifetime.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithFileWatch enables or disables cache invalidation on file changes.
func WithFileWatch(enabled bool) Option {
	return func(s *Service) {
		s.watchRecords = enabled
	}
}

// WithSessionTTL sets the idle lifetime of a session.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithMaxSessions bounds the session registry.
func WithMaxSessions(maxSessions int) Option {
	return func(s *Service) {
		if maxSessions > 0 {
			s.maxSessions = maxSessions
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		recordsPath:  defaultRecordsPath,
		cacheTTL:     defaultCacheTTL,
		watchRecords: true,
		sessionTTL:   defaultSessionTTL,
		maxSessions:  defaultMaxSessions,
		stopCh:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the store and session registry.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	storeOpts := []repository.Option{
		repository.WithCacheTTL(s.cacheTTL),
		repository.WithLogger(s.logger.Named("repository")),
	}
	if s.watchRecords {
		storeOpts = append(storeOpts, repository.WithFileWatch())
	}
	store, err := repository.NewFileStore(ctx, s.recordsPath, storeOpts...)
	if err != nil {
		return err
	}
	s.store = store

	s.sessions = session.NewRegistry(
		session.WithMaxSessions(s.maxSessions),
		session.WithTTL(s.sessionTTL),
	)
	go s.sweepLoop(ctx)

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.String("records_path", s.recordsPath),
		logger.Bool("watch_records", s.watchRecords),
	)
	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// EnsureSession resolves sessionID to a live session, creating one when
// it is empty or expired, and returns the id the client should keep.
func (s *Service) EnsureSession(ctx context.Context, sessionID string) string {
	id, _ := s.sessions.GetOrCreate(ctx, sessionID)
	return id
}

// Athletes returns the athlete names known to the store, sorted.
func (s *Service) Athletes(ctx context.Context) ([]string, error) {
	return s.store.Athletes(ctx)
}

// Records returns the athlete's records ordered by the session's sort
// key. A sort fallback is reported in the view's Warning field; store
// and unknown-athlete failures are returned as errors.
func (s *Service) Records(ctx context.Context, sessionID, athlete string) (TableView, error) {
	records, err := s.store.Records(ctx, athlete)
	if err != nil {
		return TableView{}, err
	}

	_, state := s.sessions.GetOrCreate(ctx, sessionID)
	key := state.Key()

	sorted, warn := sorting.Sort(records, key)
	view := TableView{Athlete: athlete, Sort: key, Records: sorted}
	if warn != nil {
		view.Warning = warn.Error()
		s.logger.Warn(ctx, "sort fell back to lexical order",
			logger.String("athlete", athlete),
			logger.String("column", key.Column),
			logger.Error(warn),
		)
	}
	return view, nil
}

// ToggleSort applies a sort-button click for the session and returns
// the resulting key. Unknown columns are rejected.
func (s *Service) ToggleSort(ctx context.Context, sessionID, column string) (model.SortKey, error) {
	if !model.IsColumn(column) {
		return model.SortKey{}, sorting.ErrUnknownColumn
	}
	_, state := s.sessions.GetOrCreate(ctx, sessionID)
	return state.Toggle(column), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"recordsPath": s.recordsPath,
		"cacheTTL":    s.cacheTTL.String(),
	}
	if s.started {
		stats["athletes"] = s.store.Count(context.Background())
		stats["sessions"] = s.sessions.Size()
	}
	return stats
}

// sweepLoop periodically drops idle sessions.
func (s *Service) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if n := s.sessions.Sweep(ctx); n > 0 {
				s.logger.Debug(ctx, "swept idle sessions", logger.Int("removed", n))
			}
		}
	}
}
