// Package session tracks the per-session sort state of the dashboard.
// The active SortKey is owned by a session object handed out by the
// Registry; it is never process-global, so concurrent sessions cannot
// leak ordering state into each other.
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/adurand33/Performance/internal/domain/model"
	"github.com/adurand33/Performance/pkg/metrics"
)

// State holds the sort state of one interactive session.
type State struct {
	mu       sync.Mutex
	key      model.SortKey
	lastSeen time.Time
}

// Key returns the session's current sort key.
func (s *State) Key() model.SortKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return s.key
}

// Toggle applies a click on column and returns the resulting key:
// same column flips direction, a new column resets to ascending.
func (s *State) Toggle(column string) model.SortKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = s.key.Toggle(column)
	s.lastSeen = time.Now()
	return s.key
}

func (s *State) touchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Registry keeps session states in memory, bounded by size and idle
// TTL. Eviction drops the longest-idle session first.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*State
	maxSize  int
	ttl      time.Duration
	size     atomic.Int64
}

// NewRegistry creates a session registry with configuration options.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[string]*State),
		maxSize:  defaultMaxSessions,
		ttl:      defaultSessionTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the state for id, or nil if the session is unknown.
func (r *Registry) Get(ctx context.Context, id string) *State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Create registers a fresh session with the default sort key and
// returns its id.
func (r *Registry) Create(ctx context.Context) (string, *State) {
	id := uuid.NewString()
	st := &State{key: model.DefaultSortKey(), lastSeen: time.Now()}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.maxSize > 0 && len(r.sessions) >= r.maxSize {
		r.evictIdlest()
	}
	r.sessions[id] = st
	r.size.Add(1)
	metrics.RecordSessionCreated()
	metrics.UpdateSessionsActive(r.size.Load())
	return id, st
}

// GetOrCreate resolves id to its state, creating a fresh session when
// id is empty or unknown. The returned id is the one the caller should
// hand back to the client.
func (r *Registry) GetOrCreate(ctx context.Context, id string) (string, *State) {
	if id != "" {
		if st := r.Get(ctx, id); st != nil {
			return id, st
		}
	}
	return r.Create(ctx)
}

// Sweep drops sessions idle longer than the registry TTL and returns
// how many were removed. A TTL <= 0 disables expiry.
func (r *Registry) Sweep(ctx context.Context) int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, st := range r.sessions {
		if st.touchedAt().Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	r.size.Add(int64(-removed))
	if removed > 0 {
		metrics.RecordSessionsSwept(removed)
	}
	metrics.UpdateSessionsActive(r.size.Load())
	return removed
}

// Size returns the current number of live sessions.
func (r *Registry) Size() int64 {
	return r.size.Load()
}

// evictIdlest removes the session with the oldest last-touch time.
// Must be called with r.mu held.
func (r *Registry) evictIdlest() {
	var (
		victim string
		oldest time.Time
	)
	for id, st := range r.sessions {
		t := st.touchedAt()
		if victim == "" || t.Before(oldest) {
			victim = id
			oldest = t
		}
	}
	if victim != "" {
		delete(r.sessions, victim)
		r.size.Add(-1)
	}
}
