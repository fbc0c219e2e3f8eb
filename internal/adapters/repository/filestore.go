package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/adurand33/Performance/internal/domain/model"
	"github.com/adurand33/Performance/pkg/logger"
	"github.com/adurand33/Performance/pkg/metrics"
)

// FileStore reads the athlete dataset from a static JSON document.
// Reads are served from a short time-boxed cache; an optional fsnotify
// watch marks the cache dirty as soon as the file changes, so edits
// show up on the next request even inside the TTL window.
type FileStore struct {
	path string
	ttl  time.Duration

	mu       sync.RWMutex
	cached   model.Dataset
	loadedAt time.Time
	dirty    atomic.Bool

	watcher *fsnotify.Watcher
	log     logger.Logger
}

// NewFileStore creates a store backed by the JSON document at path.
// The file is not read until the first access.
func NewFileStore(ctx context.Context, path string, opts ...Option) (*FileStore, error) {
	s := &FileStore{
		path: path,
		ttl:  defaultCacheTTL,
		log:  logger.Named("repository"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dirty.Store(true)

	if s.watcher != nil {
		// Watch the directory: editors replace files rather than
		// writing in place, which drops file-level watches.
		if err := s.watcher.Add(filepath.Dir(path)); err != nil {
			s.log.Warn(ctx, "record store watch failed; falling back to TTL caching",
				logger.String("path", path), logger.Error(err))
			_ = s.watcher.Close()
			s.watcher = nil
		} else {
			go s.watchLoop(ctx)
		}
	}
	return s, nil
}

// Athletes returns the known athlete names, sorted.
func (s *FileStore) Athletes(ctx context.Context) ([]string, error) {
	ds, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ds))
	for name := range ds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Records returns the records of one athlete in store order.
func (s *FileStore) Records(ctx context.Context, athlete string) ([]model.Record, error) {
	ds, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	records, ok := ds[athlete]
	if !ok {
		return nil, fmt.Errorf("%q: %w", athlete, ErrUnknownAthlete)
	}
	return records, nil
}

// Snapshot returns the current dataset, re-reading the file when the
// cache has expired or was marked dirty by the watcher. A read or
// parse failure yields an empty dataset alongside the error; the
// previous cache is intentionally not served, so a broken store is
// visible instead of silently stale.
func (s *FileStore) Snapshot(ctx context.Context) (model.Dataset, error) {
	s.mu.RLock()
	fresh := s.cached != nil && time.Since(s.loadedAt) < s.ttl && !s.dirty.Load()
	cached := s.cached
	s.mu.RUnlock()
	if fresh {
		metrics.RecordCacheHit()
		return cached, nil
	}
	metrics.RecordCacheMiss()
	return s.reload(ctx)
}

// Count returns the number of athletes in the dataset, 0 when the
// store is unreadable.
func (s *FileStore) Count(ctx context.Context) int {
	ds, err := s.Snapshot(ctx)
	if err != nil {
		return 0
	}
	return len(ds)
}

// Close stops the file watcher, if any.
func (s *FileStore) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *FileStore) reload(ctx context.Context) (model.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another request may have reloaded while we waited for the lock.
	if s.cached != nil && time.Since(s.loadedAt) < s.ttl && !s.dirty.Load() {
		return s.cached, nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.fail(ctx, err)
		return model.Dataset{}, fmt.Errorf("reading %s: %w", s.path, ErrUnreadable)
	}
	var ds model.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		s.fail(ctx, err)
		return model.Dataset{}, fmt.Errorf("decoding %s: %w", s.path, ErrUnreadable)
	}

	s.cached = ds
	s.loadedAt = time.Now()
	s.dirty.Store(false)

	total := 0
	for _, records := range ds {
		total += len(records)
	}
	metrics.RecordStoreReload()
	metrics.UpdateAthletesTotal(len(ds))
	metrics.UpdateRecordsLoaded(total)
	s.log.Debug(ctx, "record store reloaded",
		logger.Int("athletes", len(ds)),
		logger.Int("records", total),
	)
	return ds, nil
}

// fail invalidates the cache and records the read failure.
func (s *FileStore) fail(ctx context.Context, err error) {
	s.cached = nil
	metrics.RecordStoreReadError()
	s.log.Error(ctx, "record store read failed",
		logger.String("path", s.path), logger.Error(err))
}

// watchLoop marks the cache dirty whenever the store file changes.
func (s *FileStore) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				s.dirty.Store(true)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn(ctx, "record store watcher error", logger.Error(err))
		}
	}
}
