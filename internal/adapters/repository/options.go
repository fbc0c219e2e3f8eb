// Package repository defines the athlete record store interface and its
// file-backed implementation.
package repository

import (
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/adurand33/Performance/pkg/logger"
)

// defaultCacheTTL time-boxes the in-memory dataset cache. Readers may
// see data up to this much older than the file.
const defaultCacheTTL = 5 * time.Second

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithCacheTTL sets the lifetime of the cached dataset.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *FileStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithFileWatch enables an fsnotify watch on the store file so edits
// invalidate the cache immediately. If the watcher cannot be created
// the store degrades to pure TTL caching.
func WithFileWatch() Option {
	return func(s *FileStore) {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return
		}
		s.watcher = w
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(log logger.Logger) Option {
	return func(s *FileStore) {
		if log != nil {
			s.log = log
		}
	}
}
