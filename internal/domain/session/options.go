// Package session tracks the per-session sort state of the dashboard.
package session

import "time"

// Defaults for the in-memory registry.
const (
	defaultMaxSessions = 10_000
	defaultSessionTTL  = 30 * time.Minute
)

// Option applies a configuration option to the Registry.
type Option func(*Registry)

// WithMaxSessions bounds the number of live sessions. When full, the
// longest-idle session is evicted. maxSize <= 0 means unbounded.
func WithMaxSessions(maxSize int) Option {
	return func(r *Registry) {
		r.maxSize = maxSize
	}
}

// WithTTL sets the idle lifetime after which Sweep removes a session.
// A TTL <= 0 disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		r.ttl = ttl
	}
}
