// Package config defines service configuration structures and loading.
//
// Conventions:
// - Defaults come from New; Load layers an optional YAML file and env vars.
// - External errors are wrapped before leaving the package.
package config

import "context"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RecordsPath points at the static JSON record store.
	RecordsPath string `koanf:"records_path"`

	// CacheTTLSeconds time-boxes the in-memory dataset cache.
	CacheTTLSeconds int `koanf:"cache_ttl_seconds"`

	// WatchRecords enables cache invalidation on record file changes.
	WatchRecords bool `koanf:"watch_records"`

	// SessionTTLMinutes is the idle lifetime of a dashboard session.
	SessionTTLMinutes int `koanf:"session_ttl_minutes"`

	// MaxSessions bounds the in-memory session registry.
	MaxSessions int `koanf:"max_sessions"`
}

// New creates a Config with defaults. Context is accepted first per the
// project-wide convention; it is reserved for future loading hooks.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		RecordsPath:       "athletes.json",
		CacheTTLSeconds:   5,
		WatchRecords:      true,
		SessionTTLMinutes: 30,
		MaxSessions:       10_000,
	}
}
