// Package metrics provides Prometheus metrics for the performance
// dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Record store
	storeReloads    prometheus.Counter
	storeReadErrors prometheus.Counter
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	athletesTotal   prometheus.Gauge
	recordsLoaded   prometheus.Gauge

	// Normalization layer
	parseFailures *prometheus.CounterVec // kind: time|distance|date

	// Sorting
	sortOperations *prometheus.CounterVec // column, direction
	sortFallbacks  prometheus.Counter

	// Sessions
	sessionsActive  prometheus.Gauge
	sessionsCreated prometheus.Counter
	sessionsSwept   prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with configuration options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "performance",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.storeReloads = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_reloads_total",
		Help:      "Number of times the record store file was (re)read.",
	})
	m.storeReadErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_read_errors_total",
		Help:      "Number of failed record store reads.",
	})
	m.cacheHits = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_cache_hits_total",
		Help:      "Dataset requests served from the time-boxed cache.",
	})
	m.cacheMisses = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_cache_misses_total",
		Help:      "Dataset requests that triggered a file read.",
	})
	m.athletesTotal = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "athletes_total",
		Help:      "Number of athletes in the current dataset.",
	})
	m.recordsLoaded = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_loaded",
		Help:      "Number of records in the current dataset.",
	})

	m.parseFailures = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "parse_failures_total",
		Help:      "Values that degraded to a sentinel during normalization.",
	}, []string{"kind"})

	m.sortOperations = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sort_operations_total",
		Help:      "Sort passes by column and direction.",
	}, []string{"column", "direction"})
	m.sortFallbacks = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sort_fallbacks_total",
		Help:      "Sort passes that fell back to raw lexical ordering.",
	})

	m.sessionsActive = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_active",
		Help:      "Live interactive sessions.",
	})
	m.sessionsCreated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_created_total",
		Help:      "Sessions created since start.",
	})
	m.sessionsSwept = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_swept_total",
		Help:      "Sessions removed by the idle sweep.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Allocated heap bytes.",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current goroutine count.",
	})
	m.systemGCPauseTime = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_ms",
		Help:      "Average GC pause time in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
}

// Package-level helpers against the global manager.

// RecordStoreReload counts a record store file read.
func RecordStoreReload() { globalManager.storeReloads.Inc() }

// RecordStoreReadError counts a failed record store read.
func RecordStoreReadError() { globalManager.storeReadErrors.Inc() }

// RecordCacheHit counts a dataset request served from cache.
func RecordCacheHit() { globalManager.cacheHits.Inc() }

// RecordCacheMiss counts a dataset request that hit the file.
func RecordCacheMiss() { globalManager.cacheMisses.Inc() }

// UpdateAthletesTotal sets the athlete count gauge.
func UpdateAthletesTotal(count int) { globalManager.athletesTotal.Set(float64(count)) }

// UpdateRecordsLoaded sets the record count gauge.
func UpdateRecordsLoaded(count int) { globalManager.recordsLoaded.Set(float64(count)) }

// RecordParseFailure counts a value that degraded to a sentinel.
// kind is one of "time", "distance", "date".
func RecordParseFailure(kind string) { globalManager.parseFailures.WithLabelValues(kind).Inc() }

// RecordSortOperation counts a sort pass.
func RecordSortOperation(column string, ascending bool) {
	direction := "desc"
	if ascending {
		direction = "asc"
	}
	globalManager.sortOperations.WithLabelValues(column, direction).Inc()
}

// RecordSortFallback counts a sort pass that fell back to lexical order.
func RecordSortFallback() { globalManager.sortFallbacks.Inc() }

// UpdateSessionsActive sets the live session gauge.
func UpdateSessionsActive(count int64) { globalManager.sessionsActive.Set(float64(count)) }

// RecordSessionCreated counts a new session.
func RecordSessionCreated() { globalManager.sessionsCreated.Inc() }

// RecordSessionsSwept counts sessions removed by the idle sweep.
func RecordSessionsSwept(count int) { globalManager.sessionsSwept.Add(float64(count)) }

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration in ms.
func RecordHTTPRequestDuration(endpoint, method string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.systemMemoryUsage.Set(float64(bytes)) }

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records an average GC pause in ms.
func RecordSystemGCPauseTime(pauseMs float64) { globalManager.systemGCPauseTime.Observe(pauseMs) }

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry { return customRegistry }
