package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the daemon.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Catalog metrics
	CatalogSize     prometheus.Gauge
	CatalogLoads    prometheus.Counter
	CatalogLoadTime prometheus.Histogram
	CatalogDegrades *prometheus.CounterVec

	// Drawer metrics
	SearchDuration prometheus.Histogram

	// Launch metrics
	LaunchesTotal *prometheus.CounterVec

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSEvents      *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	// Mirror of headline values for the JSON /stats endpoint.
	mu              sync.RWMutex
	totalRequests   int64
	totalErrors     int64
	totalDuration   float64
	catalogSize     int64
	catalogLoads    int64
	catalogDegrades int64
	searches        int64
	launches        int64
	wsConnections   int64
}

// Snapshot is the JSON view of current metric values.
type Snapshot struct {
	TotalRequests   int64   `json:"total_requests"`
	TotalErrors     int64   `json:"total_errors"`
	AvgRequestMs    float64 `json:"avg_request_ms"`
	CatalogSize     int64   `json:"catalog_size"`
	CatalogLoads    int64   `json:"catalog_loads"`
	CatalogDegrades int64   `json:"catalog_degrades"`
	Searches        int64   `json:"searches"`
	Launches        int64   `json:"launches"`
	WSConnections   int64   `json:"ws_connections"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
}

// NewMetrics creates a collector set registered on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates a collector set on a specific registry.
// Tests use a private registry so collectors never collide.
func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "termdeck_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "termdeck_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),

		CatalogSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "termdeck_catalog_size",
				Help: "Number of records in the committed catalog snapshot",
			},
		),
		CatalogLoads: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "termdeck_catalog_loads_total",
				Help: "Total number of catalog loads",
			},
		),
		CatalogLoadTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "termdeck_catalog_load_duration_seconds",
				Help:    "Catalog load duration in seconds",
				Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),
		CatalogDegrades: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "termdeck_catalog_degrades_total",
				Help: "Total number of degraded catalog inputs",
			},
			[]string{"source"},
		),

		SearchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "termdeck_search_duration_seconds",
				Help:    "Ranked search recompute duration in seconds",
				Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
			},
		),

		LaunchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "termdeck_launches_total",
				Help: "Total number of launch dispatches",
			},
			[]string{"status"},
		),

		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "termdeck_ws_connections",
				Help: "Number of active WebSocket connections",
			},
		),
		WSEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "termdeck_ws_events_total",
				Help: "Total number of WebSocket events published",
			},
			[]string{"type"},
		),

		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "termdeck_uptime_seconds",
				Help: "Daemon uptime in seconds",
			},
		),
	}

	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric.
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records one handled HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())

	m.mu.Lock()
	m.totalRequests++
	m.totalDuration += duration.Seconds()
	if len(status) > 0 && (status[0] == '4' || status[0] == '5') {
		m.totalErrors++
	}
	m.mu.Unlock()
}

// RecordCatalogLoad records a completed catalog load and its snapshot size.
func (m *Metrics) RecordCatalogLoad(duration time.Duration, size int) {
	m.CatalogLoads.Inc()
	m.CatalogLoadTime.Observe(duration.Seconds())
	m.CatalogSize.Set(float64(size))

	m.mu.Lock()
	m.catalogLoads++
	m.catalogSize = int64(size)
	m.mu.Unlock()
}

// SetCatalogSize sets the committed snapshot size.
func (m *Metrics) SetCatalogSize(size int) {
	m.CatalogSize.Set(float64(size))

	m.mu.Lock()
	m.catalogSize = int64(size)
	m.mu.Unlock()
}

// RecordCatalogDegrade records one degraded catalog input source.
func (m *Metrics) RecordCatalogDegrade(source string) {
	m.CatalogDegrades.WithLabelValues(source).Inc()

	m.mu.Lock()
	m.catalogDegrades++
	m.mu.Unlock()
}

// RecordSearch records one ranked-search recompute.
func (m *Metrics) RecordSearch(duration time.Duration) {
	m.SearchDuration.Observe(duration.Seconds())

	m.mu.Lock()
	m.searches++
	m.mu.Unlock()
}

// RecordLaunch records a launch dispatch outcome.
func (m *Metrics) RecordLaunch(ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	m.LaunchesTotal.WithLabelValues(status).Inc()

	if ok {
		m.mu.Lock()
		m.launches++
		m.mu.Unlock()
	}
}

// RecordWSEvent records one published event by type.
func (m *Metrics) RecordWSEvent(eventType string) {
	m.WSEvents.WithLabelValues(eventType).Inc()
}

// IncWSConnections increments the connection gauge.
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()

	m.mu.Lock()
	m.wsConnections++
	m.mu.Unlock()
}

// DecWSConnections decrements the connection gauge.
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()

	m.mu.Lock()
	m.wsConnections--
	m.mu.Unlock()
}

// Snapshot returns current headline values for the /stats endpoint.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		TotalRequests:   m.totalRequests,
		TotalErrors:     m.totalErrors,
		CatalogSize:     m.catalogSize,
		CatalogLoads:    m.catalogLoads,
		CatalogDegrades: m.catalogDegrades,
		Searches:        m.searches,
		Launches:        m.launches,
		WSConnections:   m.wsConnections,
		UptimeSeconds:   time.Since(m.startTime).Seconds(),
	}
	if m.totalRequests > 0 {
		snap.AvgRequestMs = m.totalDuration / float64(m.totalRequests) * 1000
	}
	return snap
}
