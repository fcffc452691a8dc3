package providers

import (
	"alarmclock/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(op string, duration time.Duration)
	IncPersistenceErrors(op string)
	IncTriggers(outcome string)
	SetAlarms(total, active int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration *prometheus.HistogramVec
	persistenceErrors   *prometheus.CounterVec
	triggersTotal       *prometheus.CounterVec
	alarmsTotal         prometheus.Gauge
	alarmsActive        prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(op string, duration time.Duration) {
	m.persistenceDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPersistenceErrors(op string) {
	m.persistenceErrors.WithLabelValues(op).Inc()
}

func (m *MetricsProvider) IncTriggers(outcome string) {
	m.triggersTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) SetAlarms(total, active int) {
	m.alarmsTotal.Set(float64(total))
	m.alarmsActive.Set(float64(active))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "alarmclock_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alarmclock_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "alarmclock_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "alarmclock_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		persistenceDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alarmclock_persistence_duration_seconds",
			Help:    "Duration of alarm store operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),

		persistenceErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "alarmclock_persistence_errors_total",
			Help: "Total number of failed alarm store operations",
		}, []string{"op"}),

		triggersTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "alarmclock_triggers_total",
			Help: "Total number of fired alarms by vibration outcome",
		}, []string{"outcome"}),

		alarmsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "alarmclock_alarms",
			Help: "Number of stored alarms",
		}),

		alarmsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "alarmclock_alarms_active",
			Help: "Number of active alarms",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                     {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)     {}
func (n *noopMetrics) IncCacheHits()                                        {}
func (n *noopMetrics) IncCacheMisses()                                      {}
func (n *noopMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncPersistenceErrors(_ string)                        {}
func (n *noopMetrics) IncTriggers(_ string)                                 {}
func (n *noopMetrics) SetAlarms(_, _ int)                                   {}
