package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_entregadores_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// RegistrationSubmissions tracks registration outcomes
	RegistrationSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_entregadores_registration_submissions_total",
			Help: "Number of registration submissions by outcome",
		},
		[]string{"status"},
	)

	// RegistrationRejections tracks individual rejection reasons
	RegistrationRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_entregadores_registration_rejections_total",
			Help: "Number of registration rejections by kind",
		},
		[]string{"kind"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_entregadores_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_entregadores_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_entregadores_active_connections",
			Help: "Number of active connections",
		},
	)
)
