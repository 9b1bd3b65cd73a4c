package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	// StorageCorruption counts persisted values that failed to decode and
	// were replaced by their defaults. The store swallows these for
	// availability; the counter is what makes the loss diagnosable.
	StorageCorruption = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jio_store",
			Subsystem: "storage",
			Name:      "corruption_total",
			Help:      "Persisted values that failed to decode and fell back to defaults.",
		},
		[]string{"key"},
	)

	// StorageWriteFailures counts swallowed write errors.
	StorageWriteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jio_store",
			Subsystem: "storage",
			Name:      "write_failures_total",
			Help:      "Writes that failed and were not propagated to callers.",
		},
		[]string{"key"},
	)

	// StatusUpdateMisses counts status updates aimed at ids that no longer
	// exist, which the workflows treat as silent no-ops.
	StatusUpdateMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jio_store",
			Subsystem: "workflow",
			Name:      "status_update_misses_total",
			Help:      "Status updates addressed to unknown record ids.",
		},
		[]string{"record"},
	)

	OrdersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jio_store",
			Subsystem: "workflow",
			Name:      "orders_created_total",
			Help:      "Orders created, by payment method.",
		},
		[]string{"method"},
	)

	DepositsResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jio_store",
			Subsystem: "workflow",
			Name:      "deposits_resolved_total",
			Help:      "Deposit requests moved to a terminal status.",
		},
		[]string{"status"},
	)

	WebsocketClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "jio_store",
			Subsystem: "ws",
			Name:      "clients",
			Help:      "Currently connected websocket clients.",
		},
	)
)

func init() {
	Registry.MustRegister(
		StorageCorruption,
		StorageWriteFailures,
		StatusUpdateMisses,
		OrdersCreated,
		DepositsResolved,
		WebsocketClients,
	)
}

// Handler serves the registry, for mounting at /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
