package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes Prometheus metrics for the client library.
//
// It holds an isolated registry, an HTTP server serving it on /metrics,
// and the built-in client metrics. Metrics implements
// observability.Observer, so it can be handed to the connection and batch
// packages directly via their WithObserver methods (or the fx modules).
type Metrics struct {
	// Server exposes the registry on /metrics for Prometheus scraping.
	Server *http.Server

	// Registry holds all metrics of this instance. It is isolated so
	// that several clients in one process do not collide.
	Registry *prometheus.Registry

	namespace string

	// Built-in client metrics, fed by ObserveOperation.
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	batchItemsTotal   *prometheus.CounterVec
	batchSize         *prometheus.GaugeVec
}

// NewMetrics builds a Metrics instance from cfg: an isolated registry with
// the built-in client metrics registered, optionally the default Go and
// process collectors, and an HTTP server (not yet started) exposing the
// registry. All metrics carry a constant service label when
// cfg.ServiceName is set.
//
// Start the server yourself with m.Server.ListenAndServe(), or let the fx
// module manage its lifecycle.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	registerer := prometheus.Registerer(registry)
	if cfg.ServiceName != "" {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"service": cfg.ServiceName},
			registry,
		)
	}

	m := &Metrics{
		Registry:  registry,
		namespace: cfg.Namespace,
	}

	m.operationsTotal = m.createCounterVec(
		"client_operations_total",
		"Total number of client operations by component, operation, and outcome",
		[]string{"component", "operation", "status"},
	)
	m.operationDuration = m.createHistogramVec(
		"client_operation_duration_seconds",
		"Duration of client operations in seconds",
		[]string{"component", "operation"},
		prometheus.DefBuckets,
	)
	m.batchItemsTotal = m.createCounterVec(
		"batch_items_submitted_total",
		"Total number of items submitted in batches, by kind",
		[]string{"operation"},
	)
	m.batchSize = m.createGaugeVec(
		"batch_size_last",
		"Size of the most recent batch submission, by kind",
		[]string{"operation"},
	)

	registerer.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.batchItemsTotal,
		m.batchSize,
	)

	if cfg.EnableDefaultCollectors {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    address,
		Handler: mux,
	}
	return m
}
