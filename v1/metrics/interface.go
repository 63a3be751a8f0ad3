package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rickhofstede/weaviate-go/v1/observability"
)

// MetricsCollector abstracts the metrics operations of this package.
// The concrete *Metrics type implements it.
type MetricsCollector interface {
	// ObserveOperation records one completed client operation; see the
	// observability package for the event contract.
	observability.Observer

	// CreateCounter creates and registers a custom CounterVec.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates and registers a custom HistogramVec.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates and registers a custom GaugeVec.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}

var _ MetricsCollector = (*Metrics)(nil)
