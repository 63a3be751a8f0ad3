package metrics

import (
	"github.com/rickhofstede/weaviate-go/v1/observability"
)

// Metrics satisfies the observer contract of the client packages.
var _ observability.Observer = (*Metrics)(nil)

// ObserveOperation records one completed client operation: it increments
// the per-operation counter with an outcome label, feeds the duration
// histogram, and tracks item counts for sized operations such as batch
// submissions.
func (m *Metrics) ObserveOperation(octx observability.OperationContext) {
	status := "success"
	if octx.Error != nil {
		status = "error"
	}

	m.operationsTotal.WithLabelValues(octx.Component, octx.Operation, status).Inc()
	m.operationDuration.WithLabelValues(octx.Component, octx.Operation).Observe(octx.Duration.Seconds())

	if octx.Size > 0 {
		m.batchSize.WithLabelValues(octx.Operation).Set(float64(octx.Size))
		if octx.Error == nil {
			m.batchItemsTotal.WithLabelValues(octx.Operation).Add(float64(octx.Size))
		}
	}
}
