package batch

import (
	"time"

	"github.com/rickhofstede/weaviate-go/v1/observability"
)

// observeOperation notifies the observer about a bulk submission if one is
// configured.
//
// Notes:
//   - operation: "create_objects" or "create_references"
//   - size: the number of items in the submitted batch
func (b *Batch) observeOperation(operation, resource string, duration time.Duration, err error, size int64) {
	if b == nil || b.observer == nil {
		return
	}

	b.observer.ObserveOperation(observability.OperationContext{
		Component: "batch",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
		Size:      size,
	})
}
