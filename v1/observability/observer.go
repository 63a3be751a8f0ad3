package observability

import "time"

// OperationContext carries everything an Observer needs to know about a
// single completed client operation.
type OperationContext struct {
	// Component is the package that performed the operation, e.g. "connection" or "batch".
	Component string

	// Operation is the name of the operation, e.g. "post" or "create_objects".
	Operation string

	// Resource is the primary resource the operation touched, e.g. the request path.
	Resource string

	// SubResource carries additional context, e.g. the batch kind ("objects"/"references").
	SubResource string

	// Duration is how long the operation took, network time included.
	Duration time.Duration

	// Error is the error the operation returned, nil on success.
	Error error

	// Size is an operation-specific size, e.g. the number of items submitted.
	Size int64

	// Metadata holds any extra key-value context.
	Metadata map[string]interface{}
}

// Observer receives a notification for every completed operation.
// Implementations must be safe for concurrent use; the metrics package
// provides a Prometheus-backed implementation.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
