package connection

import (
	"time"

	"github.com/rickhofstede/weaviate-go/v1/observability"
)

// observeOperation notifies the observer about a completed exchange if one
// is configured.
//
// Notes:
//   - operation: the lowercase HTTP method
//   - resource: the request path relative to the API root
func (c *Connection) observeOperation(operation, resource string, duration time.Duration, err error) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component: "connection",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
	})
}
