package batch

import (
	"github.com/rickhofstede/weaviate-go/v1/connection"
	"github.com/rickhofstede/weaviate-go/v1/observability"
	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides the Batch.
//
// Usage:
//
//	app := fx.New(
//	    connection.FXModule,
//	    batch.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("batch",
	fx.Provide(
		NewBatchWithDI,
	),
)

// BatchParams groups the dependencies needed to create a Batch.
type BatchParams struct {
	fx.In

	Connection *connection.Connection
	Logger     Logger                 `optional:"true"`
	Observer   observability.Observer `optional:"true"`
}

// NewBatchWithDI creates a Batch for use with Uber's fx dependency
// injection framework, injecting the optional logger and observer before
// delegating to NewBatch.
func NewBatchWithDI(params BatchParams) *Batch {
	return NewBatch(params.Connection).
		WithLogger(params.Logger).
		WithObserver(params.Observer)
}
