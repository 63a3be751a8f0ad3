package data

import (
	"github.com/rickhofstede/weaviate-go/v1/connection"
	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides the data Client.
var FXModule = fx.Module("data",
	fx.Provide(
		NewClientWithDI,
	),
)

// DataParams groups the dependencies needed to create the data Client.
type DataParams struct {
	fx.In

	Connection *connection.Connection
}

// NewClientWithDI creates a data Client for use with Uber's fx dependency
// injection framework.
func NewClientWithDI(params DataParams) *Client {
	return NewClient(params.Connection)
}
