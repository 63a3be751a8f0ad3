package gql

import (
	"github.com/rickhofstede/weaviate-go/v1/connection"
	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides the Query client.
var FXModule = fx.Module("gql",
	fx.Provide(
		NewQueryWithDI,
	),
)

// QueryParams groups the dependencies needed to create the Query client.
type QueryParams struct {
	fx.In

	Connection *connection.Connection
}

// NewQueryWithDI creates a Query client for use with Uber's fx dependency
// injection framework.
func NewQueryWithDI(params QueryParams) *Query {
	return NewQuery(params.Connection)
}
