package weaviate

import (
	"go.uber.org/fx"

	"github.com/rickhofstede/weaviate-go/v1/batch"
	"github.com/rickhofstede/weaviate-go/v1/connection"
	"github.com/rickhofstede/weaviate-go/v1/data"
	"github.com/rickhofstede/weaviate-go/v1/gql"
)

// FXModule assembles the complete client: it pulls in the connection,
// batch, data, and gql modules and provides the Client on top of them.
//
// Usage:
//
//	app := fx.New(
//	    weaviate.FXModule,
//	    fx.Provide(
//	        func() *connection.Config {
//	            return connection.FromHost("localhost:8080")
//	        },
//	    ),
//	    fx.Invoke(func(client *weaviate.Client) {
//	        // ...
//	    }),
//	)
//
// A *connection.Config must be available in the container. Optional
// ambient dependencies (logger, observer, tracer) are picked up by the
// sub-modules when their modules are included as well.
var FXModule = fx.Module("weaviate",
	connection.FXModule,
	batch.FXModule,
	data.FXModule,
	gql.FXModule,
	fx.Provide(NewClient),
)
