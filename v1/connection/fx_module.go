package connection

import (
	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides the Connection.
// It registers the Connection with the Fx dependency injection framework,
// making it available to the batch, data and gql clients.
//
// Usage:
//
//	app := fx.New(
//	    connection.FXModule,
//	    fx.Provide(
//	        func() *connection.Config {
//	            return connection.FromHost("localhost:8080")
//	        },
//	    ),
//	    // other modules...
//	)
var FXModule = fx.Module("connection",
	fx.Provide(
		NewConnection,
	),
)
