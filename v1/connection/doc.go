// Package connection provides the HTTP transport used to talk to a
// Weaviate server.
//
// The connection package owns a single configured http.Client and exposes
// the HTTP verbs as methods taking a path relative to the versioned API
// root. Every method returns a *Response carrying the status code, the
// full body and the elapsed wall-clock time of the exchange; interpreting
// the status code is left to the caller because different operations
// accept different codes.
//
// # Timeouts
//
// Two timeouts are configured independently:
//   - ConnectTimeout bounds TCP connection establishment
//   - ReadTimeout bounds the whole request/response exchange
//
// A request that fails because the read timeout elapsed may still have
// reached the server; IsTimeout lets callers distinguish that case from
// failures (such as a refused connection) where the request was never
// submitted.
//
// # Direct Usage (Without FX)
//
//	conn, err := connection.NewConnection(connection.ConnectionParams{
//	    Config: connection.FromHost("localhost:8080"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	resp, err := conn.Get(ctx, "/objects/"+id, nil)
//	if err != nil {
//	    return err
//	}
//	if resp.StatusCode != http.StatusOK {
//	    return connection.NewUnexpectedStatusCodeError("Get object", resp)
//	}
//
// # FX Module Integration
//
// For applications using Uber's fx, FXModule provides the *Connection to
// the rest of the dependency graph:
//
//	app := fx.New(
//	    connection.FXModule,
//	    fx.Provide(func() *connection.Config {
//	        return connection.FromHost("localhost:8080")
//	    }),
//	)
package connection
