// Package tracer provides distributed tracing for the client using
// OpenTelemetry.
//
// It abstracts away the OpenTelemetry setup behind a small API for creating
// spans, recording errors, and attaching attributes. The connection package
// consumes it to trace every HTTP exchange with the server.
//
// Basic usage:
//
//	t := tracer.NewClient(tracer.Config{
//	    ServiceName:  "my-importer",
//	    AppEnv:       "development",
//	    EnableExport: true,
//	}, log)
//
//	ctx, span := t.StartSpan(ctx, "import-articles")
//	defer span.End()
package tracer
