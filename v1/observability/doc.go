// Package observability defines the Observer contract shared by all client
// packages.
//
// Every package in this library (connection, batch, ...) can be handed an
// Observer; after each operation the package calls ObserveOperation with an
// OperationContext describing what happened. This keeps metrics and tracing
// concerns out of the operational code paths: the packages emit events, the
// observer decides what to do with them.
//
// The metrics package ships a Prometheus-backed Observer. Applications can
// plug in their own implementation to route events elsewhere.
package observability
