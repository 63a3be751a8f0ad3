// Package metrics provides Prometheus-based monitoring for the client
// library.
//
// The package ships a ready-made observability.Observer: every operation
// the connection and batch packages perform is turned into a labelled
// counter increment and a duration histogram sample, and batch submissions
// additionally feed per-kind item counters. The metrics are served on a
// configurable /metrics endpoint for Prometheus scraping.
//
// # Architecture
//
// Following the "accept interfaces, return structs" pattern:
//   - MetricsCollector interface: the contract for metrics operations
//   - Metrics struct: the concrete implementation, also an
//     observability.Observer
//   - NewMetrics constructor: returns *Metrics
//   - FXModule: provides *Metrics and the Observer binding, and manages
//     the HTTP server lifecycle
//
// # Direct usage
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "importer",
//	})
//	go m.Server.ListenAndServe()
//
//	conn, err := connection.NewConnection(connection.ConnectionParams{
//		Config: connection.FromHost("localhost:8080"),
//	})
//	if err != nil {
//		return err
//	}
//	b := batch.NewBatch(conn).WithObserver(m)
//
// Every flush now shows up in client_operations_total and
// client_operation_duration_seconds, with submitted item counts in
// batch_items_submitted_total.
//
// # FX integration
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		connection.FXModule,
//		batch.FXModule,
//		fx.Supply(metrics.Config{Address: ":9090"}),
//		fx.Supply(connection.FromHost("localhost:8080")),
//	)
//
// The Observer binding means the connection and batch modules find the
// metrics instance without any manual wiring.
//
// # Built-in metrics
//
//	client_operations_total{component, operation, status}
//	client_operation_duration_seconds{component, operation}
//	batch_items_submitted_total{operation}
//	batch_size_last{operation}
//
// With EnableDefaultCollectors the Go runtime, process, and build info
// collectors are registered as well. Config.Namespace prefixes all metric
// names; Config.ServiceName adds a constant service label.
//
// # Custom metrics
//
// CreateCounter, CreateHistogram, and CreateGauge register additional
// collectors in the same registry, with the namespace prefix applied:
//
//	imported := m.CreateCounter("documents_imported_total",
//		"Documents imported so far", []string{"class"})
//	imported.WithLabelValues("Article").Inc()
//
// All methods are safe for concurrent use.
package metrics
