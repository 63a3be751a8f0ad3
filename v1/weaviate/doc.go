// Package weaviate is the entry point of the client library. It bundles
// the connection, batch, data, and gql packages into one Client.
//
// # Quick start
//
//	client, err := weaviate.New(connection.FromHost("localhost:8080"))
//	if err != nil {
//		return err
//	}
//
//	// Object CRUD.
//	id, err := client.Data.Create(ctx, map[string]interface{}{"name": "John"}, "Person", "", nil)
//
//	// Bulk import.
//	err = client.Batch.Configure(ctx, batch.Config{BatchSize: 100, Dynamic: true})
//	err = client.Batch.Run(ctx, func(b *batch.Batch) error {
//		for _, person := range people {
//			if err := b.AddDataObject(ctx, person.Properties, "Person", "", nil); err != nil {
//				return err
//			}
//		}
//		return nil
//	})
//
//	// GraphQL.
//	result, err := client.Query.Get("Person", "name").WithLimit(10).Do(ctx)
//
// # Custom assembly
//
// New builds the sub-clients without logging, metrics, or tracing. To
// attach those, build the parts directly:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info})
//	m := metrics.NewMetrics(metrics.Config{})
//
//	conn, err := connection.NewConnection(connection.ConnectionParams{
//		Config:   connection.FromHost("localhost:8080"),
//		Logger:   log,
//		Observer: m,
//	})
//	if err != nil {
//		return err
//	}
//	client := weaviate.NewClient(weaviate.ClientParams{
//		Connection: conn,
//		Batch:      batch.NewBatch(conn).WithLogger(log).WithObserver(m),
//		Data:       data.NewClient(conn),
//		Query:      gql.NewQuery(conn),
//	})
//
// or use FXModule together with the logger, metrics, and tracer modules
// and let fx do the wiring.
package weaviate
