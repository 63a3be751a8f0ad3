package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/rickhofstede/weaviate-go/v1/logger"
	"github.com/rickhofstede/weaviate-go/v1/observability"
)

// FXModule integrates the Prometheus metrics server into an fx application.
//
// The module:
//  1. Provides NewMetrics, making *Metrics available to other components.
//  2. Binds *Metrics to observability.Observer, so the connection and
//     batch fx modules pick it up automatically.
//  3. Invokes RegisterMetricsLifecycle to start and gracefully stop the
//     metrics HTTP server with the application.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{
//	            Address:                 ":9090",
//	            EnableDefaultCollectors: true,
//	            ServiceName:             "importer",
//	        }
//	    }),
//	    // connection.FXModule, batch.FXModule, ...
//	)
//
// A metrics.Config must be available in the container; the logger module
// is required for lifecycle logging.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) observability.Observer { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the metrics HTTP server on application
// start and shuts it down gracefully on stop. It is invoked by FXModule
// and not meant to be called directly.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting Prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("Error starting Prometheus metrics server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Prometheus metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
