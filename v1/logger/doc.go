// Package logger provides structured logging for the Weaviate client.
//
// It wraps Uber's Zap logger behind a small method surface
// (Info/Debug/Warn/Error/Fatal with optional error and field maps) so the
// other client packages can log without depending on Zap directly. It
// integrates with the fx dependency injection framework.
//
// Direct usage:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info})
//	log.Info("Batch flushed", nil, map[string]interface{}{"objects": 120})
//
// FX usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config { return logger.Config{Level: logger.Info} }),
//	)
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
