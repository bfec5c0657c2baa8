// Package logger provides structured logging for the wrapper and its host
// binding, built on Uber's zap.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: the contract other packages accept
//   - LoggerClient struct: the zap-backed implementation
//   - NewLoggerClient constructor: returns *LoggerClient
//   - FXModule: provides both *LoggerClient and Logger
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:         logger.Info,
//	    ServiceName:   "qdrant-fdw",
//	    EnableTracing: true,
//	})
//
//	log.Info("Scan started", nil, map[string]interface{}{
//	    "collection": "docs",
//	})
//
//	// trace_id and span_id are added when ctx carries a span
//	log.ErrorWithContext(ctx, "Remote fetch failed", err, nil)
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Debug, ServiceName: "qdrant-fdw"}
//	    }),
//	)
//
// Tests can use NewNop or wrap a zaptest logger with NewFromZap.
package logger
