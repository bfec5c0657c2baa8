package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/logger"
)

// FXModule provides a Uber FX module that configures distributed tracing for your application.
//
// The module:
// 1. Provides the tracer client through the NewClient constructor
// 2. Registers shutdown hooks to cleanly close tracer resources on application termination
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A tracer.Config instance
// - A logger.Logger (logger.FXModule provides one)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		func(l logger.Logger) Logger { return l },
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer with the FX lifecycle.
// Pending spans are flushed to the exporter on stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer == nil || tracer.tracer == nil {
				return nil
			}
			tracer.logger.Info("shutting down tracer...", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}
