package qdrantfdw

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides the wrapper Factory and closes every wrapper left open
// when the application stops.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,  // optional
//	    metrics.FXModule, // optional
//	    tracer.FXModule,  // optional
//	    qdrantfdw.FXModule,
//	)
var FXModule = fx.Module("qdrantfdw",
	fx.Provide(
		NewFactory,
	),
	fx.Invoke(RegisterFactoryLifecycle),
)

// FactoryLifecycleParams groups the dependencies needed for lifecycle management.
type FactoryLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Factory   *Factory
}

// RegisterFactoryLifecycle logs the wrapper metadata on start and shuts the
// factory down on stop.
func RegisterFactoryLifecycle(params FactoryLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			meta := Meta()
			params.Factory.logger.Info("[QdrantFdw] Wrapper loaded", nil, map[string]interface{}{
				"name":    meta.Name,
				"version": meta.Version,
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return params.Factory.Shutdown()
		},
	})
}
