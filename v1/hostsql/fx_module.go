package hostsql

import (
	"context"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/logger"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/qdrantfdw"
	"go.uber.org/fx"
)

// FXModule provides the host Database on top of the qdrantfdw Factory.
//
// Usage:
//
//	app := fx.New(
//	    qdrantfdw.FXModule,
//	    hostsql.FXModule,
//	    fx.Supply(hostsql.DefaultConfig()),
//	)
var FXModule = fx.Module("hostsql",
	fx.Provide(
		NewDatabaseWithDI,
	),
	fx.Invoke(RegisterDatabaseLifecycle),
)

// DatabaseParams groups the dependencies needed to create the Database.
type DatabaseParams struct {
	fx.In

	Config  Config
	Factory *qdrantfdw.Factory
	Logger  logger.Logger `optional:"true"`
}

// NewDatabaseWithDI creates the Database from injected dependencies.
func NewDatabaseWithDI(p DatabaseParams) *Database {
	return NewDatabase(p.Config.Name, p.Factory).
		WithLogger(p.Logger).
		WithVerifyConcurrency(p.Config.VerifyConcurrency)
}

// DatabaseLifecycleParams groups the dependencies needed for lifecycle management.
type DatabaseLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    Config
	Database  *Database
}

// RegisterDatabaseLifecycle probes every foreign table on start when
// Config.VerifyOnStart is set. Probe failures are logged only.
func RegisterDatabaseLifecycle(params DatabaseLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !params.Config.VerifyOnStart {
				return nil
			}
			if err := params.Database.Verify(ctx); err != nil {
				params.Database.logger.Warn("[HostSQL] Foreign tables failed verification", err, nil)
				return nil
			}
			params.Database.logger.Info("[HostSQL] Foreign tables verified", nil, nil)
			return nil
		},
	})
}
