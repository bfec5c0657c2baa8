package qdrantfdw

import (
	"context"
	"errors"
	"testing"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/fdw"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
)

func TestFactory_TracksOpenWrappers(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockCollectionResolver(ctrl)
	second := NewMockCollectionResolver(ctrl)
	first.EXPECT().Close().Return(nil).Times(1)
	second.EXPECT().Close().Return(errors.New("connection reset")).Times(1)

	factory := NewFactory(FactoryParams{ClientFactory: staticClient(first)})

	a, err := factory.New(serverOptions())
	require.NoError(t, err)
	b, err := factory.New(serverOptions(), WithClientFactory(staticClient(second)))
	require.NoError(t, err)
	assert.Equal(t, 2, factory.Live())

	require.NoError(t, a.Close())
	assert.Equal(t, 1, factory.Live())

	err = factory.Shutdown()
	require.Error(t, err)
	assert.True(t, IsRemoteError(err))
	assert.Equal(t, 0, factory.Live())
	assert.Equal(t, StateClosed, b.State())

	assert.NoError(t, factory.Shutdown())
}

func TestFactory_NewFailureIsNotTracked(t *testing.T) {
	factory := NewFactory(FactoryParams{ClientFactory: failingClientFactory(t)})

	_, err := factory.New(fdw.Options{})
	assert.True(t, IsOptionsError(err))
	assert.Equal(t, 0, factory.Live())
}

func TestFactory_Validate(t *testing.T) {
	factory := NewFactory(FactoryParams{})

	assert.NoError(t, factory.Validate(list("collection_name=docs"), fdw.CatalogTable))
	assert.True(t, IsOptionsError(factory.Validate(list("collection_name=docs"), fdw.CatalogServer)))
}

func TestFXModule_ClosesWrappersOnStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := NewMockCollectionResolver(ctrl)
	resolver.EXPECT().Close().Return(nil).Times(1)

	var factory *Factory
	app := fxtest.New(t,
		fx.Provide(
			func() logger.Logger { return logger.NewNop() },
			func() ClientFactory { return staticClient(resolver) },
		),
		FXModule,
		fx.Populate(&factory),
	)
	app.RequireStart()

	w, err := factory.New(serverOptions())
	require.NoError(t, err)
	assert.Equal(t, StateIdle, w.State())

	require.NoError(t, app.Stop(context.Background()))
	assert.Equal(t, StateClosed, w.State())
	assert.Equal(t, 0, factory.Live())
}
