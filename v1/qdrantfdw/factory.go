package qdrantfdw

import (
	"errors"
	"sync"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/fdw"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/logger"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/metrics"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/tracer"
	"go.uber.org/fx"
)

// FactoryParams groups the dependencies shared by every wrapper of a host.
type FactoryParams struct {
	fx.In

	Logger        logger.Logger            `optional:"true"`
	Metrics       metrics.MetricsCollector `optional:"true"`
	Tracer        *tracer.Tracer           `optional:"true"`
	ClientFactory ClientFactory            `optional:"true"`
}

// Factory creates wrappers that share a logger, metrics and tracer, and keeps
// track of the wrappers that have not been closed yet.
//
// Unlike a Wrapper, a Factory is safe for concurrent use.
type Factory struct {
	opts   []Option
	logger logger.Logger

	mu   sync.Mutex
	live map[*Wrapper]struct{}
}

// NewFactory creates a Factory. Every dependency is optional.
//
// Example:
//
//	factory := qdrantfdw.NewFactory(qdrantfdw.FactoryParams{Logger: log})
//	w, err := factory.New(fdw.Options{"endpoint": "https://x.example", "credential": key})
func NewFactory(p FactoryParams) *Factory {
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &Factory{
		opts: []Option{
			WithLogger(log),
			WithMetrics(p.Metrics),
			WithTracer(p.Tracer),
			WithClientFactory(p.ClientFactory),
		},
		logger: log,
		live:   make(map[*Wrapper]struct{}),
	}
}

// New creates a wrapper from server options. See New for the error contract.
func (f *Factory) New(serverOptions fdw.Options, extra ...Option) (*Wrapper, error) {
	opts := make([]Option, 0, len(f.opts)+len(extra)+1)
	opts = append(opts, f.opts...)
	opts = append(opts, extra...)
	opts = append(opts, withCloseHook(f.release))

	w, err := New(serverOptions, opts...)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.live[w] = struct{}{}
	f.mu.Unlock()
	return w, nil
}

// Validate runs Validator and logs rejected options.
func (f *Factory) Validate(list []*string, catalog fdw.CatalogKind) error {
	err := Validator(list, catalog)
	if err != nil {
		f.logger.Warn("[QdrantFdw] Options rejected", err, map[string]interface{}{
			"catalog": catalog.String(),
		})
	}
	return err
}

// Live returns the number of wrappers created by f that are not closed.
func (f *Factory) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

// Shutdown closes every wrapper that is still open and returns the joined
// close errors. The host must not use those wrappers concurrently.
func (f *Factory) Shutdown() error {
	f.mu.Lock()
	open := make([]*Wrapper, 0, len(f.live))
	for w := range f.live {
		open = append(open, w)
	}
	f.mu.Unlock()

	if len(open) > 0 {
		f.logger.Info("[QdrantFdw] Closing open wrappers", nil, map[string]interface{}{
			"count": len(open),
		})
	}

	var errs []error
	for _, w := range open {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *Factory) release(w *Wrapper) {
	f.mu.Lock()
	delete(f.live, w)
	f.mu.Unlock()
}
