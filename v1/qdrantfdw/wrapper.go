package qdrantfdw

import (
	"context"
	"time"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/fdw"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/logger"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/metrics"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/qdrant"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/tracer"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/vectordb"
)

const (
	opGetCollection = "get_collection"
	spanBeginScan   = "qdrant_fdw.begin_scan"
)

// State is the lifecycle position of a Wrapper.
type State int

const (
	// StateIdle means no scan is active. A new wrapper starts here.
	StateIdle State = iota
	// StateScanning means BeginScan succeeded and rows may be requested.
	StateScanning
	// StateExhausted means IterScan has reported the end of the scan.
	StateExhausted
	// StateClosed means the remote client has been released.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateExhausted:
		return "exhausted"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ClientFactory creates the remote client for one wrapper.
type ClientFactory func(cfg *qdrant.Config, log logger.Logger) (vectordb.CollectionResolver, error)

// Option customizes a Wrapper.
type Option func(*settings)

type settings struct {
	logger    logger.Logger
	metrics   metrics.MetricsCollector
	tracer    *tracer.Tracer
	newClient ClientFactory
	onClose   func(*Wrapper)
}

// WithLogger sets the logger. Without it the wrapper logs nothing.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the collector that receives scan and error counts.
func WithMetrics(m metrics.MetricsCollector) Option {
	return func(s *settings) { s.metrics = m }
}

// WithTracer wraps every BeginScan in a span.
func WithTracer(t *tracer.Tracer) Option {
	return func(s *settings) { s.tracer = t }
}

// WithClientFactory replaces the Qdrant client, e.g. with a mock in tests.
func WithClientFactory(f ClientFactory) Option {
	return func(s *settings) {
		if f != nil {
			s.newClient = f
		}
	}
}

func withCloseHook(fn func(*Wrapper)) Option {
	return func(s *settings) { s.onClose = fn }
}

// NewQdrantResolver is the default ClientFactory.
func NewQdrantResolver(cfg *qdrant.Config, log logger.Logger) (vectordb.CollectionResolver, error) {
	client, err := qdrant.NewQdrantClient(qdrant.QdrantParams{Config: cfg, Logger: log})
	if err != nil {
		return nil, err
	}
	return client, nil
}

type scanSession struct {
	collection *vectordb.Collection
	hints      fdw.ScanHints
	options    fdw.Options
}

// Wrapper is the scan adapter for one foreign table scan.
//
// A Wrapper owns exactly one remote client for its whole life and is driven
// by the host through BeginScan, IterScan and EndScan, possibly many times,
// and finally Close. It is not safe for concurrent use; the host calls it
// from a single thread.
type Wrapper struct {
	client   vectordb.CollectionResolver
	endpoint string

	logger  logger.Logger
	metrics metrics.MetricsCollector
	tracer  *tracer.Tracer
	onClose func(*Wrapper)

	state State
	scan  *scanSession
}

// New creates a wrapper from server options.
//
// `endpoint` and `credential` must be present and non-empty, otherwise a
// KindOptions error is returned and no client is created. A client that
// cannot be created yields a KindRemote error. Construction does not contact
// the service unless `check_compatibility` is enabled.
func New(serverOptions fdw.Options, opts ...Option) (*Wrapper, error) {
	s := settings{
		logger:    logger.NewNop(),
		newClient: NewQdrantResolver,
	}
	for _, opt := range opts {
		opt(&s)
	}

	cfg, err := ConfigFromOptions(serverOptions)
	if err != nil {
		e := optionsError(err)
		s.logger.Warn("[QdrantFdw] Invalid server options", e, nil)
		countError(s.metrics, e)
		return nil, e
	}

	client, err := s.newClient(cfg, s.logger)
	if err != nil {
		e := remoteError(err)
		s.logger.Error("[QdrantFdw] Failed to create client", e, map[string]interface{}{
			"endpoint": cfg.Endpoint,
		})
		countError(s.metrics, e)
		return nil, e
	}

	s.logger.Info("[QdrantFdw] Wrapper created", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"version":  Version,
	})

	return &Wrapper{
		client:   client,
		endpoint: cfg.Endpoint,
		logger:   s.logger,
		metrics:  s.metrics,
		tracer:   s.tracer,
		onClose:  s.onClose,
		state:    StateIdle,
	}, nil
}

// BeginScan starts a scan of the collection named by the `collection_name`
// table option.
//
// The collection must exist on the service. Qualifiers, columns, sorts and
// limit are advisory: they are kept for the scan but do not change the remote
// request. On failure the wrapper stays idle and may be used again.
func (w *Wrapper) BeginScan(
	ctx context.Context,
	quals []fdw.Qual,
	columns []fdw.Column,
	sorts []fdw.Sort,
	limit *fdw.Limit,
	tableOptions fdw.Options,
) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	defer func() {
		if w.metrics != nil {
			w.metrics.RecordScan(scanStatus(err))
		}
	}()

	switch w.state {
	case StateClosed:
		return w.fail(stateError("begin scan", ErrWrapperClosed))
	case StateScanning, StateExhausted:
		return w.fail(stateError("begin scan", ErrScanInProgress))
	}

	name, optErr := fdw.RequireOption(OptionCollectionName, tableOptions)
	if optErr != nil {
		e := optionsError(optErr)
		w.logger.Warn("[QdrantFdw] Invalid table options", e, nil)
		return w.fail(e)
	}

	ctx, endSpan := w.startSpan(ctx, name)
	defer func() { endSpan(err) }()

	collection, fetchErr := w.fetchCollection(ctx, name)
	if fetchErr != nil {
		e := remoteError(fetchErr)
		w.logger.ErrorWithContext(ctx, "[QdrantFdw] Failed to fetch collection", e, map[string]interface{}{
			"collection": name,
			"endpoint":   w.endpoint,
		})
		return w.fail(e)
	}

	w.scan = &scanSession{
		collection: collection,
		hints: fdw.ScanHints{
			Quals:   quals,
			Columns: columns,
			Sorts:   sorts,
			Limit:   limit,
		},
		options: tableOptions,
	}
	w.state = StateScanning

	w.logger.InfoWithContext(ctx, "[QdrantFdw] Scan started", nil, map[string]interface{}{
		"collection": name,
		"status":     collection.Status,
		"points":     collection.PointCount,
		"quals":      len(quals),
		"columns":    len(columns),
		"sorts":      len(sorts),
		"limit":      limit != nil,
	})
	return nil
}

func (w *Wrapper) fetchCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	start := time.Now()
	collection, err := w.client.FetchCollection(ctx, name)
	if w.metrics != nil {
		w.metrics.ObserveRemoteRequest(start, opGetCollection)
	}
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, &vectordb.RemoteError{Op: opGetCollection, Resource: name, Kind: vectordb.ErrMalformedResponse}
	}
	return collection, nil
}

func (w *Wrapper) startSpan(ctx context.Context, collection string) (context.Context, func(error)) {
	if w.tracer == nil {
		return ctx, func(error) {}
	}
	ctx, span := w.tracer.StartSpan(ctx, spanBeginScan)
	w.tracer.SetAttributes(span, map[string]interface{}{
		"collection_name": collection,
	})
	return ctx, func(err error) {
		if err != nil {
			w.tracer.RecordErrorOnSpan(span, err)
		}
		span.End()
	}
}

// IterScan returns the next row of the active scan, or nil when the scan is
// exhausted.
//
// Rows are not materialized from the collection, so the first call already
// reports the end. Further calls keep returning nil until EndScan. Calling it
// without an active scan is a KindState error.
func (w *Wrapper) IterScan(ctx context.Context) (*fdw.Row, error) {
	switch w.state {
	case StateClosed:
		return nil, w.fail(stateError("iterate scan", ErrWrapperClosed))
	case StateIdle:
		return nil, w.fail(stateError("iterate scan", ErrScanNotStarted))
	case StateExhausted:
		return nil, nil
	}

	w.state = StateExhausted
	return nil, nil
}

// EndScan finishes the active scan. It always succeeds and may be called in
// any state, any number of times.
func (w *Wrapper) EndScan() error {
	if w.scan != nil {
		w.logger.Debug("[QdrantFdw] Scan ended", nil, map[string]interface{}{
			"collection": w.scan.collection.Name,
			"state":      w.state.String(),
		})
		w.scan = nil
	}
	if w.state != StateClosed {
		w.state = StateIdle
	}
	return nil
}

// Close ends any active scan and releases the remote client. Calls after
// the first are no-ops.
func (w *Wrapper) Close() error {
	if w.state == StateClosed {
		return nil
	}
	_ = w.EndScan()
	w.state = StateClosed

	if w.onClose != nil {
		w.onClose(w)
	}

	if err := w.client.Close(); err != nil {
		e := remoteError(err)
		w.logger.Warn("[QdrantFdw] Failed to close client", e, map[string]interface{}{
			"endpoint": w.endpoint,
		})
		return w.fail(e)
	}
	return nil
}

// State returns the current lifecycle state.
func (w *Wrapper) State() State {
	return w.state
}

// ScanCollection returns the collection resolved by the active scan, or nil
// when no scan is active.
func (w *Wrapper) ScanCollection() *vectordb.Collection {
	if w.scan == nil {
		return nil
	}
	return w.scan.collection
}

// ScanHints returns the pushdown hints recorded by the active scan.
func (w *Wrapper) ScanHints() (fdw.ScanHints, bool) {
	if w.scan == nil {
		return fdw.ScanHints{}, false
	}
	return w.scan.hints, true
}

func (w *Wrapper) fail(e *Error) error {
	countError(w.metrics, e)
	return e
}

func countError(m metrics.MetricsCollector, e *Error) {
	if m != nil {
		m.IncrementErrors(e.Kind.String())
	}
}
