package qdrant

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/vectordb"
	qdrant "github.com/qdrant/go-client/qdrant"
	"go.uber.org/fx"
)

//
// ──────────────────────────────────────────────────────────────
//   QDRANT CLIENT WRAPPER
// ──────────────────────────────────────────────────────────────
//
// This file defines a thin wrapper around the official Qdrant Go client
// that resolves collections for the foreign data wrapper.
//
// Responsibilities:
//   • Turn an endpoint URL and API key into a gRPC client.
//   • Resolve collection metadata by name.
//   • Translate every SDK failure into a vectordb.RemoteError.
//

// Logger defines the logging contract used by this package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// QdrantParams defines dependencies needed to construct the Qdrant client.
type QdrantParams struct {
	fx.In

	Config *Config
	Logger Logger `optional:"true"`
}

// QdrantClient wraps the official Qdrant Go client. It owns exactly one
// connection and is not meant to be shared between wrapper instances.
type QdrantClient struct {
	api    *qdrant.Client
	cfg    *Config
	logger Logger

	closeOnce sync.Once
	closed    bool
}

var _ vectordb.CollectionResolver = (*QdrantClient)(nil)

// NewQdrantClient ──────────────────────────────────────────────────────────────
// NewQdrantClient
// ──────────────────────────────────────────────────────────────
//
// NewQdrantClient constructs a new QdrantClient from an endpoint URL and API key.
//
// The Qdrant Go SDK creates lazy gRPC connections, so unless
// CheckCompatibility is enabled this performs no network round-trip: an
// unreachable service surfaces on the first FetchCollection.
//
// Construction fails with a *vectordb.RemoteError of kind ErrInvalidEndpoint
// when the endpoint is malformed, or ErrUnknown when the SDK refuses the
// configuration.
//
// Example:
//
//	client, err := qdrant.NewQdrantClient(qdrant.QdrantParams{
//	    Config: qdrant.FromEndpoint("https://xyz.cloud.qdrant.io").WithApiKey(key),
//	})
func NewQdrantClient(p QdrantParams) (*QdrantClient, error) {
	if p.Config == nil {
		return nil, &vectordb.RemoteError{Op: "connect", Kind: vectordb.ErrInvalidEndpoint, Err: errors.New("missing config")}
	}
	log := p.Logger
	if log == nil {
		log = nopLogger{}
	}

	t, err := parseEndpoint(p.Config.Endpoint)
	if err != nil {
		return nil, &vectordb.RemoteError{Op: "connect", Kind: vectordb.ErrInvalidEndpoint, Err: err}
	}

	log.Debug("[Qdrant] Creating client", nil, map[string]interface{}{
		"host": t.host,
		"port": t.port,
		"tls":  t.useTLS,
	})

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   t.host,
		Port:                   t.port,
		APIKey:                 p.Config.ApiKey,
		UseTLS:                 t.useTLS,
		SkipCompatibilityCheck: !p.Config.CheckCompatibility,
	})
	if err != nil {
		return nil, TranslateError("connect", "", fmt.Errorf("failed to initialize client: %w", err))
	}

	return &QdrantClient{
		api:    client,
		cfg:    p.Config,
		logger: log,
	}, nil
}

// FetchCollection ──────────────────────────────────────────────────────────────
// FetchCollection
// ──────────────────────────────────────────────────────────────
//
// FetchCollection confirms that a collection exists and returns its metadata.
//
// It returns a decoupled vectordb.Collection so the wrapper never depends on
// SDK types. Every failure is a *vectordb.RemoteError, e.g. kind
// ErrCollectionNotFound for an unknown name.
func (c *QdrantClient) FetchCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	const op = "get_collection"

	if c.isClosed() {
		return nil, &vectordb.RemoteError{Op: op, Resource: name, Kind: vectordb.ErrClientClosed}
	}
	if name == "" {
		return nil, &vectordb.RemoteError{Op: op, Kind: vectordb.ErrCollectionNotFound, Err: errors.New("collection name cannot be empty")}
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	info, err := c.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, TranslateError(op, name, err)
	}
	if info == nil {
		return nil, &vectordb.RemoteError{Op: op, Resource: name, Kind: vectordb.ErrMalformedResponse, Err: errors.New("empty collection info")}
	}

	size, distance := extractVectorDetails(info)

	collection := &vectordb.Collection{
		Name:        name,
		Status:      info.GetStatus().String(),
		VectorCount: derefUint64(info.IndexedVectorsCount),
		PointCount:  derefUint64(info.PointsCount),
		VectorSize:  size,
		Distance:    distance,
	}

	c.logger.Debug("[Qdrant] Collection resolved", nil, map[string]interface{}{
		"collection": name,
		"status":     collection.Status,
		"points":     collection.PointCount,
	})

	return collection, nil
}

// HealthCheck verifies the availability of the Qdrant service.
// It should be lightweight and fast, typically used for readiness probes.
func (c *QdrantClient) HealthCheck(ctx context.Context) error {
	if c.isClosed() {
		return &vectordb.RemoteError{Op: "health_check", Kind: vectordb.ErrClientClosed}
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return TranslateError("health_check", "", err)
	}

	c.logger.Info("[Qdrant] Health check passed", nil, map[string]interface{}{
		"title":    resp.GetTitle(),
		"version":  resp.GetVersion(),
		"endpoint": c.cfg.Endpoint,
	})
	return nil
}

// Close ──────────────────────────────────────────────────────────────
// Close
// ──────────────────────────────────────────────────────────────
//
// Close releases the underlying gRPC connection. It is safe to call more than once.
func (c *QdrantClient) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.closed = true
		if c.api != nil {
			err = c.api.Close()
		}
		c.logger.Debug("[Qdrant] Client closed", err, nil)
	})
	return err
}

func (c *QdrantClient) isClosed() bool {
	return c.closed || c.api == nil
}

func (c *QdrantClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	return context.WithTimeout(ctx, timeout)
}

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
