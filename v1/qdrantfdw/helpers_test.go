package qdrantfdw

import (
	"sync"
	"testing"
	"time"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/fdw"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/logger"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/qdrant"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/vectordb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func serverOptions() fdw.Options {
	return fdw.Options{
		OptionEndpoint:   "https://x.example",
		OptionCredential: "k",
	}
}

func tableOptions(collection string) fdw.Options {
	return fdw.Options{OptionCollectionName: collection}
}

func docsCollection() *vectordb.Collection {
	return &vectordb.Collection{
		Name:       "docs",
		Status:     "Green",
		VectorSize: 4,
		Distance:   "Cosine",
		PointCount: 3,
	}
}

func staticClient(r vectordb.CollectionResolver) ClientFactory {
	return func(*qdrant.Config, logger.Logger) (vectordb.CollectionResolver, error) {
		return r, nil
	}
}

func failingClientFactory(t *testing.T) ClientFactory {
	return func(*qdrant.Config, logger.Logger) (vectordb.CollectionResolver, error) {
		t.Fatal("client must not be created")
		return nil, nil
	}
}

func newMockedWrapper(t *testing.T, opts ...Option) (*Wrapper, *MockCollectionResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	resolver := NewMockCollectionResolver(ctrl)

	w, err := New(serverOptions(), append([]Option{WithClientFactory(staticClient(resolver))}, opts...)...)
	require.NoError(t, err)
	return w, resolver
}

// recordingMetrics is a MetricsCollector that keeps every call in memory.
type recordingMetrics struct {
	mu       sync.Mutex
	scans    []string
	remote   []string
	errKinds []string
}

func (m *recordingMetrics) RecordScan(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scans = append(m.scans, status)
}

func (m *recordingMetrics) ObserveRemoteRequest(_ time.Time, operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remote = append(m.remote, operation)
}

func (m *recordingMetrics) IncrementErrors(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errKinds = append(m.errKinds, kind)
}

func (m *recordingMetrics) CreateCounter(string, string, []string) *prometheus.CounterVec {
	return nil
}

func (m *recordingMetrics) CreateHistogram(string, string, []string, []float64) *prometheus.HistogramVec {
	return nil
}
