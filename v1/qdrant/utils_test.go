package qdrant

import (
	"testing"

	qdrant "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     target
	}{
		{"https default port", "https://x.example", target{host: "x.example", port: 6334, useTLS: true}},
		{"https explicit port", "https://x.example:443", target{host: "x.example", port: 443, useTLS: true}},
		{"http", "http://localhost:6334", target{host: "localhost", port: 6334}},
		{"bare host", "qdrant.internal", target{host: "qdrant.internal", port: 6334}},
		{"bare host and port", "qdrant.internal:7000", target{host: "qdrant.internal", port: 7000}},
		{"trailing path ignored", "https://x.example/v1/", target{host: "x.example", port: 6334, useTLS: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEndpoint(tt.endpoint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEndpoint_Invalid(t *testing.T) {
	for _, endpoint := range []string{
		"",
		"   ",
		"ftp://x.example",
		"https://",
		"https://x.example:notaport",
		"https://x.example:70000",
	} {
		_, err := parseEndpoint(endpoint)
		assert.Error(t, err, "endpoint %q", endpoint)
	}
}

func TestExtractVectorDetails(t *testing.T) {
	t.Run("nil info", func(t *testing.T) {
		size, distance := extractVectorDetails(nil)
		assert.Equal(t, 0, size)
		assert.Equal(t, "", distance)
	})

	t.Run("single vector params", func(t *testing.T) {
		info := &qdrant.CollectionInfo{
			Config: &qdrant.CollectionConfig{
				Params: &qdrant.CollectionParams{
					VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
						Size:     384,
						Distance: qdrant.Distance_Cosine,
					}),
				},
			},
		}
		size, distance := extractVectorDetails(info)
		assert.Equal(t, 384, size)
		assert.Equal(t, "Cosine", distance)
	})

	t.Run("named vectors picks first name", func(t *testing.T) {
		info := &qdrant.CollectionInfo{
			Config: &qdrant.CollectionConfig{
				Params: &qdrant.CollectionParams{
					VectorsConfig: qdrant.NewVectorsConfigMap(map[string]*qdrant.VectorParams{
						"text":  {Size: 768, Distance: qdrant.Distance_Dot},
						"image": {Size: 512, Distance: qdrant.Distance_Euclid},
					}),
				},
			},
		}
		size, distance := extractVectorDetails(info)
		assert.Equal(t, 512, size)
		assert.Equal(t, "Euclid", distance)
	})

	t.Run("missing params", func(t *testing.T) {
		size, distance := extractVectorDetails(&qdrant.CollectionInfo{Config: &qdrant.CollectionConfig{}})
		assert.Equal(t, 0, size)
		assert.Equal(t, "", distance)
	})
}

func TestDerefUint64(t *testing.T) {
	v := uint64(42)
	assert.Equal(t, uint64(42), derefUint64(&v))
	assert.Equal(t, uint64(0), derefUint64(nil))
}
