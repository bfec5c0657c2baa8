package qdrant

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// target is a parsed endpoint.
type target struct {
	host   string
	port   int
	useTLS bool
}

// parseEndpoint turns an endpoint URL into host, port and TLS settings.
//
// Accepted forms:
//   - "https://host[:port]"  TLS enabled
//   - "http://host[:port]"   plaintext
//   - "host[:port]"          plaintext
//
// The port defaults to DefaultPort.
func parseEndpoint(endpoint string) (target, error) {
	raw := strings.TrimSpace(endpoint)
	if raw == "" {
		return target{}, fmt.Errorf("endpoint cannot be empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return target{}, fmt.Errorf("cannot parse endpoint %q: %w", endpoint, err)
	}

	t := target{host: u.Hostname(), port: DefaultPort}
	switch strings.ToLower(u.Scheme) {
	case "https":
		t.useTLS = true
	case "http":
	default:
		return target{}, fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}

	if t.host == "" {
		return target{}, fmt.Errorf("endpoint %q has no host", endpoint)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return target{}, fmt.Errorf("endpoint %q has an invalid port", endpoint)
		}
		t.port = port
	}

	return t, nil
}

// extractVectorDetails safely extracts the vector size (embedding dimension)
// and distance metric (e.g., "Cosine", "Dot", "Euclid") from a Qdrant
// `CollectionInfo` object.
//
// Collections with named vectors report the first name in lexical order so
// the result is stable. Missing fields yield (0, "").
func extractVectorDetails(info *qdrant.CollectionInfo) (int, string) {
	if info == nil ||
		info.Config == nil ||
		info.Config.Params == nil ||
		info.Config.Params.VectorsConfig == nil ||
		info.Config.Params.VectorsConfig.Config == nil {
		return 0, ""
	}

	switch cfg := info.Config.Params.VectorsConfig.Config.(type) {
	case *qdrant.VectorsConfig_Params:
		if cfg.Params == nil {
			return 0, ""
		}
		return int(cfg.Params.Size), cfg.Params.Distance.String()
	case *qdrant.VectorsConfig_ParamsMap:
		if cfg.ParamsMap == nil || len(cfg.ParamsMap.Map) == 0 {
			return 0, ""
		}
		first := ""
		for name := range cfg.ParamsMap.Map {
			if first == "" || name < first {
				first = name
			}
		}
		p := cfg.ParamsMap.Map[first]
		if p == nil {
			return 0, ""
		}
		return int(p.Size), p.Distance.String()
	}

	return 0, ""
}

// derefUint64 safely dereferences a *uint64 pointer.
// If the pointer is nil, it returns 0 instead of panicking.
func derefUint64(v *uint64) uint64 {
	if v != nil {
		return *v
	}
	return 0
}
