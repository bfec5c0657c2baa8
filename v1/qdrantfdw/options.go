package qdrantfdw

import (
	"strconv"
	"strings"
	"time"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/fdw"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/qdrant"
)

// Option keys understood by the wrapper.
const (
	// Server options.
	OptionEndpoint           = "endpoint"
	OptionCredential         = "credential"
	OptionTimeout            = "timeout"
	OptionCheckCompatibility = "check_compatibility"

	// Table options.
	OptionCollectionName = "collection_name"
)

// ConfigFromOptions builds the remote client configuration from server options.
//
// `endpoint` and `credential` are required. `timeout` is a Go duration and
// `check_compatibility` a boolean; both fall back to qdrant.DefaultConfig.
// Every failure is an *fdw.OptionsError.
func ConfigFromOptions(opts fdw.Options) (*qdrant.Config, error) {
	endpoint, err := fdw.RequireOption(OptionEndpoint, opts)
	if err != nil {
		return nil, err
	}
	credential, err := fdw.RequireOption(OptionCredential, opts)
	if err != nil {
		return nil, err
	}

	cfg := qdrant.FromEndpoint(endpoint).WithApiKey(credential)

	if raw := fdw.OptionOrDefault(OptionTimeout, opts, ""); raw != "" {
		timeout, err := parseTimeout(raw)
		if err != nil {
			return nil, err
		}
		cfg.WithTimeout(timeout)
	}

	if raw := fdw.OptionOrDefault(OptionCheckCompatibility, opts, ""); raw != "" {
		check, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &fdw.OptionsError{Name: OptionCheckCompatibility, Reason: "expected a boolean"}
		}
		cfg.WithCompatibilityCheck(check)
	}

	return cfg, nil
}

func parseTimeout(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, &fdw.OptionsError{Name: OptionTimeout, Reason: "expected a duration such as 5s"}
	}
	if d <= 0 {
		return 0, &fdw.OptionsError{Name: OptionTimeout, Reason: "must be positive"}
	}
	return d, nil
}

// Validator checks DDL options before the host persists them.
//
// Server options must carry non-empty `endpoint` and `credential`; table
// options must carry a non-empty `collection_name`. Options of any other
// catalog are accepted unchecked. Each entry of list is a `key=value` string;
// nil entries are skipped.
func Validator(list []*string, catalog fdw.CatalogKind) error {
	var required []string
	switch catalog {
	case fdw.CatalogServer:
		required = []string{OptionEndpoint, OptionCredential}
	case fdw.CatalogTable:
		required = []string{OptionCollectionName}
	default:
		return nil
	}

	for _, name := range required {
		if err := fdw.CheckOptionsContain(list, name); err != nil {
			return optionsError(err)
		}
	}

	if catalog == fdw.CatalogServer {
		if raw, ok := lookup(list, OptionTimeout); ok && strings.TrimSpace(raw) != "" {
			if _, err := parseTimeout(raw); err != nil {
				return optionsError(err)
			}
		}
		if raw, ok := lookup(list, OptionCheckCompatibility); ok && strings.TrimSpace(raw) != "" {
			if _, err := strconv.ParseBool(raw); err != nil {
				return optionsError(&fdw.OptionsError{Name: OptionCheckCompatibility, Reason: "expected a boolean"})
			}
		}
	}
	return nil
}

// lookup returns the value of the last `name=value` entry in list.
func lookup(list []*string, name string) (string, bool) {
	var (
		value string
		found bool
	)
	prefix := name + "="
	for _, opt := range list {
		if opt == nil {
			continue
		}
		if v, ok := strings.CutPrefix(*opt, prefix); ok {
			value, found = v, true
		}
	}
	return value, found
}
