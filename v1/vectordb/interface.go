package vectordb

import "context"

// CollectionResolver is the minimal remote-service contract a connector needs:
// resolving a collection by name.
//
// Implementations return a *RemoteError wrapping one of the sentinel kinds in
// this package when the collection cannot be resolved, so callers can tell
// not-found, unauthorized and transport faults apart without importing the
// client library.
//
// Example usage:
//
//	func probe(ctx context.Context, r vectordb.CollectionResolver) error {
//	    _, err := r.FetchCollection(ctx, "docs")
//	    if vectordb.IsNotFound(err) {
//	        // the collection does not exist
//	    }
//	    return err
//	}
//
//go:generate mockgen -source=interface.go -destination=../qdrantfdw/mock_resolver_test.go -package=qdrantfdw
type CollectionResolver interface {
	// FetchCollection confirms that the named collection exists and returns its metadata.
	FetchCollection(ctx context.Context, name string) (*Collection, error)

	// Close releases the connection held by the resolver.
	Close() error
}
