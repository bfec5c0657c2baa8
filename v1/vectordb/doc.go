// Package vectordb provides the database-agnostic contract between a
// connector and a remote vector-search service.
//
// The connector only needs to resolve collections by name, so the contract is
// a single interface, CollectionResolver, plus the Collection metadata it
// returns and a closed set of failure kinds:
//
//	ErrCollectionNotFound  the collection does not exist
//	ErrUnauthorized        the credential was rejected
//	ErrUnavailable         the service could not be reached
//	ErrTimeout             the request exceeded its deadline
//	ErrMalformedResponse   the answer could not be interpreted
//	ErrInvalidEndpoint     the endpoint could not be used to connect
//	ErrClientClosed        the client was used after Close
//	ErrUnknown             anything else
//
// Clients wrap every failure in a *RemoteError so the kind survives errors.Is
// while the original client library error stays available for reporting:
//
//	if vectordb.IsNotFound(err) {
//	    // ...
//	}
//
// The qdrant package implements CollectionResolver on top of the official
// Qdrant Go client.
package vectordb
