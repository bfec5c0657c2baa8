package vectordb

import (
	"errors"
	"fmt"
)

// Remote failure kinds. A *RemoteError always wraps exactly one of these.
var (
	// ErrCollectionNotFound is returned when the named collection does not exist.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrUnauthorized is returned when the credential is missing, invalid or lacks access.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable is returned when the service cannot be reached.
	ErrUnavailable = errors.New("service unavailable")

	// ErrTimeout is returned when a request exceeds its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrMalformedResponse is returned when the service answers with data the client cannot use.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidEndpoint is returned when the endpoint cannot be turned into a connection.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrClientClosed is returned when a closed client is used.
	ErrClientClosed = errors.New("client is closed")

	// ErrUnknown is returned for failures that match no other kind.
	ErrUnknown = errors.New("unknown remote error")
)

// RemoteError is a failure reported by a remote client.
type RemoteError struct {
	// Op is the remote operation, e.g. "get_collection".
	Op string
	// Resource is the addressed object, e.g. the collection name.
	Resource string
	// Kind is one of the sentinel errors above.
	Kind error
	// Err is the underlying client library error, if any.
	Err error
}

func (e *RemoteError) Error() string {
	msg := e.Kind.Error()
	if e.Resource != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Resource)
	}
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *RemoteError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IsNotFound checks if the error is a "collection does not exist" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCollectionNotFound)
}

// IsUnauthorized checks if the error is an authentication or authorization error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsConnectionError checks if the error means the service could not be reached in time.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrTimeout)
}
