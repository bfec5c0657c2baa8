package qdrant

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/vectordb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TranslateError converts a Qdrant SDK / gRPC error into a *vectordb.RemoteError.
//
// The kind is derived, in order, from:
//   - context cancellation and deadlines
//   - the gRPC status code
//   - net.Error timeouts
//   - the error message (fallback for errors without a useful code)
//
// The original error is always kept as the cause. A nil error yields nil.
func TranslateError(op, resource string, err error) error {
	if err == nil {
		return nil
	}

	var remote *vectordb.RemoteError
	if errors.As(err, &remote) {
		return remote
	}

	return &vectordb.RemoteError{
		Op:       op,
		Resource: resource,
		Kind:     classify(err),
		Err:      err,
	}
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return vectordb.ErrTimeout
	}

	if st, ok := status.FromError(err); ok {
		if kind := translateStatusCode(st.Code()); kind != nil {
			return kind
		}
		return translateByErrorMessage(strings.ToLower(st.Message()))
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return vectordb.ErrTimeout
		}
		return vectordb.ErrUnavailable
	}

	return translateByErrorMessage(strings.ToLower(err.Error()))
}

// translateStatusCode maps gRPC status codes to remote failure kinds.
// It returns nil when the code alone is not conclusive.
func translateStatusCode(code codes.Code) error {
	switch code {
	case codes.NotFound:
		return vectordb.ErrCollectionNotFound
	case codes.Unauthenticated, codes.PermissionDenied:
		return vectordb.ErrUnauthorized
	case codes.Unavailable:
		return vectordb.ErrUnavailable
	case codes.DeadlineExceeded:
		return vectordb.ErrTimeout
	case codes.DataLoss:
		return vectordb.ErrMalformedResponse
	default:
		return nil
	}
}

// translateByErrorMessage translates errors based on error message patterns (fallback)
func translateByErrorMessage(msg string) error {
	switch {
	case strings.Contains(msg, "doesn't exist"),
		strings.Contains(msg, "does not exist"),
		strings.Contains(msg, "not found"):
		return vectordb.ErrCollectionNotFound

	case strings.Contains(msg, "unauthorized"),
		strings.Contains(msg, "unauthenticated"),
		strings.Contains(msg, "permission denied"),
		strings.Contains(msg, "forbidden"),
		strings.Contains(msg, "api key"):
		return vectordb.ErrUnauthorized

	case strings.Contains(msg, "deadline exceeded"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "timed out"):
		return vectordb.ErrTimeout

	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "unavailable"),
		strings.Contains(msg, "network is unreachable"):
		return vectordb.ErrUnavailable

	case strings.Contains(msg, "unmarshal"),
		strings.Contains(msg, "malformed"),
		strings.Contains(msg, "unexpected"),
		strings.Contains(msg, "invalid wire"):
		return vectordb.ErrMalformedResponse

	default:
		return vectordb.ErrUnknown
	}
}
