package qdrantfdw

import (
	"errors"
	"fmt"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/fdw"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/vectordb"
)

// ErrorKind classifies every failure the wrapper reports to the host.
type ErrorKind int

const (
	// KindOptions is a missing, empty or unusable option.
	KindOptions ErrorKind = iota + 1
	// KindRemote is a failure reported by the remote client.
	KindRemote
	// KindState is a lifecycle call made out of order by the host.
	KindState
)

func (k ErrorKind) String() string {
	switch k {
	case KindOptions:
		return "options"
	case KindRemote:
		return "remote"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// Lifecycle misuse errors, always wrapped in an *Error of kind KindState.
var (
	// ErrScanNotStarted is returned when IterScan is called without an active scan.
	ErrScanNotStarted = errors.New("scan has not been started")

	// ErrScanInProgress is returned when BeginScan is called while a scan is active.
	ErrScanInProgress = errors.New("scan is already in progress")

	// ErrWrapperClosed is returned when a closed wrapper is used.
	ErrWrapperClosed = errors.New("wrapper is closed")
)

// Error is the single error type returned by the wrapper.
// The message is the message of the wrapped error, unchanged.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Report converts the error into the host's error report.
func (e *Error) Report() fdw.ErrorReport {
	switch e.Kind {
	case KindOptions:
		var optErr *fdw.OptionsError
		if errors.As(e.Err, &optErr) {
			return optErr.Report()
		}
		return fdw.ErrorReport{Code: fdw.CodeOptionNameNotFound, Message: e.Error()}

	case KindRemote:
		report := fdw.ErrorReport{Code: fdw.CodeFdwError, Message: e.Error()}
		switch {
		case vectordb.IsNotFound(e.Err):
			report.Code = fdw.CodeTableNotFound
			report.Hint = fmt.Sprintf("check the `%s` table option", OptionCollectionName)
		case vectordb.IsConnectionError(e.Err):
			report.Code = fdw.CodeUnableToEstablishConnection
			report.Hint = fmt.Sprintf("check the `%s` server option", OptionEndpoint)
		case errors.Is(e.Err, vectordb.ErrInvalidEndpoint):
			report.Hint = fmt.Sprintf("check the `%s` server option", OptionEndpoint)
		case vectordb.IsUnauthorized(e.Err):
			report.Hint = fmt.Sprintf("check the `%s` server option", OptionCredential)
		}
		return report

	default:
		return fdw.ErrorReport{Code: fdw.CodeFdwError, Message: e.Error()}
	}
}

// IsOptionsError checks whether err is a configuration error.
func IsOptionsError(err error) bool {
	return kindOf(err) == KindOptions
}

// IsRemoteError checks whether err is a remote failure.
func IsRemoteError(err error) bool {
	return kindOf(err) == KindRemote
}

// IsStateError checks whether err is a lifecycle misuse.
func IsStateError(err error) bool {
	return kindOf(err) == KindState
}

func kindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func optionsError(err error) *Error {
	return &Error{Kind: KindOptions, Err: err}
}

func remoteError(err error) *Error {
	return &Error{Kind: KindRemote, Err: err}
}

func stateError(op string, err error) *Error {
	return &Error{Kind: KindState, Err: fmt.Errorf("%s: %w", op, err)}
}

// scanStatus is the scans_total label for the outcome of a BeginScan.
func scanStatus(err error) string {
	if err == nil {
		return "ok"
	}
	return kindOf(err).String() + "_error"
}
