package qdrantfdw

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Aleph-Alpha/qdrant-fdw/v1/fdw"
	"github.com/Aleph-Alpha/qdrant-fdw/v1/vectordb"
	"github.com/stretchr/testify/assert"
)

func TestError_MessageIsTransparent(t *testing.T) {
	cause := &fdw.OptionsError{Name: "endpoint"}
	err := optionsError(cause)

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, fdw.ErrOptionNotFound)
	assert.Equal(t, "options error", (&Error{Kind: KindOptions}).Error())
}

func TestError_KindHelpers(t *testing.T) {
	remote := remoteError(&vectordb.RemoteError{Kind: vectordb.ErrUnavailable})
	wrapped := fmt.Errorf("scan: %w", remote)

	assert.True(t, IsRemoteError(wrapped))
	assert.False(t, IsOptionsError(wrapped))
	assert.False(t, IsStateError(wrapped))
	assert.False(t, IsRemoteError(errors.New("plain")))

	state := stateError("iterate scan", ErrScanNotStarted)
	assert.True(t, IsStateError(state))
	assert.Equal(t, "iterate scan: scan has not been started", state.Error())
}

func TestError_ReportFromWrappedError(t *testing.T) {
	err := fmt.Errorf("partition rows: %w", remoteError(&vectordb.RemoteError{
		Op:       "get_collection",
		Resource: "missing",
		Kind:     vectordb.ErrCollectionNotFound,
	}))

	report := fdw.ToReport(err)
	assert.Equal(t, fdw.CodeTableNotFound, report.Code)
	assert.Equal(t, "get_collection: collection not found 'missing'", report.Message)
}

func TestError_ReportOptionsWithoutOptionsError(t *testing.T) {
	report := optionsError(errors.New("bad options")).Report()
	assert.Equal(t, fdw.CodeOptionNameNotFound, report.Code)
	assert.Equal(t, "bad options", report.Message)
}

func TestScanStatus(t *testing.T) {
	assert.Equal(t, "ok", scanStatus(nil))
	assert.Equal(t, "options_error", scanStatus(optionsError(errors.New("x"))))
	assert.Equal(t, "remote_error", scanStatus(remoteError(errors.New("x"))))
	assert.Equal(t, "state_error", scanStatus(stateError("begin scan", ErrScanInProgress)))
}

func TestMeta(t *testing.T) {
	meta := Meta()
	assert.Equal(t, "QdrantFdw", meta.Name)
	assert.Equal(t, "0.1.0", meta.Version)
	assert.NotEmpty(t, meta.Author)
	assert.NotEmpty(t, meta.Website)
}
