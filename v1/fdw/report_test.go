package fdw

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToReport(t *testing.T) {
	assert.Equal(t, ErrorReport{}, ToReport(nil))

	wrapped := fmt.Errorf("begin scan: %w", &OptionsError{Name: "collection_name"})
	report := ToReport(wrapped)
	assert.Equal(t, CodeOptionNameNotFound, report.Code)
	assert.Equal(t, "required option `collection_name` is not specified", report.Message)

	plain := ToReport(errors.New("boom"))
	assert.Equal(t, ErrorReport{Code: CodeFdwError, Message: "boom"}, plain)

	direct := ErrorReport{Code: CodeTableNotFound, Message: "gone"}
	assert.Equal(t, direct, ToReport(fmt.Errorf("x: %w", direct)))
	assert.Equal(t, "HV00R: gone", direct.Error())
}

func TestRow(t *testing.T) {
	var r Row
	r.Push("id", int64(1))
	r.Push("title", "hello")

	assert.Equal(t, 2, r.Len())
	v, ok := r.Get("title")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	_, ok = r.Get("missing")
	assert.False(t, ok)

	r.Clear()
	assert.Equal(t, 0, r.Len())
}

func TestCatalogKindString(t *testing.T) {
	assert.Equal(t, "server", CatalogServer.String())
	assert.Equal(t, "table", CatalogTable.String())
	assert.Equal(t, "unknown", CatalogUnknown.String())
}
