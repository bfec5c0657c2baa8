package fdw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireOption(t *testing.T) {
	opts := Options{"endpoint": "https://x.example", "credential": "", "blank": "   "}

	v, err := RequireOption("endpoint", opts)
	require.NoError(t, err)
	assert.Equal(t, "https://x.example", v)

	for _, name := range []string{"credential", "blank", "collection_name"} {
		_, err := RequireOption(name, opts)
		require.Error(t, err, name)
		assert.True(t, IsOptionsError(err))

		var optErr *OptionsError
		require.ErrorAs(t, err, &optErr)
		assert.Equal(t, name, optErr.Name)
		assert.Equal(t, "required option `"+name+"` is not specified", err.Error())
	}

	_, err = RequireOption("endpoint", nil)
	assert.ErrorIs(t, err, ErrOptionNotFound)
}

func TestOptionOrDefault(t *testing.T) {
	opts := Options{"timeout": "10s", "empty": ""}
	assert.Equal(t, "10s", OptionOrDefault("timeout", opts, "5s"))
	assert.Equal(t, "5s", OptionOrDefault("empty", opts, "5s"))
	assert.Equal(t, "5s", OptionOrDefault("missing", opts, "5s"))
}

func TestCheckOptionsContain(t *testing.T) {
	str := func(s string) *string { return &s }

	list := []*string{nil, str("endpoint=https://x.example"), str("credential="), str("endpointx=y")}

	assert.NoError(t, CheckOptionsContain(list, "endpoint"))
	assert.Error(t, CheckOptionsContain(list, "credential"), "empty value counts as missing")
	assert.Error(t, CheckOptionsContain(list, "collection_name"))
	assert.Error(t, CheckOptionsContain(nil, "endpoint"))
	assert.Error(t, CheckOptionsContain([]*string{str("endpointx=y")}, "endpoint"), "prefix must match the whole key")
}

func TestOptionList_RoundTripsThroughCheck(t *testing.T) {
	list := OptionList(Options{"collection_name": "docs"})
	require.Len(t, list, 1)
	assert.Equal(t, "collection_name=docs", *list[0])
	assert.NoError(t, CheckOptionsContain(list, "collection_name"))
}

func TestOptionsError_Report(t *testing.T) {
	missing := (&OptionsError{Name: "endpoint"}).Report()
	assert.Equal(t, CodeOptionNameNotFound, missing.Code)
	assert.Contains(t, missing.Hint, "endpoint")

	invalid := &OptionsError{Name: "timeout", Reason: "not a duration"}
	assert.ErrorIs(t, invalid, ErrInvalidOption)
	assert.True(t, IsOptionsError(invalid))
	assert.Equal(t, CodeInvalidOptionValue, invalid.Report().Code)
	assert.Equal(t, "invalid value for option `timeout`: not a duration", invalid.Error())
}
