package httprange_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menmos/httprange-go"
)

func Test_FromHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/blob/abc", nil)

	_, ok, err := httprange.FromHeader(req.Header)
	require.NoError(t, err)
	assert.False(t, ok)

	req.Header.Set("range", "bytes=10-19,  -5")
	r, ok, err := httprange.FromHeader(req.Header)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, httprange.Range{Unit: "bytes", Set: httprange.RangeSet{
		httprange.ClosedIntRange(10, 19),
		httprange.SuffixRange(5),
	}}, r)

	req.Header.Set(httprange.HeaderName, "bytes=19-10")
	_, ok, err = httprange.FromHeader(req.Header)
	assert.True(t, ok)
	assert.ErrorIs(t, err, httprange.ErrSemantic)
}

func Test_SetHeader(t *testing.T) {
	h := http.Header{}

	err := httprange.SetHeader(h, httprange.Range{Unit: "bytes", Set: httprange.RangeSet{
		httprange.ClosedIntRange(0, 1023),
		httprange.IntRange(4096),
	}})
	require.NoError(t, err)
	assert.Equal(t, "bytes=0-1023, 4096-", h.Get("Range"))

	err = httprange.SetHeader(h, httprange.Range{Unit: "bytes", Set: httprange.RangeSet{httprange.SuffixRange(-1)}})
	assert.ErrorIs(t, err, httprange.ErrInvalid)
	assert.Equal(t, "bytes=0-1023, 4096-", h.Get("Range"))
}
