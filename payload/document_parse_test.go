package payload_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menmos/httprange-go"
	"github.com/menmos/httprange-go/payload"
)

func Test_ParseDocument(t *testing.T) {

	type testCase struct {
		name     string
		src      map[string]interface{}
		expected httprange.Range
		wantErr  bool
	}

	cases := []testCase{
		{
			"all kinds",
			map[string]interface{}{
				"rangeUnit": "bytes",
				"rangeSet": []interface{}{
					map[string]interface{}{"firstPos": float64(0), "lastPos": float64(100)},
					map[string]interface{}{"firstPos": float64(200)},
					map[string]interface{}{"suffixLength": float64(300)},
					"test",
				},
			},
			httprange.Range{Unit: "bytes", Set: httprange.RangeSet{
				httprange.ClosedIntRange(0, 100),
				httprange.IntRange(200),
				httprange.SuffixRange(300),
				httprange.OtherRange("test"),
			}},
			false,
		},
		{
			"null lastPos",
			map[string]interface{}{
				"rangeUnit": "bytes",
				"rangeSet":  []interface{}{map[string]interface{}{"firstPos": 5, "lastPos": nil}},
			},
			httprange.Range{Unit: "bytes", Set: httprange.RangeSet{httprange.IntRange(5)}},
			false,
		},
		{"missing unit", map[string]interface{}{"rangeSet": []interface{}{"a"}}, httprange.Range{}, true},
		{"missing set", map[string]interface{}{"rangeUnit": "bytes"}, httprange.Range{}, true},
		{"empty set", map[string]interface{}{"rangeUnit": "bytes", "rangeSet": []interface{}{}}, httprange.Range{}, true},
		{"invalid unit", map[string]interface{}{"rangeUnit": "by tes", "rangeSet": []interface{}{"a"}}, httprange.Range{}, true},
		{
			"ambiguous spec",
			map[string]interface{}{
				"rangeUnit": "bytes",
				"rangeSet":  []interface{}{map[string]interface{}{"firstPos": 0, "lastPos": 0, "suffixLength": 0}},
			},
			httprange.Range{},
			true,
		},
		{
			"fractional position",
			map[string]interface{}{
				"rangeUnit": "bytes",
				"rangeSet":  []interface{}{map[string]interface{}{"firstPos": 1.5}},
			},
			httprange.Range{},
			true,
		},
		{
			"NaN suffix",
			map[string]interface{}{
				"rangeUnit": "bytes",
				"rangeSet":  []interface{}{map[string]interface{}{"suffixLength": math.NaN()}},
			},
			httprange.Range{},
			true,
		},
		{
			"infinite suffix",
			map[string]interface{}{
				"rangeUnit": "bytes",
				"rangeSet":  []interface{}{map[string]interface{}{"suffixLength": math.Inf(1)}},
			},
			httprange.Range{},
			true,
		},
		{
			"negative suffix",
			map[string]interface{}{
				"rangeUnit": "bytes",
				"rangeSet":  []interface{}{map[string]interface{}{"suffixLength": -1}},
			},
			httprange.Range{},
			true,
		},
		{
			"last before first",
			map[string]interface{}{
				"rangeUnit": "bytes",
				"rangeSet":  []interface{}{map[string]interface{}{"firstPos": 2, "lastPos": 1}},
			},
			httprange.Range{},
			true,
		},
		{
			"string position",
			map[string]interface{}{
				"rangeUnit": "bytes",
				"rangeSet":  []interface{}{map[string]interface{}{"firstPos": "0"}},
			},
			httprange.Range{},
			true,
		},
		{
			"other with comma",
			map[string]interface{}{"rangeUnit": "bytes", "rangeSet": []interface{}{"a,b"}},
			httprange.Range{},
			true,
		},
		{
			"unknown node",
			map[string]interface{}{"rangeUnit": "bytes", "rangeSet": []interface{}{map[string]interface{}{"lastPos": 1}}},
			httprange.Range{},
			true,
		},
	}

	for _, tCase := range cases {
		t.Run(tCase.name, func(t *testing.T) {
			actual, err := payload.ParseDocument(tCase.src)
			if tCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tCase.expected, actual)
		})
	}
}

func Test_ParseDocument_ValidationError(t *testing.T) {
	_, err := payload.ParseDocument(map[string]interface{}{
		"rangeUnit": "bytes",
		"rangeSet":  []interface{}{""},
	})
	assert.ErrorIs(t, err, httprange.ErrInvalid)
}

func Test_DecodeDocument(t *testing.T) {
	r, err := payload.DecodeDocument(strings.NewReader(`{"rangeUnit":"bytes","rangeSet":[{"firstPos":0,"lastPos":9223372036854775807},{"suffixLength":1}]}`))
	require.NoError(t, err)
	assert.Equal(t, httprange.Range{Unit: "bytes", Set: httprange.RangeSet{
		httprange.ClosedIntRange(0, math.MaxInt64),
		httprange.SuffixRange(1),
	}}, r)

	_, err = payload.DecodeDocument(strings.NewReader(`{"rangeUnit":"bytes","rangeSet":[{"suffixLength":1e400}]}`))
	assert.Error(t, err)

	_, err = payload.DecodeDocument(strings.NewReader(`{"rangeUnit":`))
	assert.Error(t, err)
}

func Test_NewDocument_JSON(t *testing.T) {
	r, err := httprange.Parse("bytes=0-100, 200-, -300, test")
	require.NoError(t, err)

	data, err := json.Marshal(payload.NewDocument(r))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"rangeUnit": "bytes",
		"rangeSet": [
			{"firstPos": 0, "lastPos": 100},
			{"firstPos": 200},
			{"suffixLength": 300},
			"test"
		]
	}`, string(data))

	back, err := payload.DecodeDocument(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, r, back)
}
