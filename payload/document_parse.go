package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/menmos/httprange-go"
)

// ParseDocument loads a Range from decoded JSON, as produced by
// json.Unmarshal into a map[string]interface{}. The result is validated.
func ParseDocument(rawData map[string]interface{}) (httprange.Range, error) {
	unit, ok := rawData["rangeUnit"].(string)
	if !ok {
		return httprange.Range{}, errors.New("rangeUnit should be a string")
	}

	items, ok := rawData["rangeSet"].([]interface{})
	if !ok {
		return httprange.Range{}, errors.New("rangeSet should be an array")
	}

	set := make(httprange.RangeSet, 0, len(items))
	for i, item := range items {
		spec, err := loadRangeSpecNode(item)
		if err != nil {
			return httprange.Range{}, fmt.Errorf("rangeSet[%d]: %w", i, err)
		}
		set = append(set, spec)
	}

	r := httprange.Range{Unit: unit, Set: set}
	if _, err := httprange.Stringify(r); err != nil {
		return httprange.Range{}, err
	}
	return r, nil
}

// DecodeDocument reads a single JSON document from reader.
func DecodeDocument(reader io.Reader) (httprange.Range, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	var rawData map[string]interface{}
	if err := decoder.Decode(&rawData); err != nil {
		return httprange.Range{}, fmt.Errorf("failed to decode range document: %w", err)
	}

	return ParseDocument(rawData)
}

func loadRangeSpecNode(node interface{}) (httprange.RangeSpec, error) {
	if token, ok := node.(string); ok {
		return httprange.OtherRange(token), nil
	}

	data, ok := node.(map[string]interface{})
	if !ok {
		return httprange.RangeSpec{}, errors.New("range spec should be a string or an object")
	}

	firstPos, hasFirst := data["firstPos"]
	suffixLength, hasSuffix := data["suffixLength"]

	if hasFirst && hasSuffix {
		return httprange.RangeSpec{}, errors.New("range spec has both firstPos and suffixLength")
	} else if hasFirst {
		return loadIntRangeNode(firstPos, data["lastPos"])
	} else if hasSuffix {
		length, err := loadInteger(suffixLength)
		if err != nil {
			return httprange.RangeSpec{}, fmt.Errorf("suffixLength: %w", err)
		}
		return httprange.SuffixRange(length), nil
	}

	return httprange.RangeSpec{}, errors.New("unknown range spec")
}

func loadIntRangeNode(firstPos interface{}, lastPos interface{}) (httprange.RangeSpec, error) {
	first, err := loadInteger(firstPos)
	if err != nil {
		return httprange.RangeSpec{}, fmt.Errorf("firstPos: %w", err)
	}

	if lastPos == nil {
		return httprange.IntRange(first), nil
	}

	last, err := loadInteger(lastPos)
	if err != nil {
		return httprange.RangeSpec{}, fmt.Errorf("lastPos: %w", err)
	}
	return httprange.ClosedIntRange(first, last), nil
}

// loadInteger accepts the numeric types encoding/json may produce and
// rejects anything that is not an exact int64.
func loadInteger(value interface{}) (int64, error) {
	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s is not an integer", v)
		}
		return n, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fmt.Errorf("%v is out of range", v)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	}
	return 0, errors.New("value should be a number")
}
