package payload

import (
	"github.com/menmos/httprange-go"
)

// IntRangeNode is the JSON form of an int-range.
type IntRangeNode struct {
	FirstPos int64  `json:"firstPos"`
	LastPos  *int64 `json:"lastPos,omitempty"`
}

// SuffixRangeNode is the JSON form of a suffix-range.
type SuffixRangeNode struct {
	SuffixLength int64 `json:"suffixLength"`
}

// Document is the JSON form of a Range header value.
// Other-ranges are stored in RangeSet as plain strings.
type Document struct {
	RangeUnit string        `json:"rangeUnit"`
	RangeSet  []interface{} `json:"rangeSet"`
}

// NewDocument returns the JSON form of r. r is not validated.
func NewDocument(r httprange.Range) Document {
	set := make([]interface{}, 0, len(r.Set))
	for _, spec := range r.Set {
		set = append(set, newNode(spec))
	}
	return Document{RangeUnit: r.Unit, RangeSet: set}
}

func newNode(spec httprange.RangeSpec) interface{} {
	switch spec.Kind() {
	case httprange.KindInt:
		node := IntRangeNode{FirstPos: spec.FirstPos()}
		if last, ok := spec.LastPos(); ok {
			node.LastPos = &last
		}
		return node
	case httprange.KindSuffix:
		return SuffixRangeNode{SuffixLength: spec.SuffixLength()}
	}
	return spec.Token()
}
