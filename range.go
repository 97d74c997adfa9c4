// Package httprange parses and serializes the HTTP Range request header
// (RFC 9110, section 14.2).
//
// Parse turns a header value into a Range; Stringify turns a Range back into
// its canonical wire form:
//
//	r, err := httprange.Parse("bytes=0-100, 200-, -300")
//	s, err := httprange.Stringify(r) // "bytes=0-100, 200-, -300"
//
// Ranges are never interpreted against a representation: resolving suffix
// ranges, clipping, or coalescing is left to the caller.
package httprange

// Kind identifies which variant a RangeSpec holds.
type Kind int

const (
	// KindInvalid is the kind of the zero RangeSpec.
	KindInvalid Kind = iota
	KindInt
	KindSuffix
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int-range"
	case KindSuffix:
		return "suffix-range"
	case KindOther:
		return "other-range"
	}
	return "invalid"
}

// RangeSpec is a single entry of a range set: an int-range, a suffix-range
// or an other-range.
//
// Constructors do not validate their arguments. Invalid values are rejected
// when they are serialized.
type RangeSpec struct {
	kind Kind

	firstPos int64
	lastPos  int64
	hasLast  bool

	suffixLength int64

	token string
}

// IntRange returns an open int-range ("first-").
func IntRange(firstPos int64) RangeSpec {
	return RangeSpec{kind: KindInt, firstPos: firstPos}
}

// ClosedIntRange returns an int-range with both ends ("first-last").
// Both positions are inclusive.
func ClosedIntRange(firstPos int64, lastPos int64) RangeSpec {
	return RangeSpec{kind: KindInt, firstPos: firstPos, lastPos: lastPos, hasLast: true}
}

// SuffixRange returns a suffix-range ("-length").
func SuffixRange(suffixLength int64) RangeSpec {
	return RangeSpec{kind: KindSuffix, suffixLength: suffixLength}
}

// OtherRange returns an extension range carried verbatim.
func OtherRange(token string) RangeSpec {
	return RangeSpec{kind: KindOther, token: token}
}

// Kind returns the variant held by the spec.
func (s RangeSpec) Kind() Kind {
	return s.kind
}

// FirstPos returns the first position of an int-range.
func (s RangeSpec) FirstPos() int64 {
	return s.firstPos
}

// LastPos returns the last position of an int-range, and whether it is set.
func (s RangeSpec) LastPos() (int64, bool) {
	return s.lastPos, s.hasLast
}

// SuffixLength returns the length of a suffix-range.
func (s RangeSpec) SuffixLength() int64 {
	return s.suffixLength
}

// Token returns the raw text of an other-range.
func (s RangeSpec) Token() string {
	return s.token
}

// RangeSet is an ordered list of range specs.
type RangeSet []RangeSpec

// Range represents the value of a Range header field.
type Range struct {
	// Unit is the range unit, e.g. "bytes".
	Unit string

	// Set holds the requested ranges, in request order.
	Set RangeSet
}

// RangesSpecifier is a ranges-specifier split into its unit and its
// unparsed range set.
type RangesSpecifier struct {
	Unit string
	Set  string
}

// MarshalText implements encoding.TextMarshaler.
func (r Range) MarshalText() ([]byte, error) {
	s, err := Stringify(r)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
