package httprange

import (
	"strconv"
	"strings"
)

// Stringify serializes r into its canonical wire form,
// "<unit>=<spec>[, <spec>]*". Nothing is returned unless every part of r is
// valid.
func Stringify(r Range) (string, error) {
	if err := AssertRangeUnitFormat(r.Unit); err != nil {
		return "", err
	}

	set, err := StringifyRangeSet(r.Set)
	if err != nil {
		return "", err
	}

	return r.Unit + "=" + set, nil
}

// StringifyRangeSet serializes a non-empty range set, joining specs with
// ", ".
func StringifyRangeSet(set RangeSet) (string, error) {
	if len(set) == 0 {
		return "", &ValidationError{Field: "<range-set>", Reason: "empty"}
	}

	parts := make([]string, 0, len(set))
	for _, spec := range set {
		s, err := StringifyRangeSpec(spec)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}

	return strings.Join(parts, ", "), nil
}

// StringifyRangeSpec serializes a single range spec.
func StringifyRangeSpec(spec RangeSpec) (string, error) {
	switch spec.kind {
	case KindInt:
		return StringifyIntRange(spec)
	case KindSuffix:
		return StringifySuffixRange(spec)
	case KindOther:
		return StringifyOtherRange(spec)
	}
	return "", &ValidationError{Field: "<range-spec>", Reason: "unknown kind"}
}

// StringifyIntRange serializes an int-range as "first-" or "first-last".
func StringifyIntRange(spec RangeSpec) (string, error) {
	if !IsValidIntRange(spec) {
		return "", &ValidationError{Field: "<int-range>", Value: describe(spec), Reason: intRangeReason(spec)}
	}

	first := strconv.FormatInt(spec.firstPos, 10)
	if !spec.hasLast {
		return first + "-", nil
	}
	return first + "-" + strconv.FormatInt(spec.lastPos, 10), nil
}

// StringifySuffixRange serializes a suffix-range as "-length".
func StringifySuffixRange(spec RangeSpec) (string, error) {
	if !IsValidSuffixRange(spec) {
		return "", &ValidationError{Field: "<suffix-range>", Value: describe(spec), Reason: "length must be a non-negative integer"}
	}
	return "-" + strconv.FormatInt(spec.suffixLength, 10), nil
}

// StringifyOtherRange returns the token of an other-range.
func StringifyOtherRange(spec RangeSpec) (string, error) {
	if !IsValidOtherRange(spec) {
		return "", &ValidationError{Field: "<other-range>", Value: spec.token, Reason: "must be visible ASCII without ','"}
	}
	return spec.token, nil
}

func intRangeReason(spec RangeSpec) string {
	switch {
	case spec.kind != KindInt:
		return "not an int-range"
	case spec.firstPos < 0:
		return "first-pos must be a non-negative integer"
	case spec.lastPos < 0:
		return "last-pos must be a non-negative integer"
	}
	return string(InvalidIntRangeSemantic)
}

// describe renders the numeric fields of spec for error messages, without
// validation.
func describe(spec RangeSpec) string {
	switch spec.kind {
	case KindInt:
		s := strconv.FormatInt(spec.firstPos, 10) + "-"
		if spec.hasLast {
			s += strconv.FormatInt(spec.lastPos, 10)
		}
		return s
	case KindSuffix:
		return "-" + strconv.FormatInt(spec.suffixLength, 10)
	}
	return spec.token
}
