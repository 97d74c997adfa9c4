package httprange

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse parses the value of a Range header field.
//
// Surrounding whitespace is ignored, as are empty elements of the range set
// ("bytes=0-1,,2-3"). A *SyntaxError is returned for malformed input and a
// *SemanticError for an int-range whose last-pos precedes its first-pos.
func Parse(input string) (Range, error) {
	input = strings.TrimSpace(input)

	specifier, err := ParseRangesSpecifier(input)
	if err != nil {
		return Range{}, err
	}

	set, err := ParseRangeSet(specifier.Set)
	if err != nil {
		return Range{}, err
	}

	return Range{Unit: specifier.Unit, Set: set}, nil
}

// ParseRangesSpecifier splits input into its range unit and its raw range
// set. The input is matched as is, without trimming.
func ParseRangesSpecifier(input string) (RangesSpecifier, error) {
	unit, set, ok := matchRangesSpecifier(input)
	if !ok {
		return RangesSpecifier{}, syntaxError(input, InvalidToken)
	}
	return RangesSpecifier{Unit: unit, Set: set}, nil
}

// ParseRangeSet parses a comma-separated list of range specs.
func ParseRangeSet(input string) (RangeSet, error) {
	var set RangeSet
	for _, segment := range strings.Split(input, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		spec, err := ParseRangeSpec(segment)
		if err != nil {
			return nil, err
		}
		set = append(set, spec)
	}

	if len(set) == 0 {
		return nil, syntaxError(input, InvalidToken)
	}

	return set, nil
}

// ParseRangeSpec parses a single range spec.
func ParseRangeSpec(token string) (RangeSpec, error) {
	syntax, ok := matchRangeSpec(token)
	if !ok {
		return RangeSpec{}, syntaxError(token, InvalidToken)
	}

	switch syntax.syntax {
	case intSyntax:
		firstPos, err := parsePosition(token, syntax.firstPos)
		if err != nil {
			return RangeSpec{}, err
		}
		if syntax.lastPos == "" {
			return IntRange(firstPos), nil
		}

		lastPos, err := parsePosition(token, syntax.lastPos)
		if err != nil {
			return RangeSpec{}, err
		}
		if lastPos < firstPos {
			return RangeSpec{}, &SemanticError{Input: token, FirstPos: firstPos, LastPos: lastPos}
		}
		return ClosedIntRange(firstPos, lastPos), nil

	case suffixSyntax:
		suffixLength, err := parsePosition(token, syntax.suffixLength)
		if err != nil {
			return RangeSpec{}, err
		}
		return SuffixRange(suffixLength), nil

	case otherSyntax:
		return OtherRange(syntax.other), nil
	}

	return RangeSpec{}, syntaxError(token, Unexpected)
}

// IsRangeFormat reports whether input is a valid Range header value.
// Semantically invalid values such as "bytes=5-1" are not.
func IsRangeFormat(input string) bool {
	_, err := Parse(input)
	return err == nil
}

// parsePosition converts a string of decimal digits. Values that do not fit
// in an int64 are rejected rather than clamped.
func parsePosition(token string, digits string) (int64, error) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, &SyntaxError{
			Input:  token,
			Reason: Overflow,
			Cause:  errors.Wrapf(err, "position %s", digits),
		}
	}
	return n, nil
}
