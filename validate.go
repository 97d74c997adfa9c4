package httprange

// IsIntRange reports whether spec holds an int-range.
func IsIntRange(spec RangeSpec) bool {
	return spec.kind == KindInt
}

// IsSuffixRange reports whether spec holds a suffix-range.
func IsSuffixRange(spec RangeSpec) bool {
	return spec.kind == KindSuffix
}

// IsOtherRange reports whether spec holds an other-range.
func IsOtherRange(spec RangeSpec) bool {
	return spec.kind == KindOther
}

// IsValidIntRange reports whether spec is an int-range with non-negative
// positions and, when last-pos is set, last-pos >= first-pos.
func IsValidIntRange(spec RangeSpec) bool {
	if !IsIntRange(spec) || spec.firstPos < 0 {
		return false
	}
	if !spec.hasLast {
		return true
	}
	return spec.lastPos >= 0 && spec.lastPos >= spec.firstPos
}

// IsValidSuffixRange reports whether spec is a suffix-range with a
// non-negative length.
func IsValidSuffixRange(spec RangeSpec) bool {
	return IsSuffixRange(spec) && spec.suffixLength >= 0
}

// IsValidOtherRange reports whether spec is an other-range made of one or
// more visible ASCII characters other than ','.
func IsValidOtherRange(spec RangeSpec) bool {
	return IsOtherRange(spec) && isOtherRangeText(spec.token)
}

// IsRangeUnitFormat reports whether s is a valid <range-unit>.
func IsRangeUnitFormat(s string) bool {
	return isToken(s)
}

// AssertRangeUnitFormat returns a *ValidationError if s is not a valid
// <range-unit>.
func AssertRangeUnitFormat(s string) error {
	if !IsRangeUnitFormat(s) {
		return &ValidationError{Field: "<range-unit>", Value: s, Reason: "not a token"}
	}
	return nil
}
