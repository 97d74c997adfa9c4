package httprange

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

type specSyntax int

const (
	intSyntax specSyntax = iota + 1
	suffixSyntax
	otherSyntax
)

// rangeSpecSyntax is a range-spec recognized by matchRangeSpec. Digit
// strings are captured but not converted.
type rangeSpecSyntax struct {
	syntax specSyntax

	firstPos string
	lastPos  string

	suffixLength string

	other string
}

// matchRangesSpecifier splits "<range-unit>=<range-set>" on the first '='.
// The input is not trimmed, and the range set must open with a range-spec:
// whitespace or a comma right after '=' does not match.
func matchRangesSpecifier(input string) (unit string, set string, ok bool) {
	unit, set, found := strings.Cut(input, "=")
	if !found || !isToken(unit) || set == "" || !isOtherRangeText(set[:1]) {
		return "", "", false
	}
	return unit, set, true
}

// matchRangeSpec classifies a single, already trimmed, range-spec.
func matchRangeSpec(token string) (rangeSpecSyntax, bool) {
	if first, rest, ok := cutDigits(token); ok && strings.HasPrefix(rest, "-") {
		last := rest[1:]
		if last == "" || isDigits(last) {
			return rangeSpecSyntax{syntax: intSyntax, firstPos: first, lastPos: last}, true
		}
	}

	if strings.HasPrefix(token, "-") && isDigits(token[1:]) {
		return rangeSpecSyntax{syntax: suffixSyntax, suffixLength: token[1:]}, true
	}

	if isOtherRangeText(token) {
		return rangeSpecSyntax{syntax: otherSyntax, other: token}, true
	}

	return rangeSpecSyntax{}, false
}

// cutDigits splits s after its leading run of decimal digits. ok is false
// when s does not start with a digit.
func cutDigits(s string) (digits string, rest string, ok bool) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:], i > 0
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isToken reports whether s is a non-empty RFC 9110 token.
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !httpguts.IsTokenRune(r) {
			return false
		}
	}
	return true
}

// isOtherRangeText reports whether s is 1*( VCHAR except "," ).
func isOtherRangeText(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x21 || c > 0x7e || c == ',' {
			return false
		}
	}
	return true
}
