package httprange

import (
	"net/http"
)

// HeaderName is the canonical name of the Range header field.
const HeaderName = "Range"

// FromHeader parses the Range field of h. ok is false when the field is
// absent, in which case err is nil.
func FromHeader(h http.Header) (r Range, ok bool, err error) {
	values := h.Values(HeaderName)
	if len(values) == 0 {
		return Range{}, false, nil
	}

	r, err = Parse(values[0])
	if err != nil {
		return Range{}, true, err
	}
	return r, true, nil
}

// SetHeader sets the Range field of h to the canonical form of r. h is left
// untouched if r is invalid.
func SetHeader(h http.Header, r Range) error {
	value, err := Stringify(r)
	if err != nil {
		return err
	}
	h.Set(HeaderName, value)
	return nil
}
