package httprange

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrSyntax   = errors.New("range: invalid syntax")
	ErrSemantic = errors.New("range: invalid semantics")
	ErrInvalid  = errors.New("range: invalid value")
)

// Reason describes why decoding failed.
type Reason string

const (
	InvalidToken            Reason = "unexpected token"
	InvalidIntRangeSemantic Reason = "<last-pos> is less than <first-pos>"
	Overflow                Reason = "integer out of range"
	Unexpected              Reason = "unreachable"
)

// SyntaxError is returned when the input does not match the Range grammar.
type SyntaxError struct {
	Input  string
	Reason Reason
	Cause  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("range: %s: %q", e.Reason, e.Input)
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// SemanticError is returned for a well-formed int-range whose last-pos is
// less than its first-pos.
type SemanticError struct {
	Input    string
	FirstPos int64
	LastPos  int64
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("range: %s: %q", InvalidIntRangeSemantic, e.Input)
}

func (e *SemanticError) Is(target error) bool { return target == ErrSemantic }

// ValidationError is returned when a structured value cannot be serialized.
type ValidationError struct {
	// Field names the offending part, e.g. "<range-unit>" or "<int-range>".
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("range: %s is invalid: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("range: %s %q is invalid: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

func syntaxError(input string, reason Reason) error {
	return &SyntaxError{Input: input, Reason: reason}
}
