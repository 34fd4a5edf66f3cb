package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidPreset       = errors.New("invalid preset")
	ErrInvalidRing         = errors.New("invalid ring bounds")
	ErrEmptyCombination    = errors.New("no combination supplied")
	ErrDigitOutOfRange     = errors.New("digit out of range")
	ErrNegativeRadius      = errors.New("range must be non-negative")
	ErrSearchSpaceTooLarge = errors.New("search space too large")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindInvalidPreset    ErrorKind = "invalid_preset"
	KindInvalidRing      ErrorKind = "invalid_ring"
	KindEmptyCombination ErrorKind = "empty_combination"
	KindDigitOutOfRange  ErrorKind = "digit_out_of_range"
	KindNegativeRadius   ErrorKind = "negative_radius"
	KindSearchSpace      ErrorKind = "search_space"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
