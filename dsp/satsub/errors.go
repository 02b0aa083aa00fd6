package satsub

import (
	"errors"
	"fmt"
)

// ErrInvalidParams indicates unusable subtraction parameters.
var ErrInvalidParams = errors.New("satsub: invalid parameters")

// GridError reports a grid bound that falls outside an interpolant's domain.
// It wraps the underlying *interp.DomainError.
type GridError struct {
	Curve string
	Bound string // "upper", "lower" or "interior"
	Value float64
	Lo    float64
	Hi    float64
	Err   error
}

func (e *GridError) Error() string {
	return fmt.Sprintf("satsub: %s grid bound %g outside %s domain [%g, %g]: %v",
		e.Bound, e.Value, e.Curve, e.Lo, e.Hi, e.Err)
}

func (e *GridError) Unwrap() error { return e.Err }
