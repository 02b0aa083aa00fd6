package interp

import (
	"errors"
	"fmt"
)

// ErrOutOfDomain indicates evaluation outside an interpolant's sample range.
var ErrOutOfDomain = errors.New("interp: value outside interpolation range")

// DomainError reports the rejected value and the valid interval.
type DomainError struct {
	Name string
	X    float64
	Lo   float64
	Hi   float64
}

func (e *DomainError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%v: x=%g not in [%g, %g]", ErrOutOfDomain, e.X, e.Lo, e.Hi)
	}
	return fmt.Sprintf("%v: %s x=%g not in [%g, %g]", ErrOutOfDomain, e.Name, e.X, e.Lo, e.Hi)
}

func (e *DomainError) Unwrap() error { return ErrOutOfDomain }

// Above reports whether the rejected value lies past the upper bound.
func (e *DomainError) Above() bool { return e.X > e.Hi }
