package spectrum

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates energy and intensity columns of different length.
	ErrLengthMismatch = errors.New("spectrum: energy and intensity length mismatch")
	// ErrTooShort indicates fewer than two samples, which cannot span an interval.
	ErrTooShort = errors.New("spectrum: need at least two samples")
	// ErrNotMonotonic indicates an energy axis that is not strictly monotonic.
	ErrNotMonotonic = errors.New("spectrum: energy axis not strictly monotonic")
	// ErrNonFinite indicates a NaN or infinite sample.
	ErrNonFinite = errors.New("spectrum: non-finite sample")
)

// LengthError reports the two column lengths that disagree.
type LengthError struct {
	Energy    int
	Intensity int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: %d energies, %d intensities", ErrLengthMismatch, e.Energy, e.Intensity)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// OrderError reports the first sample that breaks monotonicity.
type OrderError struct {
	Index int
	Prev  float64
	Value float64
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%v: energy[%d]=%g after energy[%d]=%g", ErrNotMonotonic, e.Index, e.Value, e.Index-1, e.Prev)
}

func (e *OrderError) Unwrap() error { return ErrNotMonotonic }

// NonFiniteError reports the index of a NaN or infinite sample.
type NonFiniteError struct {
	Index int
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("%v at index %d", ErrNonFinite, e.Index)
}

func (e *NonFiniteError) Unwrap() error { return ErrNonFinite }
