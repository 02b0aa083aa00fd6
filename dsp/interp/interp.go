package interp

import (
	"fmt"
	"slices"

	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
	vecmath "github.com/cwbudde/algo-vecmath"
	gonuminterp "gonum.org/v1/gonum/interp"
)

// Linear is an immutable piecewise-linear interpolant.
type Linear struct {
	name string
	xs   []float64
	fit  gonuminterp.PiecewiseLinear
}

// NewLinear builds an interpolant through the points (x[i], y[i]).
// x must be strictly monotonic in either direction and hold at least two
// finite values; violations are reported with the errors of package
// spectrum.
func NewLinear(x, y []float64) (*Linear, error) {
	return NewShiftedLinear(x, y, 0, 1)
}

// NewShiftedLinear builds an interpolant through (x[i]-shift, y[i]*scale).
func NewShiftedLinear(x, y []float64, shift, scale float64) (*Linear, error) {
	s := spectrum.Spectrum{Energy: x, Intensity: y}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("interp: %w", err)
	}

	xs := make([]float64, len(x))
	for i, v := range x {
		xs[i] = v - shift
	}

	ys := make([]float64, len(y))
	vecmath.ScaleBlock(ys, y, scale)

	if s.Direction() == spectrum.Descending {
		slices.Reverse(xs)
		slices.Reverse(ys)
	}

	// Large shifts or scales can collapse neighbours or overflow.
	if err := (spectrum.Spectrum{Energy: xs, Intensity: ys}).Validate(); err != nil {
		return nil, fmt.Errorf("interp: shift %g scale %g: %w", shift, scale, err)
	}

	l := &Linear{xs: xs}
	if err := l.fit.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("interp: %w", err)
	}
	return l, nil
}

// Named returns a copy of l whose domain errors carry name.
func (l *Linear) Named(name string) *Linear {
	c := *l
	c.name = name
	return &c
}

// Name returns the label attached with Named.
func (l *Linear) Name() string { return l.name }

// Domain returns the closed interval on which l is defined.
func (l *Linear) Domain() (lo, hi float64) {
	return l.xs[0], l.xs[len(l.xs)-1]
}

// Contains reports whether x lies inside the domain.
func (l *Linear) Contains(x float64) bool {
	lo, hi := l.Domain()
	return x >= lo && x <= hi
}

// At evaluates the interpolant at x.
func (l *Linear) At(x float64) (float64, error) {
	if !l.Contains(x) {
		return 0, l.domainError(x)
	}
	return l.fit.Predict(x), nil
}

// Evaluate returns the interpolant evaluated at every xs[i].
func (l *Linear) Evaluate(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	if err := l.EvaluateInto(out, xs); err != nil {
		return nil, err
	}
	return out, nil
}

// EvaluateInto writes the interpolant at xs into dst. It fails on the first
// point outside the domain and leaves dst partially written in that case.
// dst and xs must have equal length.
func (l *Linear) EvaluateInto(dst, xs []float64) error {
	if len(dst) != len(xs) {
		return fmt.Errorf("interp: dst length %d != xs length %d", len(dst), len(xs))
	}
	for i, x := range xs {
		if !l.Contains(x) {
			return l.domainError(x)
		}
		dst[i] = l.fit.Predict(x)
	}
	return nil
}

func (l *Linear) domainError(x float64) error {
	lo, hi := l.Domain()
	return &DomainError{Name: l.name, X: x, Lo: lo, Hi: hi}
}

// Linear2 interpolates between (x0, y0) and (x1, y1) at x.
func Linear2(x, x0, y0, x1, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
