package resample

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNegativeCount indicates a negative number of grid points.
	ErrNegativeCount = errors.New("resample: negative point count")
	// ErrNegativeExtra indicates a negative number of extra interpolation points.
	ErrNegativeExtra = errors.New("resample: negative extra point count")
	// ErrEmptyAxis indicates a grid requested over an empty energy axis.
	ErrEmptyAxis = errors.New("resample: empty energy axis")
)

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 yields [start]; n == 0 yields an empty slice. The last value is
// exactly stop.
func Linspace(start, stop float64, n int) ([]float64, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	case n == 0:
		return []float64{}, nil
	case n == 1:
		return []float64{start}, nil
	}
	out := floats.Span(make([]float64, n), start, stop)
	out[n-1] = stop
	return out, nil
}

// Grid returns len(x)+extra evenly spaced energies from max(x)-gammaOffset
// down to min(x), endpoints included.
//
// Starting below max(x) by the largest satellite offset keeps the grid
// inside the domain of every shifted interpolant on the high-energy side.
func Grid(x []float64, gammaOffset float64, extra int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyAxis
	}
	if extra < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeExtra, extra)
	}

	start, stop := Bounds(x, gammaOffset)
	return Linspace(start, stop, len(x)+extra)
}

// Bounds returns the first and last value Grid would produce.
func Bounds(x []float64, gammaOffset float64) (start, stop float64) {
	return floats.Max(x) - gammaOffset, floats.Min(x)
}
