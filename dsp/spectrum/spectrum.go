package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Direction describes the ordering of a spectrum's energy axis.
type Direction int

const (
	// Unordered means the axis is neither strictly ascending nor strictly descending.
	Unordered Direction = iota
	// Ascending means every energy is strictly greater than its predecessor.
	Ascending
	// Descending means every energy is strictly smaller than its predecessor.
	Descending
)

// String returns a lowercase name for d.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unordered"
	}
}

// Spectrum is a series of (binding energy, intensity) samples.
type Spectrum struct {
	Energy    []float64
	Intensity []float64
}

// New copies energy and intensity into a new Spectrum.
// It returns ErrLengthMismatch when the slices differ in length.
func New(energy, intensity []float64) (Spectrum, error) {
	if len(energy) != len(intensity) {
		return Spectrum{}, &LengthError{Energy: len(energy), Intensity: len(intensity)}
	}

	return Spectrum{
		Energy:    append([]float64(nil), energy...),
		Intensity: append([]float64(nil), intensity...),
	}, nil
}

// Len returns the number of samples.
func (s Spectrum) Len() int { return len(s.Energy) }

// Clone returns a deep copy of s.
func (s Spectrum) Clone() Spectrum {
	return Spectrum{
		Energy:    append([]float64(nil), s.Energy...),
		Intensity: append([]float64(nil), s.Intensity...),
	}
}

// Bounds returns the smallest and largest energy. An empty spectrum
// yields (NaN, NaN).
func (s Spectrum) Bounds() (lo, hi float64) {
	if len(s.Energy) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(s.Energy), floats.Max(s.Energy)
}

// Direction reports the ordering of the energy axis. Spectra with fewer
// than two samples are Unordered.
func (s Spectrum) Direction() Direction {
	if len(s.Energy) < 2 {
		return Unordered
	}
	_, dir := scanOrder(s.Energy)
	return dir
}

// Validate checks the preconditions of linear interpolation: matching
// lengths, at least two finite samples and a strictly monotonic energy axis.
func (s Spectrum) Validate() error {
	if len(s.Energy) != len(s.Intensity) {
		return &LengthError{Energy: len(s.Energy), Intensity: len(s.Intensity)}
	}
	if len(s.Energy) < 2 {
		return ErrTooShort
	}
	for i := range s.Energy {
		if !isFinite(s.Energy[i]) || !isFinite(s.Intensity[i]) {
			return &NonFiniteError{Index: i}
		}
	}
	if idx, dir := scanOrder(s.Energy); dir == Unordered {
		return &OrderError{Index: idx, Prev: s.Energy[idx-1], Value: s.Energy[idx]}
	}
	return nil
}

// Calibrate returns a copy of s with offset added to every energy sample.
// Intensities are copied unchanged.
func Calibrate(s Spectrum, offset float64) Spectrum {
	out := Spectrum{
		Energy:    make([]float64, len(s.Energy)),
		Intensity: append([]float64(nil), s.Intensity...),
	}
	for i, e := range s.Energy {
		out.Energy[i] = e + offset
	}
	return out
}

// scanOrder returns the direction of x together with the index of the first
// sample that breaks it. The index is only meaningful for Unordered.
func scanOrder(x []float64) (int, Direction) {
	dir := Ascending
	if x[1] < x[0] {
		dir = Descending
	}
	for i := 1; i < len(x); i++ {
		switch {
		case dir == Ascending && x[i] <= x[i-1]:
			return i, Unordered
		case dir == Descending && x[i] >= x[i-1]:
			return i, Unordered
		}
	}
	return 0, dir
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
