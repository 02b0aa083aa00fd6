package satsub

import (
	"errors"
	"fmt"

	"github.com/PhilippHaizmann/SatSub/dsp/interp"
	"github.com/PhilippHaizmann/SatSub/dsp/resample"
	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Interpolants holds the three curves built from one calibrated spectrum.
type Interpolants struct {
	Original *interp.Linear
	Beta     *interp.Linear
	Gamma    *interp.Linear
}

// All returns the interpolants in legend order.
func (in Interpolants) All() []*interp.Linear {
	return []*interp.Linear{in.Original, in.Beta, in.Gamma}
}

// Result holds every curve of a subtraction run evaluated on Grid.
type Result struct {
	Grid       []float64
	Original   []float64
	Beta       []float64
	Gamma      []float64
	Subtracted []float64
}

// Spectrum returns the satellite-subtracted spectrum keyed by grid energy.
func (r Result) Spectrum() spectrum.Spectrum {
	return spectrum.Spectrum{
		Energy:    append([]float64(nil), r.Grid...),
		Intensity: append([]float64(nil), r.Subtracted...),
	}
}

// Len returns the number of grid points.
func (r Result) Len() int { return len(r.Grid) }

// BuildInterpolants creates the original, beta and gamma interpolants over
// an already calibrated spectrum. Satellite models share the sample values
// of s with the energy axis shifted down by the satellite offset and the
// intensity scaled by its fraction.
func BuildInterpolants(s spectrum.Spectrum, beta, gamma Satellite) (Interpolants, error) {
	org, err := interp.NewLinear(s.Energy, s.Intensity)
	if err != nil {
		return Interpolants{}, fmt.Errorf("satsub: %s: %w", LabelOriginal, err)
	}
	b, err := interp.NewShiftedLinear(s.Energy, s.Intensity, beta.Offset, beta.Fraction)
	if err != nil {
		return Interpolants{}, fmt.Errorf("satsub: %s: %w", LabelBeta, err)
	}
	g, err := interp.NewShiftedLinear(s.Energy, s.Intensity, gamma.Offset, gamma.Fraction)
	if err != nil {
		return Interpolants{}, fmt.Errorf("satsub: %s: %w", LabelGamma, err)
	}

	return Interpolants{
		Original: org.Named(LabelOriginal),
		Beta:     b.Named(LabelBeta),
		Gamma:    g.Named(LabelGamma),
	}, nil
}

// CheckGrid verifies that both grid extremes lie inside every interpolant's
// domain. The first violation is returned as a *GridError.
func CheckGrid(grid []float64, in Interpolants) error {
	if len(grid) == 0 {
		return nil
	}
	upper, lower := floats.Max(grid), floats.Min(grid)

	for _, l := range in.All() {
		for _, b := range []struct {
			name  string
			value float64
		}{
			{"upper", upper},
			{"lower", lower},
		} {
			if _, err := l.At(b.value); err != nil {
				lo, hi := l.Domain()
				return &GridError{Curve: l.Name(), Bound: b.name, Value: b.value, Lo: lo, Hi: hi, Err: err}
			}
		}
	}
	return nil
}

// Subtract runs the full procedure on a raw spectrum: calibrate by
// p.GlobalOffset, build the interpolants, build and check the grid,
// evaluate and subtract. Negative results are kept as they are.
func Subtract(s spectrum.Spectrum, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	return subtract(spectrum.Calibrate(s, p.GlobalOffset), p)
}

// SubtractCalibrated runs the procedure on a spectrum whose energy axis is
// already corrected. p.GlobalOffset is ignored.
func SubtractCalibrated(cal spectrum.Spectrum, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	return subtract(cal, p)
}

func subtract(cal spectrum.Spectrum, p Params) (Result, error) {
	in, err := BuildInterpolants(cal, p.Beta, p.Gamma)
	if err != nil {
		return Result{}, err
	}

	grid, err := resample.Grid(cal.Energy, p.Gamma.Offset, p.ExtraPoints)
	if err != nil {
		return Result{}, fmt.Errorf("satsub: %w", err)
	}
	if err := CheckGrid(grid, in); err != nil {
		return Result{}, err
	}

	return evaluate(grid, in)
}

func evaluate(grid []float64, in Interpolants) (Result, error) {
	n := len(grid)
	res := Result{
		Grid:       grid,
		Original:   make([]float64, n),
		Beta:       make([]float64, n),
		Gamma:      make([]float64, n),
		Subtracted: make([]float64, n),
	}

	for _, c := range []struct {
		l   *interp.Linear
		dst []float64
	}{
		{in.Original, res.Original},
		{in.Beta, res.Beta},
		{in.Gamma, res.Gamma},
	} {
		if err := c.l.EvaluateInto(c.dst, grid); err != nil {
			var de *interp.DomainError
			if errors.As(err, &de) {
				return Result{}, &GridError{Curve: c.l.Name(), Bound: "interior", Value: de.X, Lo: de.Lo, Hi: de.Hi, Err: err}
			}
			return Result{}, fmt.Errorf("satsub: %w", err)
		}
	}

	neg := make([]float64, n)
	copy(res.Subtracted, res.Original)
	vecmath.ScaleBlock(neg, res.Beta, -1)
	vecmath.AddBlockInPlace(res.Subtracted, neg)
	vecmath.ScaleBlock(neg, res.Gamma, -1)
	vecmath.AddBlockInPlace(res.Subtracted, neg)

	return res, nil
}
