package satsub

import (
	"fmt"
	"math"
)

// Curve labels. They name the interpolants in errors and the plot legend.
const (
	LabelOriginal   = "org"
	LabelBeta       = "sat beta"
	LabelGamma      = "sat gamma"
	LabelSubtracted = "no sat"
)

// Satellite describes one satellite line relative to the main line.
type Satellite struct {
	// Offset is the energy separation from the main line. The satellite
	// model is the spectrum with its energy axis shifted down by Offset.
	Offset float64
	// Fraction is the satellite intensity relative to the main line.
	Fraction float64
}

// Params holds every input of a subtraction run.
type Params struct {
	GlobalOffset float64
	Beta         Satellite
	Gamma        Satellite
	ExtraPoints  int
}

// HeIParams returns the He I satellite parameters used for the reference
// measurements: beta at 1.87 eV / 5.5 %, gamma at 2.52 eV / 1.5 %, 300
// extra grid points.
func HeIParams() Params {
	return Params{
		Beta:        Satellite{Offset: 1.87, Fraction: 0.055},
		Gamma:       Satellite{Offset: 2.52, Fraction: 0.015},
		ExtraPoints: 300,
	}
}

// Validate rejects non-finite values and a negative extra point count.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"global offset", p.GlobalOffset},
		{"beta offset", p.Beta.Offset},
		{"beta fraction", p.Beta.Fraction},
		{"gamma offset", p.Gamma.Offset},
		{"gamma fraction", p.Gamma.Fraction},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidParams, f.name, f.v)
		}
	}
	if p.ExtraPoints < 0 {
		return fmt.Errorf("%w: extra points must be >= 0: %d", ErrInvalidParams, p.ExtraPoints)
	}
	return nil
}
