package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// Ramp returns n energies start, start+step, ... and intensities
// intercept + slope*energy.
func Ramp(n int, start, step, slope, intercept float64) (energy, intensity []float64) {
	energy = make([]float64, n)
	intensity = make([]float64, n)
	for i := range energy {
		energy[i] = start + step*float64(i)
		intensity[i] = intercept + slope*energy[i]
	}
	return energy, intensity
}

// HeISpectrum builds a descending-energy spectrum from hi to lo with a
// Gaussian main line at center plus beta and gamma echoes shifted to lower
// binding energy by their offsets and scaled by their fractions.
func HeISpectrum(n int, hi, lo, center, width, betaOffset, betaFrac, gammaOffset, gammaFrac float64) (energy, intensity []float64) {
	energy = make([]float64, n)
	intensity = make([]float64, n)
	step := (lo - hi) / float64(n-1)
	for i := range energy {
		e := hi + step*float64(i)
		energy[i] = e
		intensity[i] = gauss(e, center, width) +
			betaFrac*gauss(e, center-betaOffset, width) +
			gammaFrac*gauss(e, center-gammaOffset, width)
	}
	return energy, intensity
}

func gauss(x, mu, sigma float64) float64 {
	d := (x - mu) / sigma
	return math.Exp(-0.5 * d * d)
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
