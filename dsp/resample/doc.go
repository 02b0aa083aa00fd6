// Package resample builds the uniform energy grids that spectra are
// resampled onto before pointwise arithmetic.
//
// Common workflows:
//   - Linspace(start, stop, n): n evenly spaced values, both endpoints included
//   - Grid(x, gammaOffset, extra): the satellite-subtraction grid, running
//     from max(x)-gammaOffset down to min(x)
package resample
