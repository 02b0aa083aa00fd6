// Package interp provides the piecewise-linear interpolant used to resample
// spectra onto a common energy grid.
//
// A [Linear] is defined only on the closed interval spanned by its sample
// positions. Evaluating outside that interval returns a [*DomainError]
// instead of clamping or extrapolating, so an inconsistent resampling grid
// surfaces with the offending value.
//
// Sample positions may be strictly ascending or strictly descending; the
// interpolant stores them ascending internally.
//
//   - [NewLinear]:        interpolate (x, y) directly
//   - [NewShiftedLinear]: interpolate (x - shift, y * scale), the model of a
//     satellite line
//   - [Linear2]:          two-point helper used for reference checks
package interp
