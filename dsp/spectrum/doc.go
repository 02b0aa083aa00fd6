// Package spectrum defines the binding-energy/intensity series processed by
// the satellite subtraction engine.
//
// A [Spectrum] is an ordered set of samples. The energy axis may run in
// either direction as supplied by the instrument export, but it must be
// strictly monotonic before any interpolant is built over it; [Validate]
// enforces that precondition.
//
// [Calibrate] applies the global energy correction. It is pure and never
// aliases the input slices.
package spectrum
