// Package satsub removes satellite-line contributions from UPS spectra.
//
// A discharge lamp emits weaker lines next to the main excitation line, so
// every photoemission feature is echoed at lower binding energy. The engine
// models each echo as a copy of the calibrated spectrum shifted by the
// satellite's energy offset and scaled by its relative intensity, resamples
// the original and both satellite models onto a common descending grid and
// subtracts:
//
//	no sat = org - sat beta - sat gamma
//
// The grid runs from max(E)-gamma.Offset down to min(E). Before any curve is
// evaluated the grid bounds are checked against every interpolant's domain;
// a violation is reported as a [*GridError] naming the curve and the bound.
package satsub
