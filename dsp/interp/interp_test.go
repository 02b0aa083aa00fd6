package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
	"github.com/PhilippHaizmann/SatSub/internal/testutil"
)

func TestLinearMatchesTwoPointFormula(t *testing.T) {
	x := []float64{0, 1, 2.5, 4}
	y := []float64{1, -1, 3, 0}

	l, err := NewLinear(x, y)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	for _, q := range []float64{0, 0.25, 1, 1.7, 2.5, 3.9, 4} {
		var want float64
		for i := 1; i < len(x); i++ {
			if q <= x[i] {
				want = Linear2(q, x[i-1], y[i-1], x[i], y[i])
				break
			}
		}
		got, err := l.At(q)
		if err != nil {
			t.Fatalf("At(%v): %v", q, err)
		}
		testutil.RequireNearlyEqual(t, "At", got, want, 1e-12)
	}
}

func TestLinearDescendingInput(t *testing.T) {
	asc, err := NewLinear([]float64{1, 2, 3}, []float64{10, 20, 40})
	if err != nil {
		t.Fatalf("NewLinear ascending: %v", err)
	}
	desc, err := NewLinear([]float64{3, 2, 1}, []float64{40, 20, 10})
	if err != nil {
		t.Fatalf("NewLinear descending: %v", err)
	}

	xs := []float64{1, 1.5, 2, 2.75, 3}
	a, _ := asc.Evaluate(xs)
	d, _ := desc.Evaluate(xs)
	testutil.RequireSliceNearlyEqual(t, d, a, 1e-12)

	lo, hi := desc.Domain()
	if lo != 1 || hi != 3 {
		t.Fatalf("Domain() = (%v, %v), want (1, 3)", lo, hi)
	}
}

func TestShiftedLinear(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{2, 4, 6, 8}

	l, err := NewShiftedLinear(x, y, 1.5, 0.25)
	if err != nil {
		t.Fatalf("NewShiftedLinear: %v", err)
	}

	lo, hi := l.Domain()
	if lo != -1.5 || hi != 1.5 {
		t.Fatalf("Domain() = (%v, %v), want (-1.5, 1.5)", lo, hi)
	}

	// The shifted curve at u equals scale * original(u + shift).
	got, err := l.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	testutil.RequireNearlyEqual(t, "At(0)", got, 0.25*5, 1e-12)
}

func TestLinearOutOfDomain(t *testing.T) {
	l, err := NewLinear([]float64{5, 4, 3}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	l = l.Named("sat gamma")

	for _, x := range []float64{2.999, 5.0001, math.Inf(1)} {
		_, err := l.At(x)
		var de *DomainError
		if !errors.As(err, &de) {
			t.Fatalf("At(%v) err = %v, want *DomainError", x, err)
		}
		if !errors.Is(err, ErrOutOfDomain) {
			t.Fatalf("At(%v) err does not wrap ErrOutOfDomain", x)
		}
		if de.Name != "sat gamma" || de.X != x || de.Lo != 3 || de.Hi != 5 {
			t.Fatalf("DomainError = %+v", de)
		}
	}

	_, err = l.At(math.NaN())
	if !errors.Is(err, ErrOutOfDomain) {
		t.Fatalf("At(NaN) err = %v, want ErrOutOfDomain", err)
	}
}

func TestEvaluateStopsAtFirstViolation(t *testing.T) {
	l, _ := NewLinear([]float64{0, 1, 2}, []float64{0, 1, 2})

	_, err := l.Evaluate([]float64{0.5, 2.5, -1})
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DomainError", err)
	}
	if de.X != 2.5 || !de.Above() {
		t.Fatalf("DomainError = %+v, want x=2.5 above range", de)
	}

	if err := l.EvaluateInto(make([]float64, 1), []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestNewLinearRejectsBadAxis(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{name: "not monotonic", x: []float64{0, 2, 1}, y: []float64{0, 0, 0}, want: spectrum.ErrNotMonotonic},
		{name: "repeated", x: []float64{0, 0}, y: []float64{0, 0}, want: spectrum.ErrNotMonotonic},
		{name: "single", x: []float64{0}, y: []float64{0}, want: spectrum.ErrTooShort},
		{name: "mismatch", x: []float64{0, 1}, y: []float64{0}, want: spectrum.ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLinear(tt.x, tt.y)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewLinear err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewShiftedLinearOverflow(t *testing.T) {
	_, err := NewShiftedLinear([]float64{0, 1}, []float64{1, math.MaxFloat64}, 0, 10)
	if !errors.Is(err, spectrum.ErrNonFinite) {
		t.Fatalf("err = %v, want ErrNonFinite", err)
	}
}

func TestLinear2(t *testing.T) {
	if got := Linear2(0.25, 0, 2, 1, 4); got != 2.5 {
		t.Fatalf("Linear2 = %v, want 2.5", got)
	}
	if got := Linear2(3, 1, 7, 1, 9); got != 7 {
		t.Fatalf("degenerate Linear2 = %v, want 7", got)
	}
}
