package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PhilippHaizmann/SatSub/dsp/satsub"
	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
)

func ramp(t *testing.T) spectrum.Spectrum {
	t.Helper()
	s, err := spectrum.New([]float64{5, 4, 3, 2, 1, 0}, []float64{6, 5, 4, 3, 2, 1})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name   string
		p      satsub.Params
		status []string
	}{
		{
			name:   "in range",
			p:      satsub.Params{Beta: satsub.Satellite{Offset: 1}, Gamma: satsub.Satellite{Offset: 2}},
			status: []string{"ok", "ok", "ok"},
		},
		{
			name:   "beta beyond gamma",
			p:      satsub.Params{Beta: satsub.Satellite{Offset: 2}, Gamma: satsub.Satellite{Offset: 1}},
			status: []string{"ok", "start above", "ok"},
		},
		{
			name:   "negative gamma offset",
			p:      satsub.Params{Beta: satsub.Satellite{Offset: 1}, Gamma: satsub.Satellite{Offset: -1}},
			status: []string{"start above", "start above", "stop below"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, n, rows, err := analyze(ramp(t), tc.p)
			if err != nil {
				t.Fatalf("analyze: %v", err)
			}
			if n != 6 {
				t.Fatalf("points = %d, want 6", n)
			}
			for i, r := range rows {
				if r.status != tc.status[i] {
					t.Fatalf("%s: status = %q, want %q", r.curve, r.status, tc.status[i])
				}
			}
		})
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := satsub.Params{Beta: satsub.Satellite{Offset: 1}, Gamma: satsub.Satellite{Offset: 2}, ExtraPoints: 4}
	if err := printReport(&buf, ramp(t), p); err != nil {
		t.Fatalf("printReport: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Curve", satsub.LabelOriginal, satsub.LabelBeta, satsub.LabelGamma, "3.0000", "10"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
