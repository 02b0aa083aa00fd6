// Command satgrid prints the domain of every interpolant built from a
// spectrum next to the resampling grid, so offsets and extra points can be
// chosen that keep the grid in range.
//
// Usage:
//
//	satgrid [flags] file ...
//
// Examples:
//
//	satgrid VB_HeI.txt
//	satgrid -offset 0.1 -gamma-offset 3 VB_HeI.txt
//	satgrid -config helium.yaml data/*.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/PhilippHaizmann/SatSub/dsp/interp"
	"github.com/PhilippHaizmann/SatSub/dsp/resample"
	"github.com/PhilippHaizmann/SatSub/dsp/satsub"
	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
	"github.com/PhilippHaizmann/SatSub/internal/config"
	"github.com/PhilippHaizmann/SatSub/internal/spectrumio"
)

func main() {
	def := config.Default()
	cfgPath := flag.String("config", "", "YAML parameter file; flags override its values")
	offset := flag.Float64("offset", def.Offset, "global energy calibration offset")
	betaOff := flag.Float64("beta-offset", def.Beta.Offset, "beta satellite energy offset")
	gammaOff := flag.Float64("gamma-offset", def.Gamma.Offset, "gamma satellite energy offset")
	extra := flag.Int("extra", def.ExtraPoints, "grid points added on top of the sample count")
	skip := flag.Int("skip", def.SkipRows, "header rows to skip")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: satgrid [flags] file ...\n\n")
		fmt.Fprintf(os.Stderr, "Prints interpolant domains against the resampling grid.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := def
	if *cfgPath != "" {
		c, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		cfg = c
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "offset":
			cfg.Offset = *offset
		case "beta-offset":
			cfg.Beta.Offset = *betaOff
		case "gamma-offset":
			cfg.Gamma.Offset = *gammaOff
		case "extra":
			cfg.ExtraPoints = *extra
		case "skip":
			cfg.SkipRows = *skip
		}
	})

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	rd := spectrumio.Reader{SkipRows: cfg.SkipRows, Comma: cfg.Comma()}
	failed := false
	for _, path := range flag.Args() {
		s, err := rd.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s\n", path)
		if err := printReport(os.Stdout, s, cfg.Params()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)
			failed = true
		}
		fmt.Println()
	}
	if failed {
		os.Exit(1)
	}
}

type row struct {
	curve  string
	lo, hi float64
	status string
}

// analyze calibrates the spectrum, builds its interpolants and reports how
// the grid sits in each domain.
func analyze(s spectrum.Spectrum, p satsub.Params) (grid [2]float64, n int, rows []row, err error) {
	eng, err := satsub.NewEngine(p)
	if err != nil {
		return grid, 0, nil, err
	}
	cal := eng.Calibrate(s)

	in, err := satsub.BuildInterpolants(cal, p.Beta, p.Gamma)
	if err != nil {
		return grid, 0, nil, err
	}
	start, stop := resample.Bounds(cal.Energy, p.Gamma.Offset)
	grid = [2]float64{start, stop}
	n = cal.Len() + p.ExtraPoints

	for _, l := range in.All() {
		lo, hi := l.Domain()
		var out []string
		for _, b := range []struct {
			name string
			x    float64
		}{{"start", start}, {"stop", stop}} {
			if side := outside(l, b.x); side != "" {
				out = append(out, b.name+" "+side)
			}
		}
		status := "ok"
		if len(out) > 0 {
			status = strings.Join(out, ", ")
		}
		rows = append(rows, row{curve: l.Name(), lo: lo, hi: hi, status: status})
	}
	return grid, n, rows, nil
}

// outside returns "above" or "below" when x is past the domain of l and ""
// otherwise.
func outside(l *interp.Linear, x float64) string {
	_, err := l.At(x)
	var de *interp.DomainError
	if !errors.As(err, &de) {
		return ""
	}
	if de.Above() {
		return "above"
	}
	return "below"
}

func printReport(w io.Writer, s spectrum.Spectrum, p satsub.Params) error {
	grid, n, rows, err := analyze(s, p)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Curve\tDomain Lo\tDomain Hi\tGrid Start\tGrid Stop\tPoints\tStatus\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t---------\t---------\t----------\t---------\t------\t------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%d\t%s\n",
			r.curve, r.lo, r.hi, grid[0], grid[1], n, r.status,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
