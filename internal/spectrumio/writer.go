package spectrumio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
)

// Output column labels. The energy column is the row key.
const (
	HeaderEnergy    = "Binding Energy"
	HeaderIntensity = "Intensity"
)

// Writer formats spectra as delimited text with a header row.
type Writer struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// Write writes the header and one row per sample to w.
func (wr Writer) Write(w io.Writer, s spectrum.Spectrum) error {
	if len(s.Energy) != len(s.Intensity) {
		return &spectrum.LengthError{Energy: len(s.Energy), Intensity: len(s.Intensity)}
	}

	cw := csv.NewWriter(w)
	if wr.Comma != 0 {
		cw.Comma = wr.Comma
	}
	if err := cw.Write([]string{HeaderEnergy, HeaderIntensity}); err != nil {
		return fmt.Errorf("spectrumio: write header: %w", err)
	}

	row := make([]string, 2)
	for i := range s.Energy {
		row[0] = formatFloat(s.Energy[i])
		row[1] = formatFloat(s.Intensity[i])
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("spectrumio: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("spectrumio: flush: %w", err)
	}
	return nil
}

// WriteFile creates or truncates path and writes s into it.
func (wr Writer) WriteFile(path string, s spectrum.Spectrum) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("spectrumio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("spectrumio: close %s: %w", path, cerr)
		}
	}()
	return wr.Write(f, s)
}

// formatFloat uses the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
