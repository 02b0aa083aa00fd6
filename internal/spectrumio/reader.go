// Package spectrumio reads and writes spectra as flat delimited text.
package spectrumio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
)

var (
	// ErrMalformedRow indicates a data row that is not two numeric columns.
	ErrMalformedRow = errors.New("spectrumio: malformed row")
	// ErrNoPath indicates an empty source or destination path.
	ErrNoPath = errors.New("spectrumio: empty path")
)

// ParseError locates a malformed row. Line is 1-based and counts skipped
// header rows.
type ParseError struct {
	Path  string
	Line  int
	Field int
	Err   error
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = e.Path + ":" + strconv.Itoa(e.Line)
	}
	if e.Field > 0 {
		return fmt.Sprintf("%v: %s column %d: %v", ErrMalformedRow, loc, e.Field, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrMalformedRow, loc, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrMalformedRow, e.Err} }

// Reader parses two-column (binding energy, intensity) text.
type Reader struct {
	// SkipRows is the number of leading header/metadata lines to discard.
	SkipRows int
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// Read parses a spectrum from r.
func (rd Reader) Read(r io.Reader) (spectrum.Spectrum, error) {
	br := bufio.NewReader(r)
	for i := 0; i < rd.SkipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return spectrum.Spectrum{}, nil
			}
			return spectrum.Spectrum{}, fmt.Errorf("spectrumio: skip header: %w", err)
		}
	}

	cr := csv.NewReader(br)
	cr.Comma = rd.comma()
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var out spectrum.Spectrum
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var ce *csv.ParseError
			if errors.As(err, &ce) {
				line = ce.StartLine + rd.SkipRows
			}
			return spectrum.Spectrum{}, &ParseError{Line: line, Err: err}
		}

		line, _ := cr.FieldPos(0)
		line += rd.SkipRows
		if len(rec) != 2 {
			return spectrum.Spectrum{}, &ParseError{Line: line, Err: fmt.Errorf("want 2 columns, got %d", len(rec))}
		}

		var vals [2]float64
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return spectrum.Spectrum{}, &ParseError{Line: line, Field: i + 1, Err: err}
			}
			vals[i] = v
		}
		out.Energy = append(out.Energy, vals[0])
		out.Intensity = append(out.Intensity, vals[1])
	}
	return out, nil
}

// ReadFile parses the spectrum stored at path.
func (rd Reader) ReadFile(path string) (spectrum.Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return spectrum.Spectrum{}, fmt.Errorf("spectrumio: %w", err)
	}
	defer f.Close()

	s, err := rd.Read(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return spectrum.Spectrum{}, err
	}
	return s, nil
}

func (rd Reader) comma() rune {
	if rd.Comma == 0 {
		return ','
	}
	return rd.Comma
}
