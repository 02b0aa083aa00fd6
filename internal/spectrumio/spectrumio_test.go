package spectrumio

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
	"github.com/PhilippHaizmann/SatSub/internal/testutil"
)

const instrumentExport = `Region: Valence
Lens Mode: Angular
Excitation Energy: 21.2182
12.0, 10
11.5, 12.5
11.0,15
`

func TestReadSkipsHeaderRows(t *testing.T) {
	s, err := Reader{SkipRows: 3}.Read(strings.NewReader(instrumentExport))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, s.Energy, []float64{12, 11.5, 11}, 0)
	testutil.RequireSliceNearlyEqual(t, s.Intensity, []float64{10, 12.5, 15}, 0)
}

func TestReadTabDelimited(t *testing.T) {
	s, err := Reader{SkipRows: 1, Comma: '\t'}.Read(strings.NewReader("BE\tcounts\n3\t1e3\n2\t2e3\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, s.Intensity, []float64{1000, 2000}, 0)
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		field int
	}{
		{name: "text value", input: "h\n1,2\n2,abc\n", line: 3, field: 2},
		{name: "text energy", input: "h\nx,2\n", line: 2, field: 1},
		{name: "three columns", input: "h\n1,2\n2,3,4\n", line: 3},
		{name: "one column", input: "h\n1\n", line: 2},
		{name: "header not skipped", input: "Energy,Counts\n1,2\n", line: 1, field: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip := 1
			if tt.name == "header not skipped" {
				skip = 0
			}
			_, err := Reader{SkipRows: skip}.Read(strings.NewReader(tt.input))

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if !errors.Is(err, ErrMalformedRow) {
				t.Fatalf("err does not wrap ErrMalformedRow: %v", err)
			}
			if pe.Line != tt.line || pe.Field != tt.field {
				t.Fatalf("ParseError line/field = %d/%d, want %d/%d", pe.Line, pe.Field, tt.line, tt.field)
			}
		})
	}
}

func TestReadHeaderOnly(t *testing.T) {
	s, err := Reader{SkipRows: 5}.Read(strings.NewReader("a\nb\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
}

func TestWriteFormat(t *testing.T) {
	s, _ := spectrum.New([]float64{3, 2.4, 0.1}, []float64{-1.5, 0, 1e-7})

	var buf bytes.Buffer
	if err := (Writer{}).Write(&buf, s); err != nil {
		t.Fatalf("Write: %v", err)
	}

	want := "Binding Energy,Intensity\n3,-1.5\n2.4,0\n0.1,1e-07\n"
	if buf.String() != want {
		t.Fatalf("output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteReadBack(t *testing.T) {
	e, y := testutil.HeISpectrum(50, 10, 5, 8, 0.3, 1.87, 0.05, 2.52, 0.01)
	s, _ := spectrum.New(e, y)
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := (Writer{}).WriteFile(path, s); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := Reader{SkipRows: 1}.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Energy, s.Energy, 0)
	testutil.RequireSliceNearlyEqual(t, got.Intensity, s.Intensity, 0)
}

func TestReadFileAttachesPath(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "bad.csv", "1,2\n1,x\n")

	var pe *ParseError
	if _, err := (Reader{}).ReadFile(path); !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.Path != path || !strings.Contains(pe.Error(), path+":2") {
		t.Fatalf("ParseError = %v, want path %s line 2", pe, path)
	}

	if _, err := (Reader{}).ReadFile(filepath.Join(t.TempDir(), "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v, want os.ErrNotExist", err)
	}
}

type stubPicker struct {
	path string
	err  error
}

func (p stubPicker) PickPath(context.Context) (string, error) { return p.path, p.err }

func TestFileSourceFetch(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "in.csv", "hdr\n2,1\n1,2\n")
	src := FileSource{Reader: Reader{SkipRows: 1}, Picker: stubPicker{path: path}}

	s, got, err := src.Fetch(context.Background(), "")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != path || s.Len() != 2 {
		t.Fatalf("Fetch = (%d samples, %q), want (2, %q)", s.Len(), got, path)
	}

	cancelled := errors.New("cancelled")
	src.Picker = stubPicker{err: cancelled}
	if _, _, err := src.Fetch(context.Background(), ""); !errors.Is(err, cancelled) {
		t.Fatalf("Fetch err = %v, want picker error", err)
	}

	src.Picker = nil
	if _, _, err := src.Fetch(context.Background(), ""); !errors.Is(err, ErrNoPath) {
		t.Fatalf("Fetch err = %v, want ErrNoPath", err)
	}
}

func TestFileSinkPath(t *testing.T) {
	sink := FileSink{Dir: "/data"}
	tests := []struct {
		name string
		want string
	}{
		{name: "sample1", want: "/data/sample1.csv"},
		{name: " sample2.CSV ", want: "/data/sample2.CSV"},
		{name: "/abs/out", want: "/abs/out.csv"},
	}
	for _, tt := range tests {
		got, err := sink.Path(tt.name)
		if err != nil {
			t.Fatalf("Path(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("Path(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
	if _, err := sink.Path("  "); !errors.Is(err, ErrNoPath) {
		t.Fatalf("blank name err = %v, want ErrNoPath", err)
	}
}

func TestFileSinkPersist(t *testing.T) {
	dir := t.TempDir()
	s, _ := spectrum.New([]float64{1, 0}, []float64{2, 3})

	path, err := FileSink{Dir: dir}.Persist(context.Background(), s, "result")
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "Binding Energy,Intensity\n") {
		t.Fatalf("missing header: %q", data)
	}
}
