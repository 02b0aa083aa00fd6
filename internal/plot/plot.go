// Package plot renders a subtraction result for visual inspection.
//
// The figure overlays the four curves evaluated on the resampling grid:
// "org" dashed, "sat beta" as circles, "sat gamma" as crosses and "no sat"
// as a solid line.
package plot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg" // png encoder

	"github.com/PhilippHaizmann/SatSub/dsp/satsub"
)

// Renderer draws results to an image file and optionally shows it.
type Renderer struct {
	Path   string
	Width  vg.Length
	Height vg.Length
	Format string
	// View opens the image with Viewer and waits for the command to exit.
	// Launchers such as xdg-open may return while the image is still shown.
	View   bool
	Viewer []string
}

// NewRenderer returns a 16x10 cm PNG renderer writing to path.
func NewRenderer(path string) *Renderer {
	return &Renderer{
		Path:   path,
		Width:  16 * vg.Centimeter,
		Height: 10 * vg.Centimeter,
		Format: "png",
		Viewer: defaultViewer(),
	}
}

// Render writes the figure for res to r.Path and, if View is set, blocks
// until the viewer exits.
func (r *Renderer) Render(ctx context.Context, res satsub.Result) error {
	var buf bytes.Buffer
	if err := r.WriteTo(&buf, res); err != nil {
		return err
	}
	if err := os.WriteFile(r.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if !r.View || len(r.Viewer) == 0 {
		return nil
	}

	args := append(append([]string(nil), r.Viewer[1:]...), r.Path)
	cmd := exec.CommandContext(ctx, r.Viewer[0], args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("plot: viewer %s: %w", r.Viewer[0], err)
	}
	return nil
}

// WriteTo encodes the figure for res to w.
func (r *Renderer) WriteTo(w io.Writer, res satsub.Result) error {
	p, err := Figure(res)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(r.Width, r.Height, r.Format)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}

// Figure builds the four-curve plot for res.
func Figure(res satsub.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Satellite subtraction"
	p.X.Label.Text = "Binding Energy"
	p.Y.Label.Text = "Intensity"
	p.Legend.Top = true

	org, err := plotter.NewLine(points(res.Grid, res.Original))
	if err != nil {
		return nil, fmt.Errorf("plot: %s: %w", satsub.LabelOriginal, err)
	}
	org.LineStyle.Color = plotutil.Color(0)
	org.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}

	beta, err := plotter.NewScatter(points(res.Grid, res.Beta))
	if err != nil {
		return nil, fmt.Errorf("plot: %s: %w", satsub.LabelBeta, err)
	}
	beta.GlyphStyle.Color = plotutil.Color(1)
	beta.GlyphStyle.Shape = draw.CircleGlyph{}
	beta.GlyphStyle.Radius = vg.Points(1.5)

	gamma, err := plotter.NewScatter(points(res.Grid, res.Gamma))
	if err != nil {
		return nil, fmt.Errorf("plot: %s: %w", satsub.LabelGamma, err)
	}
	gamma.GlyphStyle.Color = plotutil.Color(2)
	gamma.GlyphStyle.Shape = draw.CrossGlyph{}
	gamma.GlyphStyle.Radius = vg.Points(1.5)

	nosat, err := plotter.NewLine(points(res.Grid, res.Subtracted))
	if err != nil {
		return nil, fmt.Errorf("plot: %s: %w", satsub.LabelSubtracted, err)
	}
	nosat.LineStyle.Color = plotutil.Color(3)

	p.Add(plotter.NewGrid(), org, beta, gamma, nosat)
	p.Legend.Add(satsub.LabelOriginal, org)
	p.Legend.Add(satsub.LabelBeta, beta)
	p.Legend.Add(satsub.LabelGamma, gamma)
	p.Legend.Add(satsub.LabelSubtracted, nosat)
	return p, nil
}

func points(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

func defaultViewer() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open", "-W"}
	case "windows":
		return []string{"cmd", "/c", "start", "/wait", ""}
	default:
		return []string{"xdg-open"}
	}
}
