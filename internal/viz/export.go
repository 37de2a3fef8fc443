package viz

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Formats lists the image formats Exporter can write.
var Formats = []string{"png", "svg", "pdf", "eps", "jpg", "tif"}

// SupportedFormat reports whether format is one of Formats.
func SupportedFormat(format string) bool {
	for _, f := range Formats {
		if f == strings.ToLower(format) {
			return true
		}
	}
	return false
}

// Exporter saves each figure to Dir as <Prefix>_<figure name>.<Format>.
type Exporter struct {
	Dir    string
	Prefix string
	Format string

	// Width and Height default to 8x6 inches.
	Width, Height vg.Length

	Logger *slog.Logger
}

func (e *Exporter) Name() string { return "export" }

// Path returns the file the figure is written to.
func (e *Exporter) Path(f Figure) string {
	name := f.Name
	if e.Prefix != "" {
		name = e.Prefix + "_" + name
	}
	return filepath.Join(e.Dir, name+"."+strings.ToLower(e.Format))
}

func (e *Exporter) Render(_ context.Context, f Figure) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if !SupportedFormat(e.Format) {
		return fmt.Errorf("viz: unsupported export format %q (available: %v)", e.Format, Formats)
	}

	p, err := NewPlot(f)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return fmt.Errorf("viz: cannot create export directory: %w", err)
	}

	w, h := e.Width, e.Height
	if w <= 0 {
		w = 8 * vg.Inch
	}
	if h <= 0 {
		h = 6 * vg.Inch
	}

	path := e.Path(f)
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("viz: cannot save %s: %w", path, err)
	}
	if e.Logger != nil {
		e.Logger.Info("figure exported", "figure", f.Name, "path", path)
	}
	return nil
}

// NewPlot builds a gonum plot of f. Non-finite points are left out.
func NewPlot(f Figure) (*plot.Plot, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, 0, len(f.X))
	for i := range f.X {
		if isFinite(f.X[i]) && isFinite(f.Y[i]) {
			pts = append(pts, plotter.XY{X: f.X[i], Y: f.Y[i]})
		}
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: %s has no finite points", ErrInvalidFigure, f.Name)
	}

	p := plot.New()
	p.Title.Text = orDefault(f.Title, f.Name)
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Add(plotter.NewGrid())

	if len(pts) == 1 {
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = plotutil.Color(0)
		p.Add(s)
		return p, nil
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = plotutil.Color(0)
	p.Add(line)
	return p, nil
}
