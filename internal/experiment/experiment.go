package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/san-kum/trajviz/internal/analysis"
	"github.com/san-kum/trajviz/internal/config"
	"github.com/san-kum/trajviz/internal/logs"
	"github.com/san-kum/trajviz/internal/metrics"
	"github.com/san-kum/trajviz/internal/table"
	"github.com/san-kum/trajviz/internal/trajectory"
	"github.com/san-kum/trajviz/internal/viz"
)

type Config struct {
	Preset  config.Preset
	DataDir string
	File    string // overrides the preset's data file when set
}

// Experiment is one load-and-plot run over a preset's data file.
type Experiment struct {
	cfg    Config
	kinds  []trajectory.Kind
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Experiment, error) {
	kinds, err := cfg.Preset.Kinds()
	if err != nil {
		return nil, fmt.Errorf("experiment: preset %s: %w", cfg.Preset.Name, err)
	}
	if logger == nil {
		logger = logs.Discard()
	}
	return &Experiment{cfg: cfg, kinds: kinds, logger: logger}, nil
}

// Path returns the data file the experiment reads.
func (e *Experiment) Path() string {
	if e.cfg.File != "" {
		return e.cfg.File
	}
	return filepath.Join(e.cfg.DataDir, e.cfg.Preset.File)
}

// Load reads the data file and splits it into time, angle, and angular
// velocity.
func (e *Experiment) Load() (*trajectory.Series, error) {
	tbl, err := table.Load(e.Path())
	if err != nil {
		return nil, err
	}
	e.logger.Info("table loaded", "path", e.Path(), "rows", tbl.Rows(), "cols", tbl.Cols())

	return trajectory.Extract(tbl)
}

// Figures loads the data and builds every figure of the preset.
func (e *Experiment) Figures() ([]viz.Figure, error) {
	s, err := e.Load()
	if err != nil {
		return nil, err
	}
	return trajectory.Build(s, e.kinds)
}

// Run loads the data and renders the preset's figures in order. Each figure
// is built only after the previous one was rendered; the first error aborts
// the run.
func (e *Experiment) Run(ctx context.Context, r viz.Renderer) error {
	s, err := e.Load()
	if err != nil {
		return err
	}

	for _, k := range e.kinds {
		figs, err := trajectory.Build(s, []trajectory.Kind{k})
		if err != nil {
			return err
		}
		if err := r.Render(ctx, figs[0]); err != nil {
			return err
		}
		e.logger.Info("figure rendered", "figure", figs[0].Name, "renderer", r.Name())
	}
	return nil
}

// Report is the outcome of Summarize.
type Report struct {
	Path    string
	Samples int
	Start   float64
	End     float64
	Energy  metrics.Summary
	Period  float64 // angle oscillation period, 0 when unknown
}

// Summarize loads the data and describes its energy series and oscillation
// period.
func (e *Experiment) Summarize() (*Report, error) {
	s, err := e.Load()
	if err != nil {
		return nil, err
	}

	h, err := metrics.Hamiltonian(s.Angle, s.AngularVelocity)
	if err != nil {
		return nil, err
	}
	sum, err := metrics.Summarize(h)
	if err != nil {
		return nil, err
	}

	period, err := analysis.DominantPeriod(s.Time, s.Angle)
	if err != nil {
		e.logger.Debug("no period estimate", "path", e.Path(), "err", err)
	}

	return &Report{
		Path:    e.Path(),
		Samples: s.Len(),
		Start:   s.Time[0],
		End:     s.Time[s.Len()-1],
		Energy:  sum,
		Period:  period,
	}, nil
}
