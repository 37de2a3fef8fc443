package viz

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidFigure indicates X and Y series that are empty or differ in
	// length.
	ErrInvalidFigure = errors.New("viz: invalid figure")

	// ErrInterrupted indicates the user aborted the viewer.
	ErrInterrupted = errors.New("viz: interrupted")
)

// Figure is a single 2-D line plot.
type Figure struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	X, Y   []float64
}

func (f Figure) Validate() error {
	if len(f.X) == 0 {
		return fmt.Errorf("%w: %s has no points", ErrInvalidFigure, f.Name)
	}
	if len(f.X) != len(f.Y) {
		return fmt.Errorf("%w: %s has %d x and %d y values", ErrInvalidFigure, f.Name, len(f.X), len(f.Y))
	}
	return nil
}

// Renderer presents a figure. Blocking renderers return once the figure is
// dismissed.
type Renderer interface {
	Name() string
	Render(ctx context.Context, f Figure) error
}

// Chain renders each figure with every renderer in order, stopping at the
// first error.
type Chain []Renderer

func (c Chain) Name() string {
	name := ""
	for i, r := range c {
		if i > 0 {
			name += "+"
		}
		name += r.Name()
	}
	return name
}

func (c Chain) Render(ctx context.Context, f Figure) error {
	for _, r := range c {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Render(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// bounds returns the finite min and max of v. ok is false when v holds no
// finite value.
func bounds(v []float64) (lo, hi float64, ok bool) {
	for _, x := range v {
		if !isFinite(x) {
			continue
		}
		if !ok {
			lo, hi, ok = x, x, true
			continue
		}
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, ok
}
