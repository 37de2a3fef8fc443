//go:build cgo

package window

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/trajviz/internal/viz"
)

// Show opens a desktop window and presents figs one after another. Each
// figure stays up until dismissed with q, Esc, Enter or Space; closing the
// window ends the run. Show blocks until the window is gone and must be
// called from the main goroutine.
func Show(ctx context.Context, figs []viz.Figure, width, height int, logger *slog.Logger) error {
	if len(figs) == 0 {
		return nil
	}
	for _, f := range figs {
		if err := f.Validate(); err != nil {
			return err
		}
	}

	g := &game{
		ctx:    ctx,
		figs:   figs,
		pages:  pager{n: len(figs)},
		width:  width,
		height: height,
		logger: logger,
	}
	ebiten.SetWindowTitle(figs[0].Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(30)

	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return ctx.Err()
}

var dismissKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape, ebiten.KeyEnter, ebiten.KeySpace}

type game struct {
	ctx           context.Context
	figs          []viz.Figure
	pages         pager
	frame         *ebiten.Image
	shown         int
	width, height int
	logger        *slog.Logger
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, k := range dismissKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.pages.dismiss()
			break
		}
	}
	if g.pages.done() {
		return ebiten.Termination
	}

	if g.frame == nil || g.shown != g.pages.cur {
		f := g.figs[g.pages.cur]
		img, err := Raster(f, g.width, g.height)
		if err != nil {
			return fmt.Errorf("window: %s: %w", f.Name, err)
		}
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImageFromImage(img)
		g.shown = g.pages.cur
		ebiten.SetWindowTitle(f.Title)
		if g.logger != nil {
			g.logger.Info("figure rendered", "figure", f.Name, "renderer", "window")
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
