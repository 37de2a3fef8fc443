package window

import (
	"image"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/trajviz/internal/viz"
)

const dpi = 96

// Raster draws f into an image of width x height pixels.
func Raster(f viz.Figure, width, height int) (image.Image, error) {
	p, err := viz.NewPlot(f)
	if err != nil {
		return nil, err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width)/dpi*vg.Inch, vg.Length(height)/dpi*vg.Inch),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(c))
	return c.Image(), nil
}
