package window

import (
	"testing"

	"github.com/san-kum/trajviz/internal/viz"
)

func TestPager(t *testing.T) {
	p := pager{n: 3}
	for i := 0; i < 3; i++ {
		if p.done() {
			t.Fatalf("done after %d dismissals", i)
		}
		p.dismiss()
	}
	if !p.done() {
		t.Error("expected done after dismissing every figure")
	}

	p.dismiss()
	if p.cur != 3 {
		t.Errorf("expected cursor to stay at 3, got %d", p.cur)
	}
}

func TestRaster(t *testing.T) {
	f := viz.Figure{
		Name:   "phase",
		Title:  "Phase-space portrait",
		XLabel: "angle",
		YLabel: "angular velocity",
		X:      []float64{0.78, 0.5, 0, -0.5, -0.78},
		Y:      []float64{0, -1.5, -2.2, -1.5, 0},
	}

	img, err := Raster(f, 640, 480)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if absInt(b.Dx()-640) > 1 || absInt(b.Dy()-480) > 1 {
		t.Errorf("expected 640x480, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRasterInvalid(t *testing.T) {
	if _, err := Raster(viz.Figure{Name: "empty"}, 100, 100); err == nil {
		t.Error("expected error for empty figure")
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
