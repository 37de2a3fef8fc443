package viz

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	minPlotWidth  = 16
	minPlotHeight = 4

	// axisMargin is the width asciigraph spends on y-axis labels.
	axisMargin = 12

	// labelWidth is the y-axis label column of a traced plot.
	labelWidth = 10
)

// Draw renders f as text filling about width x height terminal cells.
func Draw(f Figure, width, height int) string {
	width = max(width, minPlotWidth)
	height = max(height, minPlotHeight)

	if nonDecreasing(f.X) {
		return drawSeries(f, width, height)
	}
	return drawTrace(f, width, height)
}

func drawSeries(f Figure, width, height int) string {
	plotWidth := max(width-axisMargin, minPlotWidth/2)

	// asciigraph leaves NaN samples as gaps but cannot scale around ±Inf.
	y := make([]float64, len(f.Y))
	for i, v := range f.Y {
		if isFinite(v) {
			y[i] = v
		} else {
			y[i] = math.NaN()
		}
	}
	data := resample(f.X, y, plotWidth)
	if !slices.ContainsFunc(data, isFinite) {
		return drawTrace(f, width, height)
	}

	caption := fmt.Sprintf("%s over %s [%s, %s]",
		orDefault(f.YLabel, "y"), orDefault(f.XLabel, "x"),
		formatTick(f.X[0]), formatTick(f.X[len(f.X)-1]))

	return asciigraph.Plot(data,
		asciigraph.Height(max(height-2, 1)),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// drawTrace joins consecutive points with lines on a Braille canvas.
func drawTrace(f Figure, width, height int) string {
	cols := max(width-labelWidth-2, minPlotWidth/2)
	rows := max(height-3, 2)
	c := NewCanvas(cols, rows)

	xlo, xhi, okX := bounds(f.X)
	ylo, yhi, okY := bounds(f.Y)
	if okX && okY {
		xr, yr := span(xlo, xhi), span(ylo, yhi)
		pw, ph := float64(cols*2-1), float64(rows*4-1)

		var px, py int
		connected := false
		for i := range f.X {
			x, y := f.X[i], f.Y[i]
			if !isFinite(x) || !isFinite(y) {
				connected = false
				continue
			}
			cx := int(math.Round((x - xlo) / xr * pw))
			cy := int(ph) - int(math.Round((y-ylo)/yr*ph))
			if connected {
				c.DrawLine(px, py, cx, cy)
			} else {
				c.Set(cx, cy)
			}
			px, py, connected = cx, cy, true
		}
	}

	var b strings.Builder
	for i, line := range c.Lines() {
		tick := ""
		switch i {
		case 0:
			tick = formatTick(yhi)
		case rows / 2:
			tick = formatTick((yhi + ylo) / 2)
		case rows - 1:
			tick = formatTick(ylo)
		}
		fmt.Fprintf(&b, "%*s │%s\n", labelWidth, tick, line)
	}
	fmt.Fprintf(&b, "%*s └%s\n", labelWidth, "", strings.Repeat("─", cols))

	lo, hi := formatTick(xlo), formatTick(xhi)
	gap := max(cols-len(lo)-len(hi), 1)
	fmt.Fprintf(&b, "%*s  %s%s%s\n", labelWidth, "", lo, strings.Repeat(" ", gap), hi)
	fmt.Fprintf(&b, "%*s  %s over %s", labelWidth, "", orDefault(f.YLabel, "y"), orDefault(f.XLabel, "x"))
	return b.String()
}

// resample linearly interpolates y onto n points evenly spaced in x. x must
// be finite and non-decreasing. Next to a NaN sample the nearer neighbour is
// taken as is.
func resample(x, y []float64, n int) []float64 {
	out := make([]float64, n)
	if len(y) == 1 {
		for i := range out {
			out[i] = y[0]
		}
		return out
	}

	x0, x1 := x[0], x[len(x)-1]
	if x0 == x1 {
		idx := make([]float64, len(y))
		for i := range idx {
			idx[i] = float64(i)
		}
		return resample(idx, y, n)
	}

	j := 0
	for i := range out {
		xi := x0
		if n > 1 {
			xi = x0 + (x1-x0)*float64(i)/float64(n-1)
		}
		for j < len(x)-2 && x[j+1] < xi {
			j++
		}

		dx := x[j+1] - x[j]
		if dx == 0 {
			out[i] = y[j+1]
			continue
		}
		t := math.Min(math.Max((xi-x[j])/dx, 0), 1)
		switch a, b := y[j], y[j+1]; {
		case !math.IsNaN(a) && !math.IsNaN(b):
			out[i] = a + t*(b-a)
		case t < 0.5:
			out[i] = a
		default:
			out[i] = b
		}
	}
	return out
}

// nonDecreasing reports whether x is finite and sorted ascending.
func nonDecreasing(x []float64) bool {
	for i, v := range x {
		if !isFinite(v) {
			return false
		}
		if i > 0 && v < x[i-1] {
			return false
		}
	}
	return len(x) > 0
}

func span(lo, hi float64) float64 {
	if hi-lo == 0 {
		return 1
	}
	return hi - lo
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
