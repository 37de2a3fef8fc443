package viz

import (
	"context"
	"fmt"
	"io"
)

// Printer writes each figure to W as text and returns immediately.
type Printer struct {
	W             io.Writer
	Width, Height int
}

func (p *Printer) Name() string { return "printer" }

func (p *Printer) Render(_ context.Context, f Figure) error {
	if err := f.Validate(); err != nil {
		return err
	}

	width, height := p.Width, p.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight - chromeRows
	}

	_, err := fmt.Fprintf(p.W, "%s\n\n%s\n\n", orDefault(f.Title, f.Name), Draw(f, width, height))
	return err
}
