package viz

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type recorder struct {
	name string
	seen []string
	err  error
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Render(_ context.Context, f Figure) error {
	r.seen = append(r.seen, f.Name)
	return r.err
}

func TestFigureValidate(t *testing.T) {
	tests := []struct {
		name string
		fig  Figure
		ok   bool
	}{
		{"valid", Figure{X: []float64{0, 1}, Y: []float64{1, 2}}, true},
		{"single point", Figure{X: []float64{0}, Y: []float64{0}}, true},
		{"empty", Figure{}, false},
		{"mismatch", Figure{X: []float64{0, 1}, Y: []float64{1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fig.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidFigure) {
				t.Errorf("expected ErrInvalidFigure, got %v", err)
			}
		})
	}
}

func TestChain(t *testing.T) {
	a := &recorder{name: "a"}
	b := &recorder{name: "b"}
	c := Chain{a, b}

	if c.Name() != "a+b" {
		t.Errorf("expected name a+b, got %s", c.Name())
	}

	for _, name := range []string{"angle", "phase"} {
		if err := c.Render(context.Background(), Figure{Name: name}); err != nil {
			t.Fatal(err)
		}
	}

	if strings.Join(a.seen, ",") != "angle,phase" || strings.Join(b.seen, ",") != "angle,phase" {
		t.Errorf("unexpected render order: %v %v", a.seen, b.seen)
	}
}

func TestChainStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	a := &recorder{name: "a", err: boom}
	b := &recorder{name: "b"}

	err := Chain{a, b}.Render(context.Background(), Figure{Name: "angle"})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if len(b.seen) != 0 {
		t.Error("expected second renderer to be skipped")
	}
}

func TestChainCanceled(t *testing.T) {
	a := &recorder{name: "a"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := (Chain{a}).Render(ctx, Figure{Name: "angle"}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Width: 60, Height: 10}

	if err := p.Render(context.Background(), testFigure()); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "Angle over time\n") {
		t.Errorf("expected title first, got:\n%s", buf.String())
	}

	buf.Reset()
	one := Figure{Name: "angle", X: []float64{0}, Y: []float64{0}}
	if err := p.Render(context.Background(), one); err != nil {
		t.Fatalf("single point: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "angle\n") {
		t.Errorf("expected name as fallback title, got:\n%s", buf.String())
	}
}
