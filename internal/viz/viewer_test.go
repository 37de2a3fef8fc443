package viz

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func testFigure() Figure {
	return Figure{
		Name:   "angle",
		Title:  "Angle over time",
		XLabel: "time",
		YLabel: "angle",
		X:      []float64{0, 0.1, 0.2, 0.3},
		Y:      []float64{0.78, 0.77, 0.74, 0.70},
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestViewerDismissKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
		{Type: tea.KeySpace, Runes: []rune(" ")},
	}

	for _, k := range keys {
		m := newViewerModel(testFigure(), 0, 80, 24)
		next, cmd := m.Update(k)
		vm := next.(viewerModel)

		if !vm.dismissed {
			t.Errorf("key %q: expected dismissed", k.String())
		}
		if vm.interrupted {
			t.Errorf("key %q: expected not interrupted", k.String())
		}
		if !isQuit(cmd) {
			t.Errorf("key %q: expected quit command", k.String())
		}
	}
}

func TestViewerInterrupt(t *testing.T) {
	m := newViewerModel(testFigure(), 0, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	vm := next.(viewerModel)

	if !vm.interrupted {
		t.Error("expected interrupted")
	}
	if !isQuit(cmd) {
		t.Error("expected quit command")
	}
}

func TestViewerThemeCycle(t *testing.T) {
	m := newViewerModel(testFigure(), len(Themes)-1, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	vm := next.(viewerModel)

	if vm.theme != 0 {
		t.Errorf("expected theme to wrap to 0, got %d", vm.theme)
	}
	if cmd != nil {
		t.Error("expected no command")
	}
	if vm.dismissed {
		t.Error("theme change must not dismiss")
	}
}

func TestViewerResize(t *testing.T) {
	m := newViewerModel(testFigure(), 0, 0, 0)
	if m.width != defaultWidth || m.height != defaultHeight {
		t.Errorf("expected default size, got %dx%d", m.width, m.height)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	vm := next.(viewerModel)
	if vm.width != 120 || vm.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", vm.width, vm.height)
	}
}

func TestViewerView(t *testing.T) {
	m := newViewerModel(testFigure(), 0, 80, 24)

	view := m.View()
	if !strings.Contains(view, "Angle over time") {
		t.Error("expected title in view")
	}
	if !strings.Contains(view, "close") {
		t.Error("expected key hints in view")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.View() != "" {
		t.Error("expected empty view after dismissal")
	}
}

func TestViewerRejectsInvalidFigure(t *testing.T) {
	v := &Viewer{}
	err := v.Render(t.Context(), Figure{Name: "bad", X: []float64{1}, Y: nil})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestViewerRender(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"dismiss", "q", nil},
		{"interrupt", "\x03", ErrInterrupted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			v := &Viewer{Width: 60, Height: 16, Input: strings.NewReader(tt.input), Output: &out}

			err := v.Render(t.Context(), testFigure())
			if tt.want == nil && err != nil {
				t.Fatalf("expected dismissal, got %v", err)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestViewerRenderContextCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithTimeout(t.Context(), 200*time.Millisecond)
	defer cancel()

	v := &Viewer{Input: r, Output: io.Discard}
	err := v.Render(ctx, testFigure())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestThemeIndex(t *testing.T) {
	if i, ok := ThemeIndex("ocean"); !ok || Themes[i].Name != "ocean" {
		t.Errorf("expected ocean theme, got %d %v", i, ok)
	}
	if _, ok := ThemeIndex("nope"); ok {
		t.Error("expected unknown theme to be missing")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("expected one name per theme")
	}
}
