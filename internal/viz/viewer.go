package viz

import (
	"context"
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// Terminal cells taken by the title and key hint rows plus the panel
	// border.
	chromeRows = 6
	chromeCols = 4
)

// Viewer shows each figure full-screen in the terminal and blocks until
// the user dismisses it.
type Viewer struct {
	// Width and Height size the first frame; the terminal size takes over
	// once it is known.
	Width, Height int
	Theme         string

	// Input and Output default to the process terminal.
	Input  io.Reader
	Output io.Writer

	theme int
}

func (v *Viewer) Name() string { return "viewer" }

func (v *Viewer) Render(ctx context.Context, f Figure) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if v.Theme != "" {
		if i, ok := ThemeIndex(v.Theme); ok {
			v.theme = i
		}
		v.Theme = ""
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if v.Input != nil {
		opts = append(opts, tea.WithInput(v.Input))
	}
	if v.Output != nil {
		opts = append(opts, tea.WithOutput(v.Output))
	} else {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(newViewerModel(f, v.theme, v.Width, v.Height), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	m := final.(viewerModel)
	v.theme = m.theme
	if m.interrupted {
		return ErrInterrupted
	}
	return nil
}

type viewerModel struct {
	fig           Figure
	theme         int
	width, height int
	dismissed     bool
	interrupted   bool
}

func newViewerModel(f Figure, theme, width, height int) viewerModel {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return viewerModel{fig: f, theme: theme, width: width, height: height}
}

func (m viewerModel) Init() tea.Cmd { return nil }

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", " ", "space":
			m.dismissed = true
			return m, tea.Quit
		case "ctrl+c":
			m.interrupted = true
			return m, tea.Quit
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m viewerModel) View() string {
	if m.dismissed || m.interrupted {
		return ""
	}

	st := stylesFor(Themes[m.theme])
	plot := Draw(m.fig, m.width-chromeCols, m.height-chromeRows)

	var b strings.Builder
	b.WriteString(st.title.Render(orDefault(m.fig.Title, m.fig.Name)))
	b.WriteString("\n")
	b.WriteString(st.panel.Render(st.plot.Render(plot)))
	b.WriteString("\n")
	b.WriteString(st.key.Render("q") + st.hint.Render(" close  "))
	b.WriteString(st.key.Render("t") + st.hint.Render(" theme ("+Themes[m.theme].Name+")  "))
	b.WriteString(st.key.Render("ctrl+c") + st.hint.Render(" abort"))
	return b.String()
}
