package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the viewer
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Plot   lipgloss.Color
	Border lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Title:  lipgloss.Color("#00ffff"),
		Plot:   lipgloss.Color("#ff00ff"),
		Border: lipgloss.Color("#444466"),
		Muted:  lipgloss.Color("#666688"),
		Accent: lipgloss.Color("#ffff00"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#88ff88"),
		Plot:   lipgloss.Color("#00ff00"), // green phosphor
		Border: lipgloss.Color("#005500"),
		Muted:  lipgloss.Color("#338833"),
		Accent: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  lipgloss.Color("#ffffff"),
		Plot:   lipgloss.Color("#cccccc"),
		Border: lipgloss.Color("#888888"),
		Muted:  lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#e0f0ff"),
		Plot:   lipgloss.Color("#00a8cc"),
		Border: lipgloss.Color("#0077be"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#ffd700"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Title:  lipgloss.Color("#fff5f5"),
		Plot:   lipgloss.Color("#feca57"),
		Border: lipgloss.Color("#ff6b6b"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#ff9ff3"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// ThemeIndex returns the position of the named theme in Themes.
func ThemeIndex(name string) (int, bool) {
	for i, t := range Themes {
		if t.Name == name {
			return i, true
		}
	}
	return 0, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

type styles struct {
	title lipgloss.Style
	panel lipgloss.Style
	plot  lipgloss.Style
	hint  lipgloss.Style
	key   lipgloss.Style
}

func stylesFor(t Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Title),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		plot: lipgloss.NewStyle().Foreground(t.Plot),
		hint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		key: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
	}
}
