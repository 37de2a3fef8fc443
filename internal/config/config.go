package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajviz/internal/trajectory"
	"github.com/san-kum/trajviz/internal/viz"
)

const (
	DefaultDataDir = "."
	DefaultWidth   = 100
	DefaultHeight  = 30
	DefaultFormat  = "png"
	DefaultTheme   = "cyberpunk"
)

// ErrUnknownPreset indicates a preset name that is neither built in nor
// defined in the config file.
var ErrUnknownPreset = errors.New("config: unknown preset")

type Config struct {
	DataDir string   `yaml:"data_dir"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Format  string   `yaml:"format"`
	OutDir  string   `yaml:"out_dir"`
	Theme   string   `yaml:"theme"`
	Presets []Preset `yaml:"presets"`
}

// Preset names a data file and the figures drawn from it, in order.
type Preset struct {
	Name        string   `yaml:"name"`
	File        string   `yaml:"file"`
	Figures     []string `yaml:"figures"`
	Description string   `yaml:"description"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Format:  DefaultFormat,
		Theme:   DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: plot size must be positive, got %dx%d", c.Width, c.Height)
	}
	if !viz.SupportedFormat(c.Format) {
		return fmt.Errorf("config: unsupported format %q (available: %v)", c.Format, viz.Formats)
	}
	if c.Theme != "" {
		if _, ok := viz.ThemeIndex(c.Theme); !ok {
			return fmt.Errorf("config: unknown theme %q (available: %v)", c.Theme, viz.ThemeNames())
		}
	}
	for _, p := range c.Presets {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p Preset) Validate() error {
	if p.Name == "" {
		return errors.New("config: preset without name")
	}
	if p.File == "" {
		return fmt.Errorf("config: preset %s has no data file", p.Name)
	}
	if len(p.Figures) == 0 {
		return fmt.Errorf("config: preset %s has no figures", p.Name)
	}
	if _, err := p.Kinds(); err != nil {
		return fmt.Errorf("config: preset %s: %w", p.Name, err)
	}
	return nil
}

// Kinds parses the preset's figure names.
func (p Preset) Kinds() ([]trajectory.Kind, error) {
	kinds := make([]trajectory.Kind, 0, len(p.Figures))
	for _, f := range p.Figures {
		k, err := trajectory.ParseKind(f)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Preset looks name up in the config file first, then in the built-in
// presets.
func (c *Config) Preset(name string) (*Preset, error) {
	for i := range c.Presets {
		if c.Presets[i].Name == name {
			p := c.Presets[i]
			return &p, nil
		}
	}
	if p := GetPreset(name); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, c.PresetNames())
}

// PresetNames returns built-in and configured preset names, sorted.
func (c *Config) PresetNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range ListPresets() {
		seen[n] = true
		names = append(names, n)
	}
	for _, p := range c.Presets {
		if !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}
	sort.Strings(names)
	return names
}
