package config

import "sort"

// Names of the built-in presets.
const (
	PresetNetzwerk    = "netzwerk3"
	PresetPendelMP    = "pendel_mp"
	PresetPendelGauss = "pendel_gauss"
	PresetPendel      = "pendel"
)

var pendulumFigures = []string{"angle", "energy", "phase"}

var Presets = map[string]Preset{
	PresetNetzwerk: {
		Name: PresetNetzwerk, File: "netzwerk3.data",
		Figures:     []string{"angle", "angular_velocity"},
		Description: "angle and angular velocity over time",
	},
	PresetPendelMP: {
		Name: PresetPendelMP, File: "pendel_mp.data",
		Figures:     pendulumFigures,
		Description: "pendulum, implicit midpoint rule",
	},
	PresetPendelGauss: {
		Name: PresetPendelGauss, File: "pendel_gauss.data",
		Figures:     pendulumFigures,
		Description: "pendulum, two-stage Gauss method",
	},
	PresetPendel: {
		Name: PresetPendel, File: "pendel.data",
		Figures:     pendulumFigures,
		Description: "pendulum, implicit Euler",
	},
}

// GetPreset returns a copy of the named built-in preset, or nil.
func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	p.Figures = append([]string(nil), p.Figures...)
	return &p
}

// ListPresets returns the built-in preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
