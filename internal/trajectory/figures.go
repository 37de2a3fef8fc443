package trajectory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/trajviz/internal/metrics"
	"github.com/san-kum/trajviz/internal/viz"
)

// ErrUnknownKind indicates a figure kind outside Kinds.
var ErrUnknownKind = errors.New("trajectory: unknown figure kind")

// Kind selects which pair of series a figure plots.
type Kind string

const (
	KindAngle           Kind = "angle"            // angle over time
	KindAngularVelocity Kind = "angular_velocity" // angular velocity over time
	KindEnergy          Kind = "energy"           // H over time
	KindPhase           Kind = "phase"            // angular velocity over angle
)

// Kinds lists every figure kind.
var Kinds = []Kind{KindAngle, KindAngularVelocity, KindEnergy, KindPhase}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (available: %v)", ErrUnknownKind, s, Kinds)
}

const (
	labelTime            = "time (s)"
	labelAngle           = "angle (rad)"
	labelAngularVelocity = "angular velocity (rad/s)"
	labelEnergy          = "H = -cos(q) + p²/2"
)

// Build assembles the figures for kinds in order. The energy series is
// computed once, and only when a figure needs it.
func Build(s *Series, kinds []Kind) ([]viz.Figure, error) {
	var energy []float64
	figs := make([]viz.Figure, 0, len(kinds))

	for _, k := range kinds {
		switch k {
		case KindAngle:
			figs = append(figs, viz.Figure{
				Name: string(k), Title: "Angle over time",
				XLabel: labelTime, YLabel: labelAngle,
				X: s.Time, Y: s.Angle,
			})
		case KindAngularVelocity:
			figs = append(figs, viz.Figure{
				Name: string(k), Title: "Angular velocity over time",
				XLabel: labelTime, YLabel: labelAngularVelocity,
				X: s.Time, Y: s.AngularVelocity,
			})
		case KindEnergy:
			if energy == nil {
				h, err := metrics.Hamiltonian(s.Angle, s.AngularVelocity)
				if err != nil {
					return nil, err
				}
				energy = h
			}
			figs = append(figs, viz.Figure{
				Name: string(k), Title: "Energy over time",
				XLabel: labelTime, YLabel: labelEnergy,
				X: s.Time, Y: energy,
			})
		case KindPhase:
			figs = append(figs, viz.Figure{
				Name: string(k), Title: "Phase-space portrait",
				XLabel: labelAngle, YLabel: labelAngularVelocity,
				X: s.Angle, Y: s.AngularVelocity,
			})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
		}
	}
	return figs, nil
}
