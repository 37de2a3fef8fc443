package metrics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrLengthMismatch indicates angle and angular velocity series of
	// different lengths.
	ErrLengthMismatch = errors.New("metrics: angle and angular velocity lengths differ")

	// ErrEmpty indicates a summary request over no samples.
	ErrEmpty = errors.New("metrics: no samples")
)

// Hamiltonian returns -cos(q) + p²/2 for every (q, p) pair.
func Hamiltonian(angle, angularVelocity []float64) ([]float64, error) {
	if len(angle) != len(angularVelocity) {
		return nil, ErrLengthMismatch
	}

	h := make([]float64, len(angle))
	for i, q := range angle {
		p := angularVelocity[i]
		h[i] = -math.Cos(q) + p*p/2
	}
	return h, nil
}

// Summary describes an energy series.
type Summary struct {
	Samples  int
	Initial  float64
	Mean     float64
	Min      float64
	Max      float64
	MaxDrift float64 // max |H_i - H_0| / |H_0|, zero when H_0 is zero
}

func Summarize(h []float64) (Summary, error) {
	if len(h) == 0 {
		return Summary{}, ErrEmpty
	}

	s := Summary{
		Samples: len(h),
		Initial: h[0],
		Mean:    stat.Mean(h, nil),
		Min:     floats.Min(h),
		Max:     floats.Max(h),
	}

	if s.Initial != 0 {
		for _, e := range h {
			drift := math.Abs(e-s.Initial) / math.Abs(s.Initial)
			s.MaxDrift = math.Max(s.MaxDrift, drift)
		}
	}
	return s, nil
}
