package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

const (
	minSamples = 4
	// amplitudes below this count as a flat signal
	flatAmplitude = 1e-12
)

var (
	ErrTooShort       = errors.New("analysis: too few samples")
	ErrNonUniform     = errors.New("analysis: time axis is not increasing")
	ErrLengthMismatch = errors.New("analysis: time and signal lengths differ")
)

// Spectrum is the single-sided amplitude spectrum of a uniformly sampled
// signal with its mean removed.
type Spectrum struct {
	Freq      []float64
	Amplitude []float64
}

// PowerSpectrum transforms x sampled at times t.
func PowerSpectrum(t, x []float64) (*Spectrum, error) {
	n := len(x)
	if len(t) != n {
		return nil, ErrLengthMismatch
	}
	if n < minSamples {
		return nil, ErrTooShort
	}

	dt := (t[n-1] - t[0]) / float64(n-1)
	if !(dt > 0) {
		return nil, ErrNonUniform
	}

	mean := stat.Mean(x, nil)
	centered := make([]float64, n)
	for i, v := range x {
		centered[i] = v - mean
	}

	coeffs := fft.FFTReal(centered)
	half := n/2 + 1
	s := &Spectrum{
		Freq:      make([]float64, half),
		Amplitude: make([]float64, half),
	}
	for k := 0; k < half; k++ {
		s.Freq[k] = float64(k) / (float64(n) * dt)
		s.Amplitude[k] = 2 * cmplx.Abs(coeffs[k]) / float64(n)
	}
	return s, nil
}

// Peak returns the index of the strongest non-zero frequency, or -1 for a
// flat signal.
func (s *Spectrum) Peak() int {
	best, amp := -1, flatAmplitude
	for k := 1; k < len(s.Amplitude); k++ {
		if s.Amplitude[k] > amp {
			best, amp = k, s.Amplitude[k]
		}
	}
	return best
}

// DominantPeriod is the period of the strongest frequency in x, or 0 when x
// does not oscillate.
func DominantPeriod(t, x []float64) (float64, error) {
	s, err := PowerSpectrum(t, x)
	if err != nil {
		return 0, err
	}

	k := s.Peak()
	if k < 0 {
		return 0, nil
	}
	return 1 / s.Freq[k], nil
}
