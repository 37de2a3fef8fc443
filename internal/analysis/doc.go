// Package analysis estimates spectral properties of recorded trajectories.
//
// The data files hold uniformly sampled runs, so the time column is reduced
// to a single step (t[n-1]-t[0])/(n-1) and the signal is transformed with a
// real FFT:
//
//	period, err := analysis.DominantPeriod(s.Time, s.Angle)
//	if err == nil && period > 0 {
//	    // oscillation period in the units of the time column
//	}
package analysis
