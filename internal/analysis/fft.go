package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/swingby/internal/dynamo"
)

// PowerSpectrum returns the magnitudes of the non-negative frequency bins
// of data. Any length is accepted.
func PowerSpectrum(data []float64) []float64 {
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// SpectralPeriod estimates the dominant period of x(t). The trajectory must
// be uniformly sampled, which the driver guarantees. ok is false when there
// is no usable peak.
func SpectralPeriod(traj dynamo.Trajectory) (period float64, ok bool) {
	if len(traj) < 4 {
		return 0, false
	}

	xs := make([]float64, len(traj))
	mean := 0.0
	for i, s := range traj {
		xs[i] = s.X
		mean += s.X
	}
	mean /= float64(len(xs))
	for i := range xs {
		xs[i] -= mean
	}

	ps := PowerSpectrum(xs)

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0, false
	}

	dt := traj[1].Time - traj[0].Time
	return float64(len(xs)) * dt / float64(maxIdx), true
}
