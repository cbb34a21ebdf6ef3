// Package analysis derives orbit characteristics from a finished trajectory.
//
// Everything here is post-processing; nothing feeds back into the
// integration:
//
//   - [Summarize]: radius extrema, swept angle, invariant drift
//   - [RevolutionPeriod]: time of the first full revolution about the origin
//   - [SpectralPeriod]: dominant period of x(t) from its power spectrum
//
// # Period Check
//
// For a circular orbit both estimates should agree with Kepler:
//
//	p, ok := analysis.RevolutionPeriod(traj)
//	want := physics.Period(mu, r0)
package analysis
