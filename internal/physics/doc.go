// Package physics provides the planar two-body gravitational model.
//
// [TwoBody] implements [dynamo.System]: a point mass moving under the
// attraction of a fixed point mass at the origin, described by its
// gravitational parameter mu = G*M:
//
//	dx/dt  = vx
//	dy/dt  = vy
//	dvx/dt = -mu*x/r^3
//	dvy/dt = -mu*y/r^3
//
// It also implements [dynamo.Hamiltonian] for energy monitoring.
//
// # Energy Conservation
//
// Specific orbital energy and angular momentum are invariants of the exact
// flow; their drift measures integration error:
//
//	tb := physics.NewTwoBody(physics.MuEarth)
//	e0 := tb.Energy(traj[0])
//	drift := math.Abs(tb.Energy(traj.Final())-e0) / math.Abs(e0)
package physics
