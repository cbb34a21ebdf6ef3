// Package dynamo provides the core value types for planar two-body
// trajectory integration.
//
// The package defines the types shared by every other layer:
//
//   - [State]: time, position and velocity of the body at one instant
//   - [Params]: immutable run parameters (mu, dt, step count, initial state)
//   - [Trajectory]: the ordered samples produced by one run
//   - [System]: the right-hand side of the equations of motion
//   - [Integrator]: a fixed-step numerical stepper
//
// # Example
//
//	p := dynamo.Params{Mu: physics.MuEarth, Dt: 0.1, Steps: 1000,
//		Initial: dynamo.State{X: 7.0e6, VY: 7.7e3}}
//	traj, err := sim.New(integrators.NewRK4()).Run(ctx, p)
//
// # Thread Safety
//
// All types here are plain values. A [Trajectory] handed out by the driver
// is never mutated again and may be read from multiple goroutines.
package dynamo
