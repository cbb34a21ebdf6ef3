package integrators

import (
	"github.com/san-kum/swingby/internal/dynamo"
	"github.com/san-kum/swingby/internal/physics"
)

// RK4 is the classical fourth-order Runge-Kutta stepper. Stage
// derivatives live on the stack; the stepper itself holds no state and is
// safe for concurrent use.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, dt float64) (dynamo.State, error) {
	k1, err := dyn.Derive(x)
	if err != nil {
		return dynamo.State{}, err
	}

	k2, err := dyn.Derive(x.Advance(k1, dt*0.5))
	if err != nil {
		return dynamo.State{}, err
	}

	k3, err := dyn.Derive(x.Advance(k2, dt*0.5))
	if err != nil {
		return dynamo.State{}, err
	}

	// stage 4 takes the full step
	k4, err := dyn.Derive(x.Advance(k3, dt))
	if err != nil {
		return dynamo.State{}, err
	}

	dt6 := dt / 6.0
	return dynamo.State{
		Time: x.Time + dt,
		X:    x.X + dt6*(k1.DX+2*k2.DX+2*k3.DX+k4.DX),
		Y:    x.Y + dt6*(k1.DY+2*k2.DY+2*k3.DY+k4.DY),
		VX:   x.VX + dt6*(k1.DVX+2*k2.DVX+2*k3.DVX+k4.DVX),
		VY:   x.VY + dt6*(k1.DVY+2*k2.DVY+2*k3.DVY+k4.DVY),
	}, nil
}

// StepTwoBody advances x by dt under a point mass with parameter mu at the origin.
func StepTwoBody(x dynamo.State, dt, mu float64) (dynamo.State, error) {
	return NewRK4().Step(physics.NewTwoBody(mu), x, dt)
}
