package dynamo

import "math"

// State is the condition of the body at one instant: time in seconds,
// position in meters, velocity in meters per second.
type State struct {
	Time float64 `json:"t"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
}

// Radius is the distance from the attractor at the origin.
func (s State) Radius() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y)
}

func (s State) Speed() float64 {
	return math.Sqrt(s.VX*s.VX + s.VY*s.VY)
}

func (s State) IsValid() bool {
	for _, v := range [...]float64{s.Time, s.X, s.Y, s.VX, s.VY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Derivative is the time derivative of the phase-space part of a State.
type Derivative struct {
	DX, DY, DVX, DVY float64
}

// Advance returns s moved along d by h, leaving Time untouched.
func (s State) Advance(d Derivative, h float64) State {
	return State{
		Time: s.Time,
		X:    s.X + h*d.DX,
		Y:    s.Y + h*d.DY,
		VX:   s.VX + h*d.DVX,
		VY:   s.VY + h*d.DVY,
	}
}

// System is the right-hand side of the equations of motion.
type System interface {
	Derive(x State) (Derivative, error)
}

// Hamiltonian is implemented by systems with a conserved specific energy.
type Hamiltonian interface {
	Energy(x State) float64
}

// Integrator advances a state by one fixed step.
type Integrator interface {
	Step(sys System, x State, dt float64) (State, error)
}

type Metric interface {
	Name() string
	Observe(x State)
	Value() float64
	Reset()
}

// Observer is notified of every sample the driver produces, index 0 included.
type Observer interface {
	OnStep(i int, x State)
}

// MaxSteps bounds the step count of one run; the trajectory is held in
// memory, MaxSteps+1 samples of 40 bytes each.
const MaxSteps = 100_000_000

// Params are the inputs of one integration run. They are never mutated
// once the run starts.
type Params struct {
	Mu      float64 `json:"mu" yaml:"mu"`
	Dt      float64 `json:"dt" yaml:"dt"`
	Steps   int     `json:"steps" yaml:"steps"`
	Initial State   `json:"initial" yaml:"initial"`
}

// TimeAt returns the grid time of sample i. The grid is generated by
// multiplication so it never drifts from t0 + i*dt.
func (p Params) TimeAt(i int) float64 {
	return p.Initial.Time + float64(i)*p.Dt
}

// Check rejects parameters the driver cannot integrate. A zero step count
// is allowed and yields only the initial state.
func (p Params) Check() error {
	if math.IsNaN(p.Dt) || math.IsInf(p.Dt, 0) || p.Dt <= 0 {
		return ConfigError("dt must be positive, got %g", p.Dt)
	}
	if p.Steps < 0 {
		return ConfigError("steps must not be negative, got %d", p.Steps)
	}
	if p.Steps > MaxSteps {
		return ConfigError("steps must not exceed %d, got %d", MaxSteps, p.Steps)
	}
	if math.IsNaN(p.Mu) || math.IsInf(p.Mu, 0) {
		return ConfigError("mu must be finite, got %g", p.Mu)
	}
	if !p.Initial.IsValid() {
		return ConfigError("initial state must be finite")
	}
	return nil
}

// Validate is the strict form of Check used at configuration time: it
// also requires at least one step, a non-negative mu and a starting point
// away from the origin, even when mu is zero.
func (p Params) Validate() error {
	if err := p.Check(); err != nil {
		return err
	}
	if p.Steps == 0 {
		return ConfigError("steps must be positive, got 0")
	}
	if p.Mu < 0 {
		return ConfigError("mu must not be negative, got %g", p.Mu)
	}
	if p.Initial.Radius() == 0 {
		return ConfigError("initial position is at the attractor")
	}
	return nil
}

// Trajectory is the ordered sequence of samples of one run, indexed 0..N.
type Trajectory []State

func (tr Trajectory) Times() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.Time
	}
	return out
}

func (tr Trajectory) Radii() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.Radius()
	}
	return out
}

// Final returns the last sample, or the zero State for an empty trajectory.
func (tr Trajectory) Final() State {
	if len(tr) == 0 {
		return State{}
	}
	return tr[len(tr)-1]
}

type Result struct {
	Params      Params
	Trajectory  Trajectory
	Metrics     map[string]float64
	EnergyDrift float64
}
