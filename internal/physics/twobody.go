package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/swingby/internal/dynamo"
)

const (
	// G is the Newtonian constant of gravitation, m^3/kg/s^2.
	G = 6.67430e-11
	// MassEarth in kg.
	MassEarth = 5.972e24
	// MuEarth is the gravitational parameter of the Earth, m^3/s^2.
	MuEarth = G * MassEarth
)

// Acceleration returns the gravitational acceleration at (x, y) produced by
// a point mass with gravitational parameter mu fixed at the origin.
// It fails with dynamo.ErrSingularity when the position is at the origin
// and with dynamo.ErrNonFinite when r is NaN or overflows.
func Acceleration(x, y, mu float64) (ax, ay float64, err error) {
	r := math.Sqrt(x*x + y*y)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, 0, fmt.Errorf("%w: (%g, %g)", dynamo.ErrNonFinite, x, y)
	}
	if r == 0 {
		return 0, 0, dynamo.ErrSingularity
	}
	r3 := r * r * r
	return -mu * x / r3, -mu * y / r3, nil
}

type TwoBody struct {
	Mu float64
}

func NewTwoBody(mu float64) *TwoBody {
	return &TwoBody{Mu: mu}
}

func (tb *TwoBody) Derive(x dynamo.State) (dynamo.Derivative, error) {
	ax, ay, err := Acceleration(x.X, x.Y, tb.Mu)
	if err != nil {
		return dynamo.Derivative{}, err
	}
	return dynamo.Derivative{DX: x.VX, DY: x.VY, DVX: ax, DVY: ay}, nil
}

// Energy is the specific orbital energy v^2/2 - mu/r.
func (tb *TwoBody) Energy(x dynamo.State) float64 {
	v := x.Speed()
	return 0.5*v*v - tb.Mu/x.Radius()
}

// AngularMomentum is the z component of the specific angular momentum.
func (tb *TwoBody) AngularMomentum(x dynamo.State) float64 {
	return x.X*x.VY - x.Y*x.VX
}

// SemiMajorAxis of the osculating orbit through x. It is negative for
// hyperbolic states and infinite for parabolic ones.
func (tb *TwoBody) SemiMajorAxis(x dynamo.State) float64 {
	return -tb.Mu / (2 * tb.Energy(x))
}

// Eccentricity of the osculating orbit through x.
func (tb *TwoBody) Eccentricity(x dynamo.State) float64 {
	h := tb.AngularMomentum(x)
	e2 := 1 + 2*tb.Energy(x)*h*h/(tb.Mu*tb.Mu)
	if e2 < 0 {
		return 0
	}
	return math.Sqrt(e2)
}

// CircularSpeed is the speed of a circular orbit of radius r.
func CircularSpeed(mu, r float64) float64 {
	return math.Sqrt(mu / r)
}

func EscapeSpeed(mu, r float64) float64 {
	return math.Sqrt(2 * mu / r)
}

// Period is the Keplerian period of an orbit with semi-major axis a.
func Period(mu, a float64) float64 {
	return 2 * math.Pi * math.Sqrt(a*a*a/mu)
}
