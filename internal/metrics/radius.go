package metrics

import (
	"math"

	"github.com/san-kum/swingby/internal/dynamo"
	"github.com/san-kum/swingby/internal/physics"
)

type Extremum int

const (
	Min Extremum = iota
	Max
)

// Radius records the smallest or largest distance from the attractor.
type Radius struct {
	name    string
	kind    Extremum
	value   float64
	samples int
}

func NewMinRadius() *Radius { return &Radius{name: "min_radius", kind: Min} }
func NewMaxRadius() *Radius { return &Radius{name: "max_radius", kind: Max} }

func (r *Radius) Name() string { return r.name }

func (r *Radius) Observe(x dynamo.State) {
	v := x.Radius()
	switch {
	case r.samples == 0:
		r.value = v
	case r.kind == Min:
		r.value = math.Min(r.value, v)
	default:
		r.value = math.Max(r.value, v)
	}
	r.samples++
}

func (r *Radius) Value() float64 { return r.value }

func (r *Radius) Reset() {
	r.value = 0
	r.samples = 0
}

// Default returns the metrics attached to every CLI run.
func Default(mu float64) []dynamo.Metric {
	tb := physics.NewTwoBody(mu)
	return []dynamo.Metric{
		NewEnergyDrift(tb),
		NewMomentumDrift(tb),
		NewMinRadius(),
		NewMaxRadius(),
	}
}
