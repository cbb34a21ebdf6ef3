package analysis

import (
	"math"

	"github.com/san-kum/swingby/internal/dynamo"
	"github.com/san-kum/swingby/internal/physics"
)

type Summary struct {
	Samples       int     `json:"samples"`
	Duration      float64 `json:"duration"`
	MinRadius     float64 `json:"min_radius"`
	MinRadiusTime float64 `json:"min_radius_time"`
	MaxRadius     float64 `json:"max_radius"`
	MaxRadiusTime float64 `json:"max_radius_time"`
	SweptAngle    float64 `json:"swept_angle"`
	Revolutions   float64 `json:"revolutions"`
	Period        float64 `json:"period,omitempty"`
	EnergyDrift   float64 `json:"energy_drift"`
	MomentumDrift float64 `json:"momentum_drift"`
	Eccentricity  float64 `json:"eccentricity"`
}

// UnwrappedAngles returns the polar angle of every sample, unwrapped so
// consecutive values never jump by more than pi.
func UnwrappedAngles(traj dynamo.Trajectory) []float64 {
	angles := make([]float64, len(traj))
	for i, s := range traj {
		a := math.Atan2(s.Y, s.X)
		if i > 0 {
			prev := angles[i-1]
			for a-prev > math.Pi {
				a -= 2 * math.Pi
			}
			for a-prev < -math.Pi {
				a += 2 * math.Pi
			}
		}
		angles[i] = a
	}
	return angles
}

// RevolutionPeriod returns the time the body needs to sweep a full turn
// around the origin, interpolated between samples. ok is false when the
// trajectory never completes a revolution.
func RevolutionPeriod(traj dynamo.Trajectory) (period float64, ok bool) {
	if len(traj) < 2 {
		return 0, false
	}

	angles := UnwrappedAngles(traj)
	start := angles[0]
	for i := 1; i < len(angles); i++ {
		swept := math.Abs(angles[i] - start)
		if swept < 2*math.Pi {
			continue
		}
		prevSwept := math.Abs(angles[i-1] - start)
		frac := (2*math.Pi - prevSwept) / (swept - prevSwept)
		if math.IsNaN(frac) || math.IsInf(frac, 0) {
			frac = 0
		}
		t := traj[i-1].Time + frac*(traj[i].Time-traj[i-1].Time)
		return t - traj[0].Time, true
	}
	return 0, false
}

// Summarize computes the orbit summary of traj under gravitational parameter mu.
func Summarize(traj dynamo.Trajectory, mu float64) Summary {
	var sum Summary
	if len(traj) == 0 {
		return sum
	}

	tb := physics.NewTwoBody(mu)
	first := traj[0]

	sum.Samples = len(traj)
	sum.Duration = traj.Final().Time - first.Time
	sum.MinRadius, sum.MaxRadius = first.Radius(), first.Radius()
	sum.MinRadiusTime, sum.MaxRadiusTime = first.Time, first.Time

	e0 := tb.Energy(first)
	h0 := tb.AngularMomentum(first)

	for _, s := range traj {
		r := s.Radius()
		if r < sum.MinRadius {
			sum.MinRadius, sum.MinRadiusTime = r, s.Time
		}
		if r > sum.MaxRadius {
			sum.MaxRadius, sum.MaxRadiusTime = r, s.Time
		}
		if e0 != 0 && !math.IsInf(e0, 0) {
			sum.EnergyDrift = math.Max(sum.EnergyDrift, math.Abs(tb.Energy(s)-e0)/math.Abs(e0))
		}
		if h0 != 0 {
			sum.MomentumDrift = math.Max(sum.MomentumDrift, math.Abs(tb.AngularMomentum(s)-h0)/math.Abs(h0))
		}
	}

	angles := UnwrappedAngles(traj)
	sum.SweptAngle = angles[len(angles)-1] - angles[0]
	sum.Revolutions = math.Abs(sum.SweptAngle) / (2 * math.Pi)

	if p, ok := RevolutionPeriod(traj); ok {
		sum.Period = p
	}
	if mu > 0 && first.Radius() > 0 {
		sum.Eccentricity = tb.Eccentricity(first)
	}

	return sum
}
