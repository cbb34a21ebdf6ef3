package sim

import (
	"context"
	"math"

	"github.com/san-kum/swingby/internal/dynamo"
	"github.com/san-kum/swingby/internal/physics"
)

// Simulator drives a fixed-step integrator over the two-body model and
// assembles the trajectory. It is not safe for concurrent use once
// metrics or observers are attached; see Sweep for parallel runs.
type Simulator struct {
	integrator dynamo.Integrator
	metrics    []dynamo.Metric
	observers  []dynamo.Observer
}

func New(integrator dynamo.Integrator) *Simulator {
	return &Simulator{
		integrator: integrator,
		metrics:    make([]dynamo.Metric, 0),
		observers:  make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Run integrates p.Steps fixed steps and returns p.Steps+1 samples.
// Sample 0 is p.Initial unchanged; sample i sits at time t0 + i*dt.
// A failed step aborts the run with a *dynamo.SimulationError.
func (s *Simulator) Run(ctx context.Context, p dynamo.Params) (dynamo.Trajectory, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}

	dyn := physics.NewTwoBody(p.Mu)

	times := make([]float64, p.Steps+1)
	for i := range times {
		times[i] = p.TimeAt(i)
	}

	traj := make(dynamo.Trajectory, 0, p.Steps+1)
	x := p.Initial
	traj = append(traj, x)
	s.notify(0, x)

	for i := 0; i < p.Steps; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		next, err := s.integrator.Step(dyn, x, p.Dt)
		if err != nil {
			return nil, &dynamo.SimulationError{Step: i, Time: times[i], State: x, Wrapped: err}
		}
		next.Time = times[i+1]

		x = next
		traj = append(traj, x)
		s.notify(i+1, x)
	}

	return traj, nil
}

// RunResult runs p with the attached metrics reset beforehand and
// collects their values together with the relative energy drift.
func (s *Simulator) RunResult(ctx context.Context, p dynamo.Params) (*dynamo.Result, error) {
	for _, m := range s.metrics {
		m.Reset()
	}

	traj, err := s.Run(ctx, p)
	if err != nil {
		return nil, err
	}

	result := &dynamo.Result{
		Params:     p,
		Trajectory: traj,
		Metrics:    make(map[string]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	tb := physics.NewTwoBody(p.Mu)
	initialEnergy := tb.Energy(traj[0])
	finalEnergy := tb.Energy(traj.Final())
	if initialEnergy != 0 && !math.IsInf(initialEnergy, 0) && !math.IsNaN(initialEnergy) {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	return result, nil
}

func (s *Simulator) notify(i int, x dynamo.State) {
	for _, m := range s.metrics {
		m.Observe(x)
	}
	for _, obs := range s.observers {
		obs.OnStep(i, x)
	}
}
