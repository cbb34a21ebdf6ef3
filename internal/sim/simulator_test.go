package sim_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/swingby/internal/dynamo"
	"github.com/san-kum/swingby/internal/integrators"
	"github.com/san-kum/swingby/internal/physics"
	"github.com/san-kum/swingby/internal/sim"
)

type countingMetric struct {
	count int
	sumR  float64
}

func (m *countingMetric) Name() string { return "mean_radius" }
func (m *countingMetric) Observe(x dynamo.State) {
	m.count++
	m.sumR += x.Radius()
}
func (m *countingMetric) Value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sumR / float64(m.count)
}
func (m *countingMetric) Reset() {
	m.count = 0
	m.sumR = 0
}

type recordingObserver struct {
	indices []int
}

func (o *recordingObserver) OnStep(i int, x dynamo.State) { o.indices = append(o.indices, i) }

// failingIntegrator wraps RK4 and fails on call number failAt (0-based).
type failingIntegrator struct {
	calls  int
	failAt int
}

func (f *failingIntegrator) Step(dyn dynamo.System, x dynamo.State, dt float64) (dynamo.State, error) {
	if f.calls == f.failAt {
		return dynamo.State{}, dynamo.ErrSingularity
	}
	f.calls++
	return integrators.NewRK4().Step(dyn, x, dt)
}

func leo(steps int) dynamo.Params {
	return dynamo.Params{
		Mu:      physics.MuEarth,
		Dt:      0.1,
		Steps:   steps,
		Initial: dynamo.State{X: 7.0e6, VY: 7.7e3},
	}
}

var _ = Describe("Simulator", func() {
	var (
		ctx context.Context
		s   *sim.Simulator
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = sim.New(integrators.NewRK4())
	})

	Describe("trajectory shape", func() {
		DescribeTable("produces steps+1 samples",
			func(steps int) {
				traj, err := s.Run(ctx, leo(steps))
				Expect(err).NotTo(HaveOccurred())
				Expect(traj).To(HaveLen(steps + 1))
			},
			Entry("no steps", 0),
			Entry("one step", 1),
			Entry("ten steps", 10),
			Entry("many steps", 2500),
		)

		It("returns only the initial state for zero steps", func() {
			p := leo(0)
			traj, err := s.Run(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj).To(Equal(dynamo.Trajectory{p.Initial}))
		})

		It("keeps the seed state exactly", func() {
			p := leo(5)
			p.Initial.Time = 12.5
			traj, err := s.Run(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj[0]).To(Equal(p.Initial))
		})

		It("places every sample on the multiplied time grid", func() {
			p := leo(1000)
			p.Initial.Time = 3.7
			traj, err := s.Run(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			for i, x := range traj {
				Expect(x.Time).To(Equal(3.7+float64(i)*0.1), "sample %d", i)
			}
		})

		It("chains samples through the stepper", func() {
			p := leo(20)
			traj, err := s.Run(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < p.Steps; i++ {
				next, err := integrators.StepTwoBody(traj[i], p.Dt, p.Mu)
				Expect(err).NotTo(HaveOccurred())
				Expect(traj[i+1].X).To(Equal(next.X))
				Expect(traj[i+1].Y).To(Equal(next.Y))
				Expect(traj[i+1].VX).To(Equal(next.VX))
				Expect(traj[i+1].VY).To(Equal(next.VY))
			}
		})
	})

	Describe("physics", func() {
		It("moves in a straight line without gravity", func() {
			p := dynamo.Params{
				Mu:      0,
				Dt:      0.5,
				Steps:   400,
				Initial: dynamo.State{X: 1000, Y: -250, VX: 3.5, VY: -12},
			}
			traj, err := s.Run(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			for i, x := range traj {
				elapsed := float64(i) * p.Dt
				Expect(x.X).To(BeNumerically("~", p.Initial.X+elapsed*p.Initial.VX, 1e-9))
				Expect(x.Y).To(BeNumerically("~", p.Initial.Y+elapsed*p.Initial.VY, 1e-9))
				Expect(x.VX).To(Equal(p.Initial.VX))
				Expect(x.VY).To(Equal(p.Initial.VY))
			}
		})

		It("holds a circular orbit radius over a full period", func() {
			r0 := 7.0e6
			period := physics.Period(physics.MuEarth, r0)
			dt := 1.0
			p := dynamo.Params{
				Mu:      physics.MuEarth,
				Dt:      dt,
				Steps:   int(math.Ceil(period / dt)),
				Initial: dynamo.State{X: r0, VY: physics.CircularSpeed(physics.MuEarth, r0)},
			}
			traj, err := s.Run(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			for _, r := range traj.Radii() {
				Expect(math.Abs(r-r0) / r0).To(BeNumerically("<", 1e-3))
			}
			// back near the start after one period
			final := traj.Final()
			Expect(math.Hypot(final.X-r0, final.Y) / r0).To(BeNumerically("<", 2e-3))
		})

		It("is bit-for-bit deterministic", func() {
			p := leo(3000)
			a, err := sim.New(integrators.NewRK4()).Run(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			b, err := sim.New(integrators.NewRK4()).Run(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})
	})

	Describe("failures", func() {
		It("rejects a non-positive step size", func() {
			p := leo(10)
			p.Dt = 0
			_, err := s.Run(ctx, p)
			Expect(err).To(MatchError(dynamo.ErrConfig))
		})

		It("rejects a negative step count", func() {
			p := leo(10)
			p.Steps = -1
			_, err := s.Run(ctx, p)
			Expect(err).To(MatchError(dynamo.ErrConfig))
		})

		It("rejects a step count that cannot be allocated", func() {
			p := leo(10)
			p.Steps = math.MaxInt
			var err error
			Expect(func() { _, err = s.Run(ctx, p) }).NotTo(Panic())
			Expect(err).To(MatchError(dynamo.ErrConfig))
		})

		It("surfaces the singularity with step context", func() {
			p := leo(10)
			p.Initial = dynamo.State{Time: 2, VX: 1}
			traj, err := s.Run(ctx, p)
			Expect(traj).To(BeNil())
			Expect(errors.Is(err, dynamo.ErrSingularity)).To(BeTrue())

			var se *dynamo.SimulationError
			Expect(errors.As(err, &se)).To(BeTrue())
			Expect(se.Step).To(Equal(0))
			Expect(se.Time).To(Equal(2.0))
		})

		It("reports the failing step index", func() {
			s = sim.New(&failingIntegrator{failAt: 3})
			_, err := s.Run(ctx, leo(10))

			var se *dynamo.SimulationError
			Expect(errors.As(err, &se)).To(BeTrue())
			Expect(se.Step).To(Equal(3))
			Expect(se.Time).To(BeNumerically("~", 0.3, 1e-12))
			Expect(se.Wrapped).To(MatchError(dynamo.ErrSingularity))
		})

		It("stops when the context is canceled", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := s.Run(canceled, leo(10))
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("metrics and observers", func() {
		It("feeds every sample to observers and metrics", func() {
			m := &countingMetric{}
			o := &recordingObserver{}
			s.AddMetric(m)
			s.AddObserver(o)

			result, err := s.RunResult(ctx, leo(10))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.count).To(Equal(11))
			Expect(o.indices).To(Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
			Expect(result.Metrics).To(HaveKey("mean_radius"))
			Expect(result.Trajectory).To(HaveLen(11))
		})

		It("resets metrics between runs", func() {
			m := &countingMetric{}
			s.AddMetric(m)

			_, err := s.RunResult(ctx, leo(10))
			Expect(err).NotTo(HaveOccurred())
			_, err = s.RunResult(ctx, leo(4))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.count).To(Equal(5))
		})

		It("reports a small energy drift for RK4", func() {
			result, err := s.RunResult(ctx, leo(5000))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.EnergyDrift).To(BeNumerically("<", 1e-9))
		})
	})
})
