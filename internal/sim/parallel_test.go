package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/swingby/internal/dynamo"
	"github.com/san-kum/swingby/internal/integrators"
	"github.com/san-kum/swingby/internal/sim"
)

var _ = Describe("Sweep", func() {
	It("runs each parameter set independently and keeps order", func() {
		params := []dynamo.Params{leo(10), leo(20), leo(30), leo(40)}
		params[2].Dt = 0.2

		results, err := sim.Sweep(context.Background(), integrators.NewRK4(), params, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))
		for i, r := range results {
			Expect(r.Params).To(Equal(params[i]))
			Expect(r.Trajectory).To(HaveLen(params[i].Steps + 1))
		}
	})

	It("matches sequential runs exactly", func() {
		p := leo(500)
		seq, err := sim.New(integrators.NewRK4()).Run(context.Background(), p)
		Expect(err).NotTo(HaveOccurred())

		results, err := sim.Sweep(context.Background(), integrators.NewRK4(), []dynamo.Params{p, p, p}, 0)
		Expect(err).NotTo(HaveOccurred())
		for _, r := range results {
			Expect(r.Trajectory).To(Equal(seq))
		}
	})

	It("fails the whole sweep when one run fails", func() {
		bad := leo(10)
		bad.Dt = -1
		_, err := sim.Sweep(context.Background(), integrators.NewRK4(), []dynamo.Params{leo(10), bad}, 0)
		Expect(err).To(MatchError(dynamo.ErrConfig))
		Expect(err.Error()).To(ContainSubstring("sweep run 1"))
	})
})
