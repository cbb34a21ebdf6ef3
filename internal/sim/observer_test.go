package sim_test

import (
	"bytes"
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/swingby/internal/integrators"
	"github.com/san-kum/swingby/internal/sim"
)

var _ = Describe("LogObserver", func() {
	It("logs progress every n samples at debug level", func() {
		var buf bytes.Buffer
		log := zerolog.New(&buf).Level(zerolog.DebugLevel)

		s := sim.New(integrators.NewRK4())
		s.AddObserver(sim.NewLogObserver(log, 5, 20))
		_, err := s.Run(context.Background(), leo(20))
		Expect(err).NotTo(HaveOccurred())

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		Expect(lines).To(HaveLen(5))
		Expect(lines[1]).To(ContainSubstring(`"step":5`))
		Expect(lines[1]).To(ContainSubstring(`"message":"integration progress"`))
	})

	It("stays quiet above debug level", func() {
		var buf bytes.Buffer
		log := zerolog.New(&buf).Level(zerolog.InfoLevel)

		s := sim.New(integrators.NewRK4())
		s.AddObserver(sim.NewLogObserver(log, 1, 20))
		_, err := s.Run(context.Background(), leo(20))
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.Len()).To(BeZero())
	})
})
