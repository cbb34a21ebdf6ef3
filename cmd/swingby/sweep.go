package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/swingby/internal/config"
	"github.com/san-kum/swingby/internal/dynamo"
	"github.com/san-kum/swingby/internal/integrators"
	"github.com/san-kum/swingby/internal/sim"
)

func newSweepCmd() *cobra.Command {
	var (
		preset  string
		dts     []float64
		workers int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "integrate a preset at several timesteps in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetPreset(preset)
			if cfg == nil {
				return dynamo.ConfigError("unknown preset: %s (available: %v)", preset, config.ListPresets())
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			params, err := sweepParams(cfg.Params(), dts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			logger.Info().Str("preset", preset).Int("runs", len(params)).Int("workers", workers).Msg("starting sweep")
			start := time.Now()
			results, err := sim.Sweep(ctx, integrators.NewRK4(), params, workers)
			if err != nil {
				return err
			}
			logger.Info().Dur("elapsed", time.Since(start)).Msg("sweep finished")

			return printSweep(cmd, results)
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "leo_circular", "preset to sweep")
	cmd.Flags().Float64SliceVar(&dts, "dts", []float64{10, 5, 2, 1, 0.5}, "timesteps to compare")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "parallel runs")
	return cmd
}

// sweepParams derives one run per timestep, each covering the same time
// span as base.
func sweepParams(base dynamo.Params, dts []float64) ([]dynamo.Params, error) {
	if len(dts) == 0 {
		return nil, dynamo.ConfigError("no timesteps given")
	}
	span := base.Dt * float64(base.Steps)

	params := make([]dynamo.Params, len(dts))
	for i, dt := range dts {
		if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
			return nil, dynamo.ConfigError("timestep must be positive and finite, got %g", dt)
		}
		p := base
		p.Dt = dt
		p.Steps = int(math.Round(span / dt))
		if err := p.Validate(); err != nil {
			return nil, err
		}
		params[i] = p
	}
	return params, nil
}

func printSweep(cmd *cobra.Command, results []*dynamo.Result) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tFINAL R\tR ERR\tENERGY DRIFT")

	for _, r := range results {
		r0 := r.Params.Initial.Radius()
		final := r.Trajectory.Final().Radius()
		fmt.Fprintf(w, "%g\t%d\t%.3f\t%.3e\t%.3e\n",
			r.Params.Dt,
			r.Params.Steps,
			final,
			math.Abs(final-r0)/r0,
			r.EnergyDrift,
		)
	}

	return w.Flush()
}
