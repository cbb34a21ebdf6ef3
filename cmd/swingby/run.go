package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/swingby/internal/analysis"
	"github.com/san-kum/swingby/internal/config"
	"github.com/san-kum/swingby/internal/dynamo"
	"github.com/san-kum/swingby/internal/integrators"
	"github.com/san-kum/swingby/internal/metrics"
	"github.com/san-kum/swingby/internal/sim"
	"github.com/san-kum/swingby/internal/store"
	"github.com/san-kum/swingby/internal/viz"
)

type runOptions struct {
	preset     string
	configFile string

	mu     float64
	dt     float64
	steps  int
	t0     float64
	x0     float64
	y0     float64
	vx0    float64
	vy0    float64
	out    string
	format string

	quiet bool
}

func newRunCmd() *cobra.Command {
	return newRunCmdWith(&runOptions{})
}

func newRunCmdWith(opts *runOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "integrate a trajectory and write it out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runSimulation(cmd, cfg, opts.quiet)
		},
	}

	def := config.DefaultConfig()
	cmd.Flags().StringVar(&opts.preset, "preset", "swingby", "start from a preset configuration")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "config file path (yaml), applied over the preset")
	cmd.Flags().Float64Var(&opts.mu, "mu", def.GravParam(), "gravitational parameter (m^3/s^2)")
	cmd.Flags().Float64Var(&opts.dt, "dt", def.Dt, "timestep (s)")
	cmd.Flags().IntVar(&opts.steps, "steps", def.Steps, "number of steps")
	cmd.Flags().Float64Var(&opts.t0, "t0", def.T0, "initial time (s)")
	cmd.Flags().Float64Var(&opts.x0, "x0", def.Initial.X, "initial x (m)")
	cmd.Flags().Float64Var(&opts.y0, "y0", def.Initial.Y, "initial y (m)")
	cmd.Flags().Float64Var(&opts.vx0, "vx0", def.Initial.VX, "initial vx (m/s)")
	cmd.Flags().Float64Var(&opts.vy0, "vy0", def.Initial.VY, "initial vy (m/s)")
	cmd.Flags().StringVar(&opts.out, "out", def.Output, "output file, - for stdout")
	cmd.Flags().StringVar(&opts.format, "format", def.Format, "output format (csv, json)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the summary")
	return cmd
}

// resolve layers the run configuration: preset, then config file, then
// any flag given explicitly on the command line.
func (o *runOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.GetPreset(o.preset)
	if cfg == nil {
		return nil, dynamo.ConfigError("unknown preset: %s (available: %v)", o.preset, config.ListPresets())
	}

	if o.configFile != "" {
		loaded, err := config.LoadOver(o.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mu") {
		cfg.SetMu(o.mu)
	}
	if flags.Changed("dt") {
		cfg.Dt = o.dt
	}
	if flags.Changed("steps") {
		cfg.Steps = o.steps
	}
	if flags.Changed("t0") {
		cfg.T0 = o.t0
	}
	if flags.Changed("x0") {
		cfg.Initial.X = o.x0
	}
	if flags.Changed("y0") {
		cfg.Initial.Y = o.y0
	}
	if flags.Changed("vx0") {
		cfg.Initial.VX = o.vx0
	}
	if flags.Changed("vy0") {
		cfg.Initial.VY = o.vy0
	}
	if flags.Changed("out") {
		cfg.Output = o.out
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, cfg *config.Config, quiet bool) error {
	p := cfg.Params()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := sim.New(integrators.NewRK4())
	for _, m := range metrics.Default(p.Mu) {
		s.AddMetric(m)
	}
	s.AddObserver(sim.NewLogObserver(logger, max(p.Steps/20, 1), p.Steps))

	logger.Info().
		Float64("mu", p.Mu).
		Float64("dt", p.Dt).
		Int("steps", p.Steps).
		Float64("r0", p.Initial.Radius()).
		Float64("v0", p.Initial.Speed()).
		Msg("starting integration")

	start := time.Now()
	result, err := s.RunResult(ctx, p)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logger.Info().
		Dur("elapsed", elapsed).
		Int("samples", len(result.Trajectory)).
		Msg("integration finished")

	summaryOut := cmd.OutOrStdout()
	if cfg.Output == "-" {
		summaryOut = cmd.ErrOrStderr()
		err = store.ExportTo(cmd.OutOrStdout(), "stdout", cfg.Format, result)
	} else {
		err = store.Export(cfg.Output, cfg.Format, result)
	}
	if err != nil {
		return err
	}
	if cfg.Output != "-" {
		logger.Info().Str("path", cfg.Output).Str("format", cfg.Format).Msg("trajectory written")
	}

	if !quiet {
		printSummary(summaryOut, result, elapsed)
	}
	return nil
}

func printSummary(w io.Writer, result *dynamo.Result, elapsed time.Duration) {
	sum := analysis.Summarize(result.Trajectory, result.Params.Mu)

	period := "no full revolution"
	if sum.Period > 0 {
		period = fmt.Sprintf("%.3f s", sum.Period)
	}

	fields := []viz.Field{
		viz.F("samples", "%d", sum.Samples),
		viz.F("duration", "%.3f s", sum.Duration),
		viz.F("min radius", "%.3f m (t=%.1f s)", sum.MinRadius, sum.MinRadiusTime),
		viz.F("max radius", "%.3f m (t=%.1f s)", sum.MaxRadius, sum.MaxRadiusTime),
		viz.F("revolutions", "%.3f", sum.Revolutions),
		viz.F("period", "%s", period),
		viz.F("eccentricity", "%.6f", sum.Eccentricity),
		viz.F("final energy drift", "%.3e", result.EnergyDrift),
	}
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fields = append(fields, viz.F(strings.ReplaceAll(name, "_", " "), "%.6g", result.Metrics[name]))
	}
	fields = append(fields, viz.F("elapsed", "%v", elapsed.Round(time.Millisecond)))

	fmt.Fprintln(w, viz.SummaryPanel("swingby", fields))
}
