package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/swingby/internal/analysis"
	"github.com/san-kum/swingby/internal/dynamo"
	"github.com/san-kum/swingby/internal/store"
	"github.com/san-kum/swingby/internal/viz"
)

func newPlotCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "plot [csv]",
		Short: "plot x, y and radius of a written trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			traj, err := store.LoadCSV(args[0])
			if err != nil {
				return err
			}
			if len(traj) == 0 {
				return fmt.Errorf("%s: no samples", args[0])
			}

			xs := make([]float64, len(traj))
			ys := make([]float64, len(traj))
			for i, s := range traj {
				xs[i] = s.X
				ys[i] = s.Y
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, viz.Title.Render(fmt.Sprintf("%s (%d samples, t=%.1f..%.1f s)",
				args[0], len(traj), traj[0].Time, traj.Final().Time)))
			fmt.Fprintln(out)
			fmt.Fprintln(out, viz.PlotSeries(xs, "x (m)", width, height))
			fmt.Fprintln(out)
			fmt.Fprintln(out, viz.PlotSeries(ys, "y (m)", width, height))
			fmt.Fprintln(out)
			fmt.Fprintln(out, viz.PlotSeries(traj.Radii(), "r (m)", width, height))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "plot width")
	cmd.Flags().IntVar(&height, "height", 12, "plot height")
	return cmd
}

func newOrbitCmd() *cobra.Command {
	var (
		width, height int
		svgPath       string
	)
	cmd := &cobra.Command{
		Use:   "orbit [csv]",
		Short: "draw the x/y path of a written trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			traj, err := store.LoadCSV(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, viz.OrbitStyle.Render(viz.RenderOrbit(traj, width, height)))

			fields := []viz.Field{viz.F("samples", "%d", len(traj))}
			if p, ok := analysis.RevolutionPeriod(traj); ok {
				fields = append(fields, viz.F("period", "%.3f s", p))
			} else {
				fields = append(fields, viz.F("period", "no full revolution"))
			}
			if p, ok := analysis.SpectralPeriod(traj); ok {
				fields = append(fields, viz.F("spectral period", "%.3f s", p))
			}
			fmt.Fprintln(out, viz.SummaryPanel(args[0], fields))

			if svgPath != "" {
				if err := writeSVG(svgPath, traj); err != nil {
					return err
				}
				logger.Info().Str("path", svgPath).Msg("orbit svg written")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 60, "canvas width in cells")
	cmd.Flags().IntVar(&height, "height", 30, "canvas height in cells")
	cmd.Flags().StringVar(&svgPath, "svg", "", "also write the orbit as an svg image")
	return cmd
}

func newReplayCmd() *cobra.Command {
	var frames, fps int
	cmd := &cobra.Command{
		Use:   "replay [csv]",
		Short: "animate a written trajectory in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			traj, err := store.LoadCSV(args[0])
			if err != nil {
				return err
			}
			if len(traj) == 0 {
				return fmt.Errorf("%s: no samples", args[0])
			}
			logger.Debug().Str("path", args[0]).Int("samples", len(traj)).Msg("starting replay")
			return viz.Replay(traj, frames, fps)
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 600, "number of animation frames")
	cmd.Flags().IntVar(&fps, "fps", 30, "frame rate")
	return cmd
}

func writeSVG(path string, traj dynamo.Trajectory) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return dynamo.OutputError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = dynamo.OutputError(path, cerr)
		}
	}()

	if err := viz.WriteOrbitSVG(f, traj, 800, 800); err != nil {
		return dynamo.OutputError(path, err)
	}
	return nil
}
