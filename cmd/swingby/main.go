package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/swingby/internal/logging"
)

var (
	logLevel string
	logJSON  bool
	logger   = zerolog.Nop()
)

// main registers the commands and exits with status 1 when one fails.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("swingby failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "swingby",
		Short:         "planar two-body trajectory integrator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(cmd.ErrOrStderr(), logLevel, !logJSON)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON lines")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(newRunCmd(), newPlotCmd(), newOrbitCmd(), newReplayCmd(), presetsCmd, newSweepCmd())
	return rootCmd
}
