package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/swingby/internal/config"
)

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMU\tDT\tSTEPS\tR0\tV0\tOUTPUT")

	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		p := cfg.Params()
		fmt.Fprintf(w, "%s\t%.6g\t%g\t%d\t%.4g\t%.4g\t%s\n",
			name,
			p.Mu,
			p.Dt,
			p.Steps,
			p.Initial.Radius(),
			p.Initial.Speed(),
			cfg.Output,
		)
	}

	return w.Flush()
}
