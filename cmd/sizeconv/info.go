package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the detected resolution and conversion constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := a.detector.Info()
			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintf(w, "current dpi:       %g\n", info.Current)
			if det, ok := a.detector.Last(); ok {
				fmt.Fprintf(w, "source:            %s\n", det.Source)
			}
			fmt.Fprintf(w, "default print dpi: %g\n", info.DefaultPrint)
			fmt.Fprintf(w, "points per inch:   %g\n", info.PointsPerInch)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
