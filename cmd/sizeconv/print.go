package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/sizeconv/pkg/convert"
)

func newPrintCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print-to-screen POINTS...",
		Short: "Convert printer font sizes in points to on-screen pixels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			opts := []convert.Option{convert.WithPrintResolution(a.cfg.PrintDPI)}
			if a.cfg.DPI > 0 {
				opts = append(opts, convert.WithResolution(a.cfg.DPI))
			}
			out, err := a.converter.PrintPointsToScreenPixelsBatch(values, opts...)
			if err != nil {
				return err
			}
			printValues(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().Float64Var(&a.cfg.PrintDPI, "print-dpi", a.cfg.PrintDPI, "printer resolution in dots per inch")
	return cmd
}
