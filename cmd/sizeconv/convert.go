package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/sizeconv/internal/domain"
)

func newConvertCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert VALUE...",
		Short: "Convert values between mm, pt and px",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromUnit, err := domain.ParseUnit(from)
			if err != nil {
				return err
			}
			toUnit, err := domain.ParseUnit(to)
			if err != nil {
				return err
			}
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			out, err := a.converter.ConvertBatch(values, fromUnit, toUnit, a.convertOptions()...)
			if err != nil {
				return err
			}
			printValues(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "mm", "source unit: mm, pt or px")
	cmd.Flags().StringVar(&to, "to", "px", "target unit: mm, pt or px")
	cmd.Flags().BoolVar(&a.cfg.Direct, "direct", a.cfg.Direct, "do not round pixel results up")
	return cmd
}
