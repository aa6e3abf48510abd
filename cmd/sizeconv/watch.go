package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/sizeconv/plugins/displaywatcher"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the display resolution whenever the display profile changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, cmd)
		},
	}

	cmd.Flags().DurationVar(&a.cfg.Debounce, "debounce", a.cfg.Debounce, "quiet period after a profile change before re-detecting")
	return cmd
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	report := func() {
		fmt.Fprintf(out, "current dpi: %g\n", a.detector.Detect())
	}

	w := displaywatcher.New(displaywatcher.Config{
		Path:          a.cfg.ProfilePath,
		DebounceDelay: a.cfg.Debounce,
		OnChange:      report,
	}, a.detector, a.logger)
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	report()
	<-ctx.Done()
	return nil
}
