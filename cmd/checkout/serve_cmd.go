package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/ignitionrobotics/billing/checkout/internal/server"
	"os/signal"
	"syscall"
)

func serveFakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve-fake",
		Short: "Serve a fake Stripe API with seeded Checkout Sessions for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := getLogger(cmd)

			// Prepare the config
			cfg, err := server.Setup(logger)
			if err != nil {
				return err
			}

			seed, _ := cmd.Flags().GetInt64("seed")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Run the HTTP server with the given config
			return server.Run(ctx, cfg, seed, logger)
		},
	}
	cmd.Flags().Int64("seed", 1, "seed of the generated fixtures")
	return cmd
}
