package main

import (
	"context"
	"encoding/json"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gitlab.com/ignitionrobotics/billing/checkout/internal/conf"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/client"
	"log"
)

type loggerKey struct{}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "checkout",
		Short:        "Manage Stripe Checkout Sessions and customer portal configurations",
		SilenceUsage: true,
	}
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return setupLogger(cmd)
	}
	addLoggerFlags(cmd.PersistentFlags())
	cmd.AddCommand(sessionsCmd())
	cmd.AddCommand(portalCmd())
	cmd.AddCommand(serveFakeCmd())
	return cmd
}

func addLoggerFlags(flags *pflag.FlagSet) {
	flags.Int("log-verbosity", 0, "log verbosity. Higher value means more log")
}

func setupLogger(cmd *cobra.Command) error {
	verbosity, err := cmd.Flags().GetInt("log-verbosity")
	if err != nil {
		return err
	}
	logger := stdr.New(log.New(cmd.ErrOrStderr(), "[Checkout] ", log.LstdFlags|log.Lmsgprefix))
	stdr.SetVerbosity(verbosity)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, loggerKey{}, logger))
	return nil
}

func getLogger(cmd *cobra.Command) logr.Logger {
	if cmd.Context() != nil {
		if v, ok := cmd.Context().Value(loggerKey{}).(logr.Logger); ok {
			return v
		}
	}
	return logr.Discard()
}

// loadConfig parses the environment configuration.
func loadConfig() (conf.Config, error) {
	var cfg conf.Config
	if err := cfg.Parse(); err != nil {
		return conf.Config{}, err
	}
	return cfg, nil
}

// newClient returns a Stripe client configured from the environment.
func newClient(cmd *cobra.Command) (client.Client, conf.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, conf.Config{}, err
	}
	c := client.NewStripeClient(cfg.Stripe,
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(getLogger(cmd)),
	)
	return c, cfg, nil
}

// printJSON writes v to the command output as indented JSON.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
