package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/billingportal"
)

func portalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portal",
		Short: "Manage the customer portal",
	}
	configurations := &cobra.Command{
		Use:   "configurations",
		Short: "Manage customer portal configurations",
	}
	configurations.AddCommand(portalConfigurationsListCmd())
	configurations.AddCommand(portalConfigurationsGetCmd())
	cmd.AddCommand(configurations)
	cmd.AddCommand(portalSessionCmd())
	return cmd
}

func portalConfigurationsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every customer portal configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}
			p := billingportal.NewListBillingPortalConfiguration()
			p.Limit = api.Ptr(cfg.PageSize)
			if cmd.Flags().Changed("active") {
				active, _ := cmd.Flags().GetBool("active")
				p.Active = &active
			}
			it, err := p.Paginate(c)
			if err != nil {
				return err
			}
			configurations, err := it.All(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, configurations)
		},
	}
	cmd.Flags().Bool("active", true, "only list active or inactive configurations")
	return cmd
}

func portalConfigurationsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONFIGURATION_ID",
		Short: "Retrieve a customer portal configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			cfg, err := billingportal.NewRetrieveBillingPortalConfiguration().Send(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, cfg)
		},
	}
}

func portalSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session CUSTOMER_ID",
		Short: "Create a customer portal session and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			p := billingportal.NewCreateBillingPortalSession(args[0])
			if v, _ := cmd.Flags().GetString("return-url"); len(v) > 0 {
				p.ReturnURL = &v
			}
			if v, _ := cmd.Flags().GetString("configuration"); len(v) > 0 {
				p.Configuration = &v
			}
			if v, _ := cmd.Flags().GetString("cancel-subscription"); len(v) > 0 {
				p.FlowData = billingportal.NewFlowDataParams(billingportal.FlowTypeSubscriptionCancel)
				p.FlowData.SubscriptionCancel = &billingportal.SubscriptionCancelFlowParams{Subscription: v}
			}
			session, err := p.Send(cmd.Context(), c)
			if err != nil {
				return err
			}
			return printJSON(cmd, session)
		},
	}
	cmd.Flags().String("return-url", "", "where the customer goes when leaving the portal")
	cmd.Flags().String("configuration", "", "portal configuration id, the default one when empty")
	cmd.Flags().String("cancel-subscription", "", "open the portal on the cancellation flow of this subscription")
	return cmd
}
