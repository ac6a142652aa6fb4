package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/checkout"
	"sort"
)

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage Checkout Sessions",
	}
	cmd.AddCommand(sessionsListCmd())
	cmd.AddCommand(sessionsGetCmd())
	cmd.AddCommand(sessionsLineItemsCmd())
	cmd.AddCommand(sessionsCreateCmd())
	cmd.AddCommand(sessionsExpireCmd())
	return cmd
}

func sessionsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Checkout Sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			p := checkout.NewListCheckoutSession()
			p.Limit = api.Ptr(cfg.PageSize)
			if v, _ := cmd.Flags().GetString("status"); len(v) > 0 {
				status, err := checkout.Statuses.Parse(v)
				if err != nil {
					return err
				}
				p.Status = &status
			}
			if v, _ := cmd.Flags().GetString("customer"); len(v) > 0 {
				p.Customer = &v
			}
			if v, _ := cmd.Flags().GetString("email"); len(v) > 0 {
				p.CustomerDetails = checkout.NewCustomerDetailsParams(v)
			}

			if all, _ := cmd.Flags().GetBool("all"); !all {
				list, err := p.Send(cmd.Context(), c)
				if err != nil {
					return err
				}
				return printJSON(cmd, list)
			}

			it, err := p.Paginate(c)
			if err != nil {
				return err
			}
			sessions, err := it.All(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, sessions)
		},
	}
	cmd.Flags().String("status", "", "only list sessions with this status (open, complete or expired)")
	cmd.Flags().String("customer", "", "only list sessions of this customer id")
	cmd.Flags().String("email", "", "only list sessions of this customer email")
	cmd.Flags().Bool("all", false, "follow the cursor through every page")
	return cmd
}

func sessionsGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get SESSION_ID",
		Short: "Retrieve a Checkout Session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			p := checkout.NewRetrieveCheckoutSession()
			p.Expand, _ = cmd.Flags().GetStringSlice("expand")
			session, err := p.Send(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, session)
		},
	}
	cmd.Flags().StringSlice("expand", nil, "fields to expand in the response")
	return cmd
}

func sessionsLineItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "line-items SESSION_ID",
		Short: "List every line item of a Checkout Session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}
			p := checkout.NewListLineItemsCheckoutSession()
			p.Limit = api.Ptr(cfg.PageSize)
			it, err := p.Paginate(c, args[0])
			if err != nil {
				return err
			}
			items, err := it.All(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	}
}

func sessionsCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a Checkout Session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			p, err := createSessionParams(cmd)
			if err != nil {
				return err
			}
			session, err := p.Send(cmd.Context(), c)
			if err != nil {
				return err
			}
			return printJSON(cmd, session)
		},
	}
	cmd.Flags().String("mode", string(checkout.ModePayment), "payment, setup or subscription")
	cmd.Flags().String("ui-mode", "", "hosted or embedded")
	cmd.Flags().String("currency", string(api.CurrencyUSD), "currency of the inline prices")
	cmd.Flags().StringToInt64("price", nil, "existing price id and quantity, as price_id=quantity")
	cmd.Flags().StringToInt64("product", nil, "inline product name and unit amount, as name=amount")
	cmd.Flags().String("customer", "", "existing customer id")
	cmd.Flags().String("customer-email", "", "email to prefill")
	cmd.Flags().String("success-url", "", "where to send the customer after paying")
	cmd.Flags().String("cancel-url", "", "where to send the customer after canceling")
	cmd.Flags().String("return-url", "", "where embedded sessions redirect to")
	cmd.Flags().StringToString("metadata", nil, "metadata as key=value")
	return cmd
}

// createSessionParams builds the request record from the create command flags.
func createSessionParams(cmd *cobra.Command) (*checkout.CreateCheckoutSession, error) {
	flags := cmd.Flags()
	p := checkout.NewCreateCheckoutSession()

	v, _ := flags.GetString("mode")
	mode, err := checkout.Modes.Parse(v)
	if err != nil {
		return nil, err
	}
	p.Mode = &mode

	if v, _ = flags.GetString("ui-mode"); len(v) > 0 {
		uiMode, err := checkout.UIModes.Parse(v)
		if err != nil {
			return nil, err
		}
		p.UIMode = &uiMode
	}

	v, _ = flags.GetString("currency")
	currency, err := api.Currencies.Parse(v)
	if err != nil {
		return nil, err
	}
	if mode == checkout.ModeSetup {
		p.Currency = &currency
	}

	prices, _ := flags.GetStringToInt64("price")
	for _, id := range sortedKeys(prices) {
		p.LineItems = append(p.LineItems, checkout.LineItemParams{
			Price:    api.Ptr(id),
			Quantity: api.Ptr(prices[id]),
		})
	}
	products, _ := flags.GetStringToInt64("product")
	for _, name := range sortedKeys(products) {
		data := checkout.NewPriceDataParams(currency)
		data.ProductData = checkout.NewProductDataParams(name)
		data.UnitAmount = api.Ptr(products[name])
		p.LineItems = append(p.LineItems, checkout.LineItemParams{
			PriceData: data,
			Quantity:  api.Ptr(int64(1)),
		})
	}

	for flag, field := range map[string]**string{
		"customer":       &p.Customer,
		"customer-email": &p.CustomerEmail,
		"success-url":    &p.SuccessURL,
		"cancel-url":     &p.CancelURL,
		"return-url":     &p.ReturnURL,
	} {
		if v, _ := flags.GetString(flag); len(v) > 0 {
			*field = api.Ptr(v)
		}
	}

	if metadata, _ := flags.GetStringToString("metadata"); len(metadata) > 0 {
		p.Metadata = metadata
	}
	return p, nil
}

func sessionsExpireCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expire SESSION_ID",
		Short: "Expire an open Checkout Session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			session, err := checkout.NewExpireCheckoutSession().Send(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, session)
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
