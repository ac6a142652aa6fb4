// Package billingportal binds the Stripe Billing customer portal API: portal
// configurations and portal sessions.
package billingportal

import (
	"context"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/client"
)

const (
	// ConfigurationsPath is the path of the portal configurations resource.
	ConfigurationsPath = "/billing_portal/configurations"

	// SessionsPath is the path of the portal sessions resource.
	SessionsPath = "/billing_portal/sessions"
)

// Send returns one page of portal configurations.
func (p *ListBillingPortalConfiguration) Send(ctx context.Context, c client.Client) (*api.List[Configuration], error) {
	return client.Get[api.List[Configuration]](ctx, c, ConfigurationsPath, p)
}

// Paginate returns a paginator over every portal configuration matching p.
func (p *ListBillingPortalConfiguration) Paginate(c client.Client) (*client.ListPaginator[Configuration], error) {
	return client.Paginate[Configuration](c, ConfigurationsPath, p)
}

// Send retrieves the portal configuration id.
func (p *RetrieveBillingPortalConfiguration) Send(ctx context.Context, c client.Client, id string) (*Configuration, error) {
	path, err := client.ResourcePath(ConfigurationsPath, id)
	if err != nil {
		return nil, err
	}
	return client.Get[Configuration](ctx, c, path, p)
}

// Send creates a portal configuration.
func (p *CreateBillingPortalConfiguration) Send(ctx context.Context, c client.Client) (*Configuration, error) {
	if p == nil {
		return nil, api.ErrNilParams
	}
	return client.Post[Configuration](ctx, c, ConfigurationsPath, p)
}

// Send updates the portal configuration id.
func (p *UpdateBillingPortalConfiguration) Send(ctx context.Context, c client.Client, id string) (*Configuration, error) {
	path, err := client.ResourcePath(ConfigurationsPath, id)
	if err != nil {
		return nil, err
	}
	return client.Post[Configuration](ctx, c, path, p)
}

// Send creates a portal session.
func (p *CreateBillingPortalSession) Send(ctx context.Context, c client.Client) (*Session, error) {
	if p == nil {
		return nil, api.ErrNilParams
	}
	return client.Post[Session](ctx, c, SessionsPath, p)
}
