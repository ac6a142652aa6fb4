package checkout

import (
	"context"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/client"
)

// SessionsPath is the path of the Checkout Sessions resource.
const SessionsPath = "/checkout/sessions"

// Send returns one page of Checkout Sessions.
func (p *ListCheckoutSession) Send(ctx context.Context, c client.Client) (*api.List[Session], error) {
	return client.Get[api.List[Session]](ctx, c, SessionsPath, p)
}

// Paginate returns a paginator over every Checkout Session matching p.
func (p *ListCheckoutSession) Paginate(c client.Client) (*client.ListPaginator[Session], error) {
	return client.Paginate[Session](c, SessionsPath, p)
}

// Send retrieves the Checkout Session id.
func (p *RetrieveCheckoutSession) Send(ctx context.Context, c client.Client, id string) (*Session, error) {
	path, err := client.ResourcePath(SessionsPath, id)
	if err != nil {
		return nil, err
	}
	return client.Get[Session](ctx, c, path, p)
}

// Send returns one page of the line items of the Checkout Session id.
func (p *ListLineItemsCheckoutSession) Send(ctx context.Context, c client.Client, id string) (*api.List[LineItem], error) {
	path, err := client.ResourcePath(SessionsPath, id, "line_items")
	if err != nil {
		return nil, err
	}
	return client.Get[api.List[LineItem]](ctx, c, path, p)
}

// Paginate returns a paginator over every line item of the Checkout Session id.
func (p *ListLineItemsCheckoutSession) Paginate(c client.Client, id string) (*client.ListPaginator[LineItem], error) {
	path, err := client.ResourcePath(SessionsPath, id, "line_items")
	if err != nil {
		return nil, err
	}
	return client.Paginate[LineItem](c, path, p)
}

// Send creates a Checkout Session.
func (p *CreateCheckoutSession) Send(ctx context.Context, c client.Client) (*Session, error) {
	if p == nil {
		return nil, api.ErrNilParams
	}
	return client.Post[Session](ctx, c, SessionsPath, p)
}

// Send expires the open Checkout Session id. Customers loading an expired
// session see a message saying the session has expired.
func (p *ExpireCheckoutSession) Send(ctx context.Context, c client.Client, id string) (*Session, error) {
	path, err := client.ResourcePath(SessionsPath, id, "expire")
	if err != nil {
		return nil, err
	}
	return client.Post[Session](ctx, c, path, p)
}
