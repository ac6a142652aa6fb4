package fake

import (
	"context"
	"github.com/stretchr/testify/mock"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/client"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/params"
	"reflect"
)

var _ client.Client = (*Client)(nil)

// Client is a fake implementation of client.Client.
//
// Responses are given as the value the request decodes into. They are copied
// into the caller's output through reflection:
//
//	c.On("GetQuery", mock.Anything, "/checkout/sessions", params.Pairs{}, mock.Anything).
//		Return(api.List[checkout.Session]{Data: sessions}, nil)
type Client struct {
	mock.Mock
}

// GetQuery mocks a GetQuery call.
func (c *Client) GetQuery(ctx context.Context, path string, query params.Pairs, out interface{}) error {
	args := c.Called(ctx, path, query, out)
	return fill(out, args.Get(0), args.Error(1))
}

// SendForm mocks a SendForm call.
func (c *Client) SendForm(ctx context.Context, path string, body params.Pairs, method string, out interface{}) error {
	args := c.Called(ctx, path, body, method, out)
	return fill(out, args.Get(0), args.Error(1))
}

// fill copies res into out when the call succeeded.
func fill(out, res interface{}, err error) error {
	if err != nil || res == nil || out == nil {
		return err
	}
	dst := reflect.ValueOf(out).Elem()
	src := reflect.ValueOf(res)
	if src.Kind() == reflect.Ptr && src.Type() != dst.Type() {
		src = src.Elem()
	}
	dst.Set(src)
	return nil
}
