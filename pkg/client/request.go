package client

import (
	"context"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/params"
	"net/http"
	"net/url"
)

// Get serializes record into a query string, sends it to path and decodes
// the response as T. Serialization errors are returned before any request is
// sent.
func Get[T any](ctx context.Context, c Client, path string, record interface{}) (*T, error) {
	query, err := params.Encode(record)
	if err != nil {
		return nil, err
	}
	var out T
	if err = c.GetQuery(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Post serializes record into a form body, posts it to path and decodes the
// response as T.
func Post[T any](ctx context.Context, c Client, path string, record interface{}) (*T, error) {
	body, err := params.Encode(record)
	if err != nil {
		return nil, err
	}
	var out T
	if err = c.SendForm(ctx, path, body, http.MethodPost, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Paginate serializes record and returns a ListPaginator over path.
func Paginate[T api.Object](c Client, path string, record interface{}) (*ListPaginator[T], error) {
	query, err := params.Encode(record)
	if err != nil {
		return nil, err
	}
	return NewListPaginator[T](c, path, query), nil
}

// ResourcePath joins base and the escaped id, followed by any extra segments.
// It fails with api.ErrEmptyID or api.ErrIDTooLong when id cannot address a
// resource.
func ResourcePath(base, id string, segments ...string) (string, error) {
	if err := api.ValidateID(id); err != nil {
		return "", err
	}
	path := base + "/" + url.PathEscape(id)
	for _, s := range segments {
		path += "/" + s
	}
	return path, nil
}
