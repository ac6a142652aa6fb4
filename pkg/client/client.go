package client

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-logr/logr"
	"github.com/stripe/stripe-go/v72"
	"gitlab.com/ignitionrobotics/billing/checkout/internal/conf"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/params"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIVersion is the Stripe API version the bindings in this module were
// written against. It is sent as the Stripe-Version header unless overridden.
const APIVersion = "2024-04-10"

// Client dispatches requests to the Stripe API and decodes their JSON
// responses into the value pointed to by out. Parameters arrive already
// serialized so that encoding failures happen before any network I/O.
type Client interface {
	// GetQuery sends a GET request to path with query as its query string.
	GetQuery(ctx context.Context, path string, query params.Pairs, out interface{}) error

	// SendForm sends body as a form-urlencoded request body to path using the
	// given HTTP method.
	SendForm(ctx context.Context, path string, body params.Pairs, method string, out interface{}) error
}

// stripeClient implements Client using the Stripe HTTP API.
type stripeClient struct {
	// http performs the requests.
	http *http.Client

	// url is the API base URL including the /v1 prefix.
	url string

	// secret is sent as the bearer token.
	secret string

	// version is sent as the Stripe-Version header.
	version string

	// timeout is applied to a copy of http, so a shared client is never mutated.
	timeout time.Duration

	logger logr.Logger
}

// Option configures the client returned by NewClient.
type Option func(c *stripeClient)

// WithHTTPClient sets the http.Client used to perform requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *stripeClient) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets a timeout on every request. It is set on a copy of the
// HTTP client, so a client given to WithHTTPClient is left untouched.
func WithTimeout(timeout time.Duration) Option {
	return func(c *stripeClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithBaseURL points the client to another Stripe compatible backend. The
// /v1 prefix is appended to it.
func WithBaseURL(url string) Option {
	return func(c *stripeClient) {
		if len(url) > 0 {
			c.url = strings.TrimSuffix(url, "/") + "/v1"
		}
	}
}

// WithAPIVersion overrides the Stripe-Version header.
func WithAPIVersion(version string) Option {
	return func(c *stripeClient) {
		if len(version) > 0 {
			c.version = version
		}
	}
}

// WithLogger sets the logger requests are logged to. Requests and responses
// are logged at V(1), API errors at V(0).
func WithLogger(logger logr.Logger) Option {
	return func(c *stripeClient) {
		c.logger = logger.WithName("Client")
	}
}

// NewClient initializes a new Client talking to the Stripe API with the given
// secret key.
func NewClient(secret string, opts ...Option) Client {
	c := &stripeClient{
		http:    &http.Client{},
		url:     stripe.APIURL + "/v1",
		secret:  secret,
		version: APIVersion,
		logger:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		h := *c.http
		h.Timeout = c.timeout
		c.http = &h
	}
	return c
}

// NewStripeClient initializes a new Client using the provided conf.Stripe config.
func NewStripeClient(cfg conf.Stripe, opts ...Option) Client {
	base := []Option{
		WithBaseURL(cfg.URL),
		WithAPIVersion(cfg.Version),
	}
	return NewClient(cfg.SecretKey, append(base, opts...)...)
}

// GetQuery implements Client.
func (c *stripeClient) GetQuery(ctx context.Context, path string, query params.Pairs, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, out)
}

// SendForm implements Client.
func (c *stripeClient) SendForm(ctx context.Context, path string, body params.Pairs, method string, out interface{}) error {
	return c.do(ctx, method, path, body, out)
}

func (c *stripeClient) do(ctx context.Context, method, path string, pairs params.Pairs, out interface{}) error {
	uri := c.url + path
	encoded := pairs.Encode()

	var body io.Reader
	switch method {
	case http.MethodGet, http.MethodDelete:
		if len(encoded) > 0 {
			uri += "?" + encoded
		}
	default:
		body = strings.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Stripe-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	c.logger.V(1).Info("request", "method", method, "path", path, "params", len(pairs))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: failed to read body: %w", method, path, err)
	}

	c.logger.V(1).Info("response", "method", method, "path", path, "status", resp.StatusCode)

	if !respCode2xx(resp.StatusCode) {
		apiErr := decodeError(resp, data)
		c.logger.Error(apiErr, "stripe api error", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return api.Decode(data, out)
}

// decodeError decodes an error from the Stripe API. Bodies that are not a
// Stripe error envelope are kept as the error message.
func decodeError(resp *http.Response, data []byte) *stripe.Error {
	var envelope struct {
		Error *stripe.Error `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Error == nil {
		msg := strings.TrimSpace(string(data))
		if len(msg) == 0 {
			msg = http.StatusText(resp.StatusCode)
		}
		envelope.Error = &stripe.Error{
			Msg:  msg,
			Type: stripe.ErrorTypeAPI,
		}
	}
	envelope.Error.HTTPStatusCode = resp.StatusCode
	if id := resp.Header.Get("Request-Id"); len(id) > 0 {
		envelope.Error.RequestID = id
	}
	return envelope.Error
}

func respCode2xx(code int) bool { return code >= 200 && code < 300 }
