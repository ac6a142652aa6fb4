package client_test

import (
	"context"
	"errors"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v72"
	"gitlab.com/ignitionrobotics/billing/checkout/internal/conf"
	"gitlab.com/ignitionrobotics/billing/checkout/internal/server"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/checkout"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/client"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/fake"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/params"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type clientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientTestSuite))
}

func (s *clientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *clientTestSuite) TestGetQuery() {
	var got *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object": "list", "data": [], "has_more": false, "url": "/v1/checkout/sessions"}`))
	}))
	defer ts.Close()

	c := client.NewClient("sk_test_1", client.WithBaseURL(ts.URL+"/"))

	var list api.List[checkout.Session]
	query := params.Pairs{{Key: "limit", Value: "3"}, {Key: "expand[0]", Value: "data.customer"}}
	s.Require().NoError(c.GetQuery(s.ctx, "/checkout/sessions", query, &list))

	s.Require().NotNil(got)
	s.Assert().Equal(http.MethodGet, got.Method)
	s.Assert().Equal("/v1/checkout/sessions", got.URL.Path)
	s.Assert().Equal("limit=3&expand[0]=data.customer", got.URL.RawQuery)
	s.Assert().Equal("Bearer sk_test_1", got.Header.Get("Authorization"))
	s.Assert().Equal(client.APIVersion, got.Header.Get("Stripe-Version"))
	s.Assert().Empty(got.Header.Get("Content-Type"))
	s.Assert().Equal("list", list.Object)
}

func (s *clientTestSuite) TestSendForm() {
	var body string
	var contentType, version string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		contentType = r.Header.Get("Content-Type")
		version = r.Header.Get("Stripe-Version")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := client.NewStripeClient(conf.Stripe{SecretKey: "sk_test_1", URL: ts.URL, Version: "2023-10-16"})

	pairs := params.Pairs{{Key: "metadata[drop]", Value: ""}, {Key: "mode", Value: "payment"}}
	s.Require().NoError(c.SendForm(s.ctx, "/checkout/sessions", pairs, http.MethodPost, nil))

	s.Assert().Equal("metadata[drop]=&mode=payment", body)
	s.Assert().Equal("application/x-www-form-urlencoded", contentType)
	s.Assert().Equal("2023-10-16", version)
}

func (s *clientTestSuite) TestAPIError() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Request-Id", "req_123")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"type": "invalid_request_error", "code": "parameter_missing", "param": "mode", "message": "Missing required param: mode."}}`))
	}))
	defer ts.Close()

	c := client.NewClient("sk_test_1", client.WithBaseURL(ts.URL))
	err := c.SendForm(s.ctx, "/checkout/sessions", params.Pairs{}, http.MethodPost, nil)

	var stripeErr *stripe.Error
	s.Require().True(errors.As(err, &stripeErr))
	s.Assert().Equal(http.StatusBadRequest, stripeErr.HTTPStatusCode)
	s.Assert().Equal(stripe.ErrorTypeInvalidRequest, stripeErr.Type)
	s.Assert().Equal(stripe.ErrorCodeParameterMissing, stripeErr.Code)
	s.Assert().Equal("mode", stripeErr.Param)
	s.Assert().Equal("req_123", stripeErr.RequestID)
}

func (s *clientTestSuite) TestNonJSONError() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := client.NewClient("sk_test_1", client.WithBaseURL(ts.URL))
	err := c.GetQuery(s.ctx, "/checkout/sessions", params.Pairs{}, nil)

	var stripeErr *stripe.Error
	s.Require().True(errors.As(err, &stripeErr))
	s.Assert().Equal(http.StatusBadGateway, stripeErr.HTTPStatusCode)
	s.Assert().Equal(stripe.ErrorTypeAPI, stripeErr.Type)
	s.Assert().Equal("upstream unavailable", stripeErr.Msg)
}

func (s *clientTestSuite) TestDecodeError() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"object": "list", "has_more": false, "url": "/v1/checkout/sessions"}`))
	}))
	defer ts.Close()

	c := client.NewClient("sk_test_1", client.WithBaseURL(ts.URL))

	var list api.List[checkout.Session]
	err := c.GetQuery(s.ctx, "/checkout/sessions", params.Pairs{}, &list)
	var missing *api.MissingFieldError
	s.Require().True(errors.As(err, &missing))
	s.Assert().Equal("data", missing.Path)
}

func (s *clientTestSuite) TestTimeout() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	c := client.NewClient("sk_test_1", client.WithBaseURL(ts.URL), client.WithTimeout(20*time.Millisecond))
	s.Assert().Error(c.GetQuery(s.ctx, "/checkout/sessions", params.Pairs{}, nil))
}

func (s *clientTestSuite) TestTimeoutKeepsSharedClient() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	shared := &http.Client{}
	orders := [][]client.Option{
		{client.WithHTTPClient(shared), client.WithTimeout(20 * time.Millisecond)},
		{client.WithTimeout(20 * time.Millisecond), client.WithHTTPClient(shared)},
	}
	for _, opts := range orders {
		c := client.NewClient("sk_test_1", append([]client.Option{client.WithBaseURL(ts.URL)}, opts...)...)
		s.Assert().Error(c.GetQuery(s.ctx, "/checkout/sessions", params.Pairs{}, nil))
		s.Assert().Zero(shared.Timeout)
	}
}

func (s *clientTestSuite) TestCanceledContext() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	c := client.NewClient("sk_test_1", client.WithBaseURL(ts.URL), client.WithHTTPClient(ts.Client()))
	err := c.GetQuery(ctx, "/checkout/sessions", params.Pairs{}, nil)
	s.Assert().ErrorIs(err, context.Canceled)
}

func (s *clientTestSuite) TestResourcePath() {
	path, err := client.ResourcePath("/checkout/sessions", "cs_1", "line_items")
	s.Require().NoError(err)
	s.Assert().Equal("/checkout/sessions/cs_1/line_items", path)

	_, err = client.ResourcePath("/checkout/sessions", "")
	s.Assert().ErrorIs(err, api.ErrEmptyID)

	_, err = client.ResourcePath("/checkout/sessions", "  ")
	s.Assert().ErrorIs(err, api.ErrEmptyID)

	_, err = client.ResourcePath("/checkout/sessions", "cs_"+strings.Repeat("a", api.MaxIDLength))
	s.Assert().ErrorIs(err, api.ErrIDTooLong)
}

type paginatorTestSuite struct {
	suite.Suite
	Server *server.Server
	HTTP   *httptest.Server
	Client client.Client
	ctx    context.Context
}

func TestPaginatorSuite(t *testing.T) {
	suite.Run(t, new(paginatorTestSuite))
}

func (s *paginatorTestSuite) SetupTest() {
	store := server.NewStore(3)
	store.Seed(7)

	cfg := conf.Config{Stripe: conf.Stripe{SecretKey: "sk_test_1"}}
	s.Server = server.NewServer(server.NewOptions(cfg, store, logr.Discard()))
	s.HTTP = httptest.NewServer(s.Server.Handler())
	s.Client = client.NewClient("sk_test_1", client.WithBaseURL(s.HTTP.URL))
	s.ctx = context.Background()
}

func (s *paginatorTestSuite) TearDownTest() {
	s.HTTP.Close()
}

func (s *paginatorTestSuite) TestAllPagesInOrder() {
	want := s.Server.Store().Sessions(nil)

	it := client.NewListPaginator[checkout.Session](s.Client, checkout.SessionsPath, params.Pairs{{Key: "limit", Value: "3"}})
	got, err := it.All(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, len(want))
	for i := range want {
		s.Assert().Equal(want[i].ID, got[i].ID)
	}
}

func (s *paginatorTestSuite) TestDropsEndingBefore() {
	want := s.Server.Store().Sessions(nil)

	query := params.Pairs{{Key: "limit", Value: "2"}, {Key: "ending_before", Value: want[3].ID}}
	it := client.NewListPaginator[checkout.Session](s.Client, checkout.SessionsPath, query)
	got, err := it.All(s.ctx)
	s.Require().NoError(err)
	s.Assert().Len(got, len(want))
}

func (s *paginatorTestSuite) TestStopsOnError() {
	c := client.NewClient("sk_test_wrong", client.WithBaseURL(s.HTTP.URL))

	it := client.NewListPaginator[checkout.Session](c, checkout.SessionsPath, params.Pairs{})
	s.Assert().False(it.Next(s.ctx))

	var stripeErr *stripe.Error
	s.Require().True(errors.As(it.Err(), &stripeErr))
	s.Assert().Equal(http.StatusUnauthorized, stripeErr.HTTPStatusCode)
}

func (s *paginatorTestSuite) TestStopsWithoutCursor() {
	c := &fake.Client{}
	c.On("GetQuery", mock.Anything, checkout.SessionsPath, mock.Anything, mock.Anything).
		Return(api.List[checkout.Session]{
			Object:  "list",
			Data:    []checkout.Session{{ID: "cs_1"}, {ID: ""}},
			HasMore: true,
		}, nil)

	it := client.NewListPaginator[checkout.Session](c, checkout.SessionsPath, params.Pairs{})
	got, err := it.All(s.ctx)
	s.Assert().ErrorIs(err, client.ErrEmptyCursor)
	s.Assert().Len(got, 2)
	c.AssertNumberOfCalls(s.T(), "GetQuery", 1)
}
