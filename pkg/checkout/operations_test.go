package checkout_test

import (
	"context"
	"errors"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v72"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/checkout"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/fake"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/params"
	"net/http"
	"testing"
)

type operationsTestSuite struct {
	suite.Suite
	Client *fake.Client
	faker  *gofakeit.Faker
	ctx    context.Context
}

func TestOperationsSuite(t *testing.T) {
	suite.Run(t, new(operationsTestSuite))
}

func (s *operationsTestSuite) SetupTest() {
	s.Client = &fake.Client{}
	s.faker = gofakeit.New(2024)
	s.ctx = context.Background()
}

func (s *operationsTestSuite) TearDownTest() {
	s.Client.AssertExpectations(s.T())
}

func (s *operationsTestSuite) sessions(n int) []checkout.Session {
	sessions := make([]checkout.Session, n)
	for i := range sessions {
		sessions[i] = checkout.Session{
			ID:                 "cs_test_" + s.faker.LetterN(24),
			Object:             "checkout.session",
			CustomerEmail:      api.Ptr(s.faker.Email()),
			Mode:               checkout.ModePayment,
			PaymentMethodTypes: []checkout.PaymentMethodType{checkout.PaymentMethodTypeCard},
			PaymentStatus:      checkout.PaymentStatusUnpaid,
		}
	}
	return sessions
}

func (s *operationsTestSuite) TestListWithoutParams() {
	sessions := s.sessions(2)
	s.Client.On("GetQuery", mock.Anything, "/checkout/sessions", params.Pairs{}, mock.Anything).
		Return(api.List[checkout.Session]{Object: "list", Data: sessions, URL: "/v1/checkout/sessions"}, nil).
		Once()

	list, err := checkout.NewListCheckoutSession().Send(s.ctx, s.Client)
	s.Require().NoError(err)
	s.Assert().Equal(sessions, list.Data)
	s.Assert().False(list.HasMore)
}

func (s *operationsTestSuite) TestListFilters() {
	p := checkout.NewListCheckoutSession()
	p.Status = api.Ptr(checkout.StatusComplete)
	p.CustomerDetails = checkout.NewCustomerDetailsParams("jenny@example.com")
	p.Created = &api.RangeQueryTs{Gte: api.Ptr(api.Timestamp(1700000000))}

	s.Client.On("GetQuery", mock.Anything, "/checkout/sessions", params.Pairs{
		{Key: "created[gte]", Value: "1700000000"},
		{Key: "customer_details[email]", Value: "jenny@example.com"},
		{Key: "status", Value: "complete"},
	}, mock.Anything).Return(api.List[checkout.Session]{Object: "list"}, nil).Once()

	_, err := p.Send(s.ctx, s.Client)
	s.Require().NoError(err)
}

func (s *operationsTestSuite) TestPaginatorTraversal() {
	sessions := s.sessions(6)
	p := checkout.NewListCheckoutSession()
	p.Limit = api.Ptr(int64(3))
	p.EndingBefore = api.Ptr("cs_ignored")

	s.Client.On("GetQuery", mock.Anything, "/checkout/sessions", params.Pairs{
		{Key: "limit", Value: "3"},
	}, mock.Anything).Return(api.List[checkout.Session]{Data: sessions[:3], HasMore: true}, nil).Once()

	s.Client.On("GetQuery", mock.Anything, "/checkout/sessions", params.Pairs{
		{Key: "limit", Value: "3"},
		{Key: "starting_after", Value: sessions[2].ID},
	}, mock.Anything).Return(api.List[checkout.Session]{Data: sessions[3:], HasMore: false}, nil).Once()

	it, err := p.Paginate(s.Client)
	s.Require().NoError(err)

	got, err := it.All(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(sessions, got)

	// The paginator never asks again once has_more is false.
	s.Assert().False(it.Next(s.ctx))
	s.Client.AssertNumberOfCalls(s.T(), "GetQuery", 2)
}

func (s *operationsTestSuite) TestPaginatorStopsOnError() {
	sessions := s.sessions(2)
	failure := &stripe.Error{HTTPStatusCode: http.StatusTooManyRequests, Type: stripe.ErrorTypeAPI}

	s.Client.On("GetQuery", mock.Anything, "/checkout/sessions", params.Pairs{}, mock.Anything).
		Return(api.List[checkout.Session]{Data: sessions, HasMore: true}, nil).Once()
	s.Client.On("GetQuery", mock.Anything, "/checkout/sessions", params.Pairs{
		{Key: "starting_after", Value: sessions[1].ID},
	}, mock.Anything).Return(nil, failure).Once()

	it, err := checkout.NewListCheckoutSession().Paginate(s.Client)
	s.Require().NoError(err)

	got, err := it.All(s.ctx)
	s.Assert().Equal(sessions, got)
	s.Assert().ErrorIs(err, failure)
	s.Assert().False(it.Next(s.ctx))
}

func (s *operationsTestSuite) TestPaginatorEmptyList() {
	s.Client.On("GetQuery", mock.Anything, "/checkout/sessions", params.Pairs{}, mock.Anything).
		Return(api.List[checkout.Session]{Data: []checkout.Session{}, HasMore: true}, nil).Once()

	it, err := checkout.NewListCheckoutSession().Paginate(s.Client)
	s.Require().NoError(err)

	got, err := it.All(s.ctx)
	s.Require().NoError(err)
	s.Assert().Empty(got)
}

func (s *operationsTestSuite) TestRetrieve() {
	session := s.sessions(1)[0]
	p := checkout.NewRetrieveCheckoutSession()
	p.Expand = []string{"line_items"}

	s.Client.On("GetQuery", mock.Anything, "/checkout/sessions/"+session.ID, params.Pairs{
		{Key: "expand[0]", Value: "line_items"},
	}, mock.Anything).Return(&session, nil).Once()

	got, err := p.Send(s.ctx, s.Client, session.ID)
	s.Require().NoError(err)
	s.Assert().Equal(session, *got)
}

func (s *operationsTestSuite) TestRetrieveEscapesID() {
	s.Client.On("GetQuery", mock.Anything, "/checkout/sessions/cs%2Ftest", params.Pairs{}, mock.Anything).
		Return(checkout.Session{ID: "cs/test"}, nil).Once()

	got, err := checkout.NewRetrieveCheckoutSession().Send(s.ctx, s.Client, "cs/test")
	s.Require().NoError(err)
	s.Assert().Equal("cs/test", got.ID)
}

func (s *operationsTestSuite) TestEmptyID() {
	_, err := checkout.NewRetrieveCheckoutSession().Send(s.ctx, s.Client, "")
	s.Assert().ErrorIs(err, api.ErrEmptyID)

	_, err = checkout.NewExpireCheckoutSession().Send(s.ctx, s.Client, " ")
	s.Assert().ErrorIs(err, api.ErrEmptyID)

	_, err = checkout.NewListLineItemsCheckoutSession().Paginate(s.Client, "")
	s.Assert().ErrorIs(err, api.ErrEmptyID)
}

func (s *operationsTestSuite) TestLineItems() {
	session := s.sessions(1)[0]
	items := []checkout.LineItem{{ID: "li_1", Object: "item", Description: s.faker.Word()}}

	s.Client.On("GetQuery", mock.Anything, "/checkout/sessions/"+session.ID+"/line_items", params.Pairs{}, mock.Anything).
		Return(api.List[checkout.LineItem]{Data: items}, nil).Once()

	list, err := checkout.NewListLineItemsCheckoutSession().Send(s.ctx, s.Client, session.ID)
	s.Require().NoError(err)
	s.Assert().Equal(items, list.Data)
}

func (s *operationsTestSuite) TestCreate() {
	session := s.sessions(1)[0]
	p := checkout.NewCreateCheckoutSession()
	p.Mode = api.Ptr(checkout.ModeSubscription)
	p.SuccessURL = api.Ptr("https://example.com/success")
	p.LineItems = []checkout.LineItemParams{{Price: api.Ptr("price_1"), Quantity: api.Ptr(int64(1))}}
	p.SubscriptionData = &checkout.SubscriptionDataParams{
		TrialSettings: checkout.NewTrialSettingsParams(checkout.MissingPaymentMethodCancel),
	}

	s.Client.On("SendForm", mock.Anything, "/checkout/sessions", params.Pairs{
		{Key: "line_items[0][price]", Value: "price_1"},
		{Key: "line_items[0][quantity]", Value: "1"},
		{Key: "mode", Value: "subscription"},
		{Key: "subscription_data[trial_settings][end_behavior][missing_payment_method]", Value: "cancel"},
		{Key: "success_url", Value: "https://example.com/success"},
	}, http.MethodPost, mock.Anything).Return(session, nil).Once()

	got, err := p.Send(s.ctx, s.Client)
	s.Require().NoError(err)
	s.Assert().Equal(session.ID, got.ID)
}

func (s *operationsTestSuite) TestCreateFailsBeforeSending() {
	p := checkout.NewCreateCheckoutSession()
	p.PaymentMethodTypes = []checkout.PaymentMethodType{"future_method"}

	_, err := p.Send(s.ctx, s.Client)
	var unsupported *enum.UnsupportedVariantError
	s.Assert().True(errors.As(err, &unsupported))
	s.Client.AssertNotCalled(s.T(), "SendForm", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *operationsTestSuite) TestCreateNilParams() {
	var p *checkout.CreateCheckoutSession

	_, err := p.Send(s.ctx, s.Client)
	s.Assert().ErrorIs(err, api.ErrNilParams)
	s.Client.AssertNotCalled(s.T(), "SendForm", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *operationsTestSuite) TestExpire() {
	session := s.sessions(1)[0]
	session.Status = api.Ptr(checkout.StatusExpired)

	s.Client.On("SendForm", mock.Anything, "/checkout/sessions/"+session.ID+"/expire", params.Pairs{}, http.MethodPost, mock.Anything).
		Return(session, nil).Once()

	got, err := checkout.NewExpireCheckoutSession().Send(s.ctx, s.Client, session.ID)
	s.Require().NoError(err)
	s.Assert().Equal(checkout.StatusExpired, *got.Status)
}

func (s *operationsTestSuite) TestTransportError() {
	failure := &stripe.Error{HTTPStatusCode: http.StatusNotFound, Code: stripe.ErrorCodeResourceMissing}
	s.Client.On("GetQuery", mock.Anything, "/checkout/sessions/cs_missing", params.Pairs{}, mock.Anything).
		Return(nil, failure).Once()

	_, err := checkout.NewRetrieveCheckoutSession().Send(s.ctx, s.Client, "cs_missing")
	var stripeErr *stripe.Error
	s.Require().True(errors.As(err, &stripeErr))
	s.Assert().Equal(stripe.ErrorCodeResourceMissing, stripeErr.Code)
}
