package billingportal_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/billingportal"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/fake"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/params"
	"net/http"
	"testing"
)

type enumsTestSuite struct {
	suite.Suite
}

func TestEnumsSuite(t *testing.T) {
	suite.Run(t, new(enumsTestSuite))
}

func (s *enumsTestSuite) TestProrationBehaviorRoundTrip() {
	set := billingportal.SubscriptionUpdateProrationBehaviors

	w, err := set.Wire(billingportal.SubscriptionUpdateProrationBehaviorAlwaysInvoice)
	s.Require().NoError(err)
	s.Assert().Equal("always_invoice", w)

	v, err := set.Parse("always_invoice")
	s.Require().NoError(err)
	s.Assert().Equal(billingportal.SubscriptionUpdateProrationBehaviorAlwaysInvoice, v)

	_, err = set.Parse("unknown_value")
	var decodeErr *enum.DecodeError
	s.Require().True(errors.As(err, &decodeErr))
	s.Assert().Equal("unknown_value", decodeErr.Value)
}

type encodeTestSuite struct {
	suite.Suite
}

func TestEncodeSuite(t *testing.T) {
	suite.Run(t, new(encodeTestSuite))
}

func (s *encodeTestSuite) TestCreateConfiguration() {
	p := billingportal.NewCreateBillingPortalConfiguration(billingportal.FeaturesParams{
		CustomerUpdate: &billingportal.CustomerUpdateParams{
			AllowedUpdates: []billingportal.CustomerUpdateAllowedUpdate{
				billingportal.CustomerUpdateAllowedUpdateEmail,
				billingportal.CustomerUpdateAllowedUpdateAddress,
			},
			Enabled: true,
		},
		SubscriptionCancel: &billingportal.SubscriptionCancelParams{
			CancellationReason: billingportal.NewCancellationReasonParams(true,
				billingportal.CancellationReasonOptionTooExpensive,
			),
			Enabled: true,
		},
	})
	p.DefaultReturnURL = api.Ptr("https://example.com/account")

	pairs, err := params.Encode(p)
	s.Require().NoError(err)
	s.Assert().Equal(params.Pairs{
		{Key: "default_return_url", Value: "https://example.com/account"},
		{Key: "features[customer_update][allowed_updates][0]", Value: "email"},
		{Key: "features[customer_update][allowed_updates][1]", Value: "address"},
		{Key: "features[customer_update][enabled]", Value: "true"},
		{Key: "features[subscription_cancel][cancellation_reason][enabled]", Value: "true"},
		{Key: "features[subscription_cancel][cancellation_reason][options][0]", Value: "too_expensive"},
		{Key: "features[subscription_cancel][enabled]", Value: "true"},
	}, pairs)
}

func (s *encodeTestSuite) TestSubscriptionUpdateRequiresProducts() {
	p := billingportal.NewCreateBillingPortalConfiguration(billingportal.FeaturesParams{
		SubscriptionUpdate: &billingportal.SubscriptionUpdateParams{
			DefaultAllowedUpdates: []billingportal.SubscriptionUpdateDefaultAllowedUpdate{
				billingportal.SubscriptionUpdateDefaultAllowedUpdatePrice,
			},
			Enabled: true,
		},
	})

	_, err := params.Encode(p)
	var missing *api.MissingFieldError
	s.Require().True(errors.As(err, &missing))
	s.Assert().Equal("features[subscription_update][products]", missing.Path)
}

func (s *encodeTestSuite) TestSessionFlowData() {
	p := billingportal.NewCreateBillingPortalSession("cus_1")
	p.FlowData = billingportal.NewFlowDataParams(billingportal.FlowTypeSubscriptionUpdateConfirm)
	p.FlowData.AfterCompletion = &billingportal.AfterCompletionParams{
		Redirect: &billingportal.RedirectParams{ReturnURL: "https://example.com/done"},
		Type:     billingportal.AfterCompletionTypeRedirect,
	}
	p.FlowData.SubscriptionUpdateConfirm = &billingportal.SubscriptionUpdateConfirmParams{
		Items:        []billingportal.FlowItemParams{{ID: "si_1", Price: api.Ptr("price_2"), Quantity: api.Ptr(int64(3))}},
		Subscription: "sub_1",
	}

	pairs, err := params.Encode(p)
	s.Require().NoError(err)
	s.Assert().Equal(params.Pairs{
		{Key: "customer", Value: "cus_1"},
		{Key: "flow_data[after_completion][redirect][return_url]", Value: "https://example.com/done"},
		{Key: "flow_data[after_completion][type]", Value: "redirect"},
		{Key: "flow_data[subscription_update_confirm][items][0][id]", Value: "si_1"},
		{Key: "flow_data[subscription_update_confirm][items][0][price]", Value: "price_2"},
		{Key: "flow_data[subscription_update_confirm][items][0][quantity]", Value: "3"},
		{Key: "flow_data[subscription_update_confirm][subscription]", Value: "sub_1"},
		{Key: "flow_data[type]", Value: "subscription_update_confirm"},
	}, pairs)
}

func (s *encodeTestSuite) TestSessionRequiresCustomer() {
	_, err := params.Encode(billingportal.NewCreateBillingPortalSession(""))
	var missing *api.MissingFieldError
	s.Require().True(errors.As(err, &missing))
	s.Assert().Equal("customer", missing.Path)
}

type operationsTestSuite struct {
	suite.Suite
	Client *fake.Client
	ctx    context.Context
}

func TestOperationsSuite(t *testing.T) {
	suite.Run(t, new(operationsTestSuite))
}

func (s *operationsTestSuite) SetupTest() {
	s.Client = &fake.Client{}
	s.ctx = context.Background()
}

func (s *operationsTestSuite) TearDownTest() {
	s.Client.AssertExpectations(s.T())
}

func (s *operationsTestSuite) TestNilParams() {
	var create *billingportal.CreateBillingPortalConfiguration
	_, err := create.Send(s.ctx, s.Client)
	s.Assert().ErrorIs(err, api.ErrNilParams)

	var session *billingportal.CreateBillingPortalSession
	_, err = session.Send(s.ctx, s.Client)
	s.Assert().ErrorIs(err, api.ErrNilParams)
}

func (s *operationsTestSuite) TestUpdateConfiguration() {
	p := billingportal.NewUpdateBillingPortalConfiguration()
	p.DefaultReturnURL = api.Ptr("")
	p.Metadata = api.Metadata{"team": ""}

	s.Client.On("SendForm", mock.Anything, "/billing_portal/configurations/bpc_1", params.Pairs{
		{Key: "default_return_url", Value: ""},
		{Key: "metadata[team]", Value: ""},
	}, http.MethodPost, mock.Anything).Return(billingportal.Configuration{ID: "bpc_1"}, nil).Once()

	cfg, err := p.Send(s.ctx, s.Client, "bpc_1")
	s.Require().NoError(err)
	s.Assert().Equal("bpc_1", cfg.ID)
}

func (s *operationsTestSuite) TestPaginateConfigurations() {
	p := billingportal.NewListBillingPortalConfiguration()
	p.Active = api.Ptr(true)

	s.Client.On("GetQuery", mock.Anything, "/billing_portal/configurations", params.Pairs{
		{Key: "active", Value: "true"},
	}, mock.Anything).Return(api.List[billingportal.Configuration]{
		Data:    []billingportal.Configuration{{ID: "bpc_1"}},
		HasMore: true,
	}, nil).Once()
	s.Client.On("GetQuery", mock.Anything, "/billing_portal/configurations", params.Pairs{
		{Key: "active", Value: "true"},
		{Key: "starting_after", Value: "bpc_1"},
	}, mock.Anything).Return(api.List[billingportal.Configuration]{
		Data: []billingportal.Configuration{{ID: "bpc_2"}},
	}, nil).Once()

	it, err := p.Paginate(s.Client)
	s.Require().NoError(err)

	var ids []string
	for it.Next(s.ctx) {
		ids = append(ids, it.Current().ID)
	}
	s.Require().NoError(it.Err())
	s.Assert().Equal([]string{"bpc_1", "bpc_2"}, ids)
}
