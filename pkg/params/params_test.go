package params_test

import (
	"errors"
	"github.com/stretchr/testify/suite"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/checkout"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/params"
	"testing"
)

type inner struct {
	Name  string  `form:"name,required"`
	Count *int64  `form:"count"`
	Ratio float64 `form:"ratio"`
}

type record struct {
	api.ListParams

	Flag     *bool            `form:"flag"`
	Inner    *inner           `form:"inner"`
	Items    []inner          `form:"items"`
	Tags     [2]string        `form:"tags"`
	Labels   map[string]int64 `form:"labels"`
	Ignored  string           `form:"-"`
	internal string
}

type encodeTestSuite struct {
	suite.Suite
}

func TestEncodeSuite(t *testing.T) {
	suite.Run(t, new(encodeTestSuite))
}

func (s *encodeTestSuite) TestNilRecord() {
	var p *checkout.ListCheckoutSession

	pairs, err := params.Encode(p)
	s.Require().NoError(err)
	s.Assert().Empty(pairs)
	s.Assert().Equal("", pairs.Encode())
}

func (s *encodeTestSuite) TestNotAStruct() {
	_, err := params.Encode(42)
	s.Assert().Error(err)
}

func (s *encodeTestSuite) TestEmptyListRequest() {
	pairs, err := params.Encode(checkout.NewListCheckoutSession())
	s.Require().NoError(err)
	s.Assert().Empty(pairs)
}

func (s *encodeTestSuite) TestPresentZeroValues() {
	p := checkout.NewListCheckoutSession()
	p.Limit = api.Ptr(int64(0))
	p.Customer = api.Ptr("")

	pairs, err := params.Encode(p)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"customer", "limit"}, pairs.Keys())
	s.Assert().Equal([]string{"0"}, pairs.Get("limit"))
	s.Assert().Equal([]string{""}, pairs.Get("customer"))
}

func (s *encodeTestSuite) TestNestedKeys() {
	r := record{
		ListParams: api.ListParams{Limit: api.Ptr(int64(3))},
		Flag:       api.Ptr(false),
		Inner:      &inner{Name: "a", Count: api.Ptr(int64(2)), Ratio: 0.5},
		Items:      []inner{{Name: "x"}, {Name: "y"}},
		Tags:       [2]string{"t0", "t1"},
		Labels:     map[string]int64{"b": 2, "a": 1},
		Ignored:    "ignored",
		internal:   "internal",
	}

	pairs, err := params.Encode(&r)
	s.Require().NoError(err)
	s.Assert().Equal(params.Pairs{
		{Key: "limit", Value: "3"},
		{Key: "flag", Value: "false"},
		{Key: "inner[name]", Value: "a"},
		{Key: "inner[count]", Value: "2"},
		{Key: "inner[ratio]", Value: "0.5"},
		{Key: "items[0][name]", Value: "x"},
		{Key: "items[0][ratio]", Value: "0"},
		{Key: "items[1][name]", Value: "y"},
		{Key: "items[1][ratio]", Value: "0"},
		{Key: "tags[0]", Value: "t0"},
		{Key: "tags[1]", Value: "t1"},
		{Key: "labels[a]", Value: "1"},
		{Key: "labels[b]", Value: "2"},
	}, pairs)
}

func (s *encodeTestSuite) TestRequiredFieldMissing() {
	r := record{Inner: &inner{}}

	_, err := params.Encode(r)
	var missing *api.MissingFieldError
	s.Require().True(errors.As(err, &missing))
	s.Assert().Equal("inner[name]", missing.Path)
}

func (s *encodeTestSuite) TestOnlyRequiredFields() {
	pairs, err := params.Encode(checkout.NewShippingRateDataParams("Express"))
	s.Require().NoError(err)
	s.Assert().Equal(params.Pairs{{Key: "display_name", Value: "Express"}}, pairs)

	pairs, err = params.Encode(checkout.NewAccountIssuer("acct_123"))
	s.Require().NoError(err)
	s.Assert().Equal(params.Pairs{
		{Key: "type", Value: "account"},
		{Key: "account", Value: "acct_123"},
	}, pairs)
}

func (s *encodeTestSuite) TestNestedRecord() {
	p := checkout.NewCreateCheckoutSession()
	p.AutomaticTax = checkout.NewAutomaticTaxParams(true)
	p.AutomaticTax.Liability = checkout.NewAccountIssuer("acct_123")

	pairs, err := params.Encode(p)
	s.Require().NoError(err)
	s.Assert().Equal(params.Pairs{
		{Key: "automatic_tax[enabled]", Value: "true"},
		{Key: "automatic_tax[liability][type]", Value: "account"},
		{Key: "automatic_tax[liability][account]", Value: "acct_123"},
	}, pairs)
}

func (s *encodeTestSuite) TestArrayOfRecords() {
	p := checkout.NewCreateCheckoutSession()
	p.CustomFields = []checkout.CustomFieldParams{
		checkout.NewCustomFieldParams("engraving", "Personalized engraving", checkout.CustomFieldTypeText),
		checkout.NewCustomFieldParams("gift", "Gift note", checkout.CustomFieldTypeText),
	}

	pairs, err := params.Encode(p)
	s.Require().NoError(err)
	s.Assert().Equal(
		"custom_fields[0][key]=engraving"+
			"&custom_fields[0][label][type]=custom"+
			"&custom_fields[0][label][custom]=Personalized+engraving"+
			"&custom_fields[0][type]=text"+
			"&custom_fields[1][key]=gift"+
			"&custom_fields[1][label][type]=custom"+
			"&custom_fields[1][label][custom]=Gift+note"+
			"&custom_fields[1][type]=text",
		pairs.Encode(),
	)
}

func (s *encodeTestSuite) TestMetadataEmptyValue() {
	p := checkout.NewCreateCheckoutSession()
	p.Metadata = api.Metadata{"keep": "v", "drop": ""}

	pairs, err := params.Encode(p)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"v"}, pairs.Get("metadata[keep]"))
	s.Assert().True(pairs.Has("metadata[drop]"))
	s.Assert().Equal([]string{""}, pairs.Get("metadata[drop]"))
	s.Assert().Equal("metadata[drop]=&metadata[keep]=v", pairs.Encode())
}

func (s *encodeTestSuite) TestUnknownVariantRejected() {
	p := checkout.NewCreateCheckoutSession()
	p.PaymentMethodTypes = []checkout.PaymentMethodType{
		checkout.PaymentMethodTypeCard,
		checkout.PaymentMethodType("future_method"),
	}

	_, err := params.Encode(p)
	var unsupported *enum.UnsupportedVariantError
	s.Require().True(errors.As(err, &unsupported))
	s.Assert().Equal("future_method", unsupported.Value)
	s.Assert().Equal("payment_method_types[1]", unsupported.Path)
}

func shippingOption(fixed *checkout.FixedAmountParams) *checkout.CreateCheckoutSession {
	rate := checkout.NewShippingRateDataParams("Ground")
	rate.Type = api.Ptr(checkout.ShippingRateTypeFixedAmount)
	rate.FixedAmount = fixed

	p := checkout.NewCreateCheckoutSession()
	p.ShippingOptions = []checkout.ShippingOptionParams{{ShippingRateData: rate}}
	return p
}

func (s *encodeTestSuite) TestCurrencyOptions() {
	fixed := checkout.NewFixedAmountParams(500, api.CurrencyUSD)
	fixed.CurrencyOptions = map[api.Currency]checkout.CurrencyOptionParams{
		api.CurrencyGBP: {Amount: 400},
		api.CurrencyEUR: {Amount: 450, TaxBehavior: api.Ptr(checkout.TaxBehaviorInclusive)},
	}

	pairs, err := params.Encode(shippingOption(fixed))
	s.Require().NoError(err)

	prefix := "shipping_options[0][shipping_rate_data][fixed_amount]"
	s.Assert().Equal([]string{
		"shipping_options[0][shipping_rate_data][display_name]",
		prefix + "[amount]",
		prefix + "[currency]",
		prefix + "[currency_options][eur][amount]",
		prefix + "[currency_options][eur][tax_behavior]",
		prefix + "[currency_options][gbp][amount]",
		"shipping_options[0][shipping_rate_data][type]",
	}, pairs.Keys())
	s.Assert().Equal([]string{"450"}, pairs.Get(prefix+"[currency_options][eur][amount]"))
	s.Assert().Equal([]string{"inclusive"}, pairs.Get(prefix+"[currency_options][eur][tax_behavior]"))
	s.Assert().Equal([]string{"400"}, pairs.Get(prefix+"[currency_options][gbp][amount]"))
}

func (s *encodeTestSuite) TestUnknownCurrencyOptionRejected() {
	fixed := checkout.NewFixedAmountParams(500, api.CurrencyUSD)
	fixed.CurrencyOptions = map[api.Currency]checkout.CurrencyOptionParams{
		api.CurrencyEUR:            {Amount: 450},
		api.Currency("zzz_future"): {Amount: 1},
	}

	pairs, err := params.Encode(shippingOption(fixed))
	s.Assert().Nil(pairs)

	var unsupported *enum.UnsupportedVariantError
	s.Require().True(errors.As(err, &unsupported))
	s.Assert().Equal("zzz_future", unsupported.Value)
	s.Assert().Equal("shipping_options[0][shipping_rate_data][fixed_amount][currency_options][zzz_future]", unsupported.Path)
}

func (s *encodeTestSuite) TestClosedVariantRejected() {
	p := checkout.NewCreateCheckoutSession()
	p.Mode = api.Ptr(checkout.Mode("donation"))

	_, err := params.Encode(p)
	var unsupported *enum.UnsupportedVariantError
	s.Require().True(errors.As(err, &unsupported))
	s.Assert().Equal("mode", unsupported.Path)
}

type pairsTestSuite struct {
	suite.Suite
}

func TestPairsSuite(t *testing.T) {
	suite.Run(t, new(pairsTestSuite))
}

func (s *pairsTestSuite) TestWithAndWithout() {
	pairs := params.Pairs{{Key: "limit", Value: "3"}, {Key: "ending_before", Value: "cs_1"}}

	out := pairs.Without("ending_before").With("starting_after", "cs_2")
	s.Assert().Equal(params.Pairs{
		{Key: "limit", Value: "3"},
		{Key: "starting_after", Value: "cs_2"},
	}, out)

	// The original pairs are left untouched.
	s.Assert().Len(pairs, 2)
	s.Assert().True(pairs.Has("ending_before"))
}

func (s *pairsTestSuite) TestURLValues() {
	pairs := params.Pairs{{Key: "expand[0]", Value: "customer"}, {Key: "expand[1]", Value: "invoice"}}

	values := pairs.URLValues()
	s.Assert().Equal("customer", values.Get("expand[0]"))
	s.Assert().Equal("invoice", values.Get("expand[1]"))
	s.Assert().Equal("expand[0]=customer&expand[1]=invoice", pairs.Encode())
}
