package checkout

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/api"

// LineItem is an item purchased in a Checkout Session.
type LineItem struct {
	ID     string `json:"id"`
	Object string `json:"object"`

	AmountDiscount int64        `json:"amount_discount"`
	AmountSubtotal int64        `json:"amount_subtotal"`
	AmountTax      int64        `json:"amount_tax"`
	AmountTotal    int64        `json:"amount_total"`
	Currency       api.Currency `json:"currency"`

	// Description defaults to the product name.
	Description string `json:"description"`

	Discounts []LineItemDiscount `json:"discounts,omitempty"`
	Price     *Price             `json:"price"`
	Quantity  *int64             `json:"quantity"`
	Taxes     []LineItemTax      `json:"taxes,omitempty"`
}

// ObjectID implements api.Object.
func (l LineItem) ObjectID() string { return l.ID }

// LineItemDiscount is the amount a discount took off a line item.
type LineItemDiscount struct {
	Amount   int64          `json:"amount"`
	Discount api.Expandable `json:"discount"`
}

// LineItemTax is a tax applied to a line item or to the shipping cost.
type LineItemTax struct {
	Amount           int64             `json:"amount"`
	Rate             TaxRate           `json:"rate"`
	TaxabilityReason *TaxabilityReason `json:"taxability_reason"`
	TaxableAmount    *int64            `json:"taxable_amount"`
}

// TaxRate is the subset of a Stripe tax rate sent with line item taxes.
type TaxRate struct {
	ID           string  `json:"id"`
	Object       string  `json:"object"`
	Active       bool    `json:"active"`
	Country      *string `json:"country"`
	Description  *string `json:"description"`
	DisplayName  string  `json:"display_name"`
	Inclusive    bool    `json:"inclusive"`
	Jurisdiction *string `json:"jurisdiction"`
	Percentage   float64 `json:"percentage"`
	TaxType      *string `json:"tax_type"`
}

// Price is the price a line item was sold at.
type Price struct {
	ID     string `json:"id"`
	Object string `json:"object"`

	Active        bool          `json:"active"`
	BillingScheme BillingScheme `json:"billing_scheme"`
	Created       api.Timestamp `json:"created"`
	Currency      api.Currency  `json:"currency"`
	Livemode      bool          `json:"livemode"`
	LookupKey     *string       `json:"lookup_key"`
	Metadata      api.Metadata  `json:"metadata,omitempty"`
	Nickname      *string       `json:"nickname"`

	// Product is the product id unless expanded.
	Product api.Expandable `json:"product"`

	Recurring   *Recurring   `json:"recurring"`
	TaxBehavior *TaxBehavior `json:"tax_behavior"`
	TiersMode   *string      `json:"tiers_mode"`
	Type        PriceType    `json:"type"`

	// UnitAmount is in the currency's minor unit. It is null for tiered
	// prices.
	UnitAmount        *int64  `json:"unit_amount"`
	UnitAmountDecimal *string `json:"unit_amount_decimal"`
}

// ObjectID implements api.Object.
func (p Price) ObjectID() string { return p.ID }

// Recurring is the billing interval of a recurring price.
type Recurring struct {
	AggregateUsage *string           `json:"aggregate_usage"`
	Interval       RecurringInterval `json:"interval"`
	IntervalCount  int64             `json:"interval_count"`
	UsageType      string            `json:"usage_type"`
}
