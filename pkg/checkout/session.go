package checkout

import (
	"encoding/json"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
)

// Session is a Checkout Session: the customer's session as they pay for
// one-time purchases or subscriptions through Checkout or Payment Links.
//
// Fields Stripe may send as null are pointers. Fields only sent when
// expanded, or only for some UI modes, are tagged omitempty.
type Session struct {
	ID     string `json:"id"`
	Object string `json:"object"`

	AfterExpiration     *AfterExpiration `json:"after_expiration"`
	AllowPromotionCodes *bool            `json:"allow_promotion_codes"`

	// AmountSubtotal is the total before discounts and taxes are applied.
	AmountSubtotal *int64 `json:"amount_subtotal"`

	// AmountTotal is the total after discounts and taxes are applied.
	AmountTotal *int64 `json:"amount_total"`

	AutomaticTax             AutomaticTax              `json:"automatic_tax"`
	BillingAddressCollection *BillingAddressCollection `json:"billing_address_collection"`
	CancelURL                *string                   `json:"cancel_url"`
	ClientReferenceID        *string                   `json:"client_reference_id"`

	// ClientSecret is only set for embedded sessions.
	ClientSecret *string `json:"client_secret"`

	Consent           *Consent           `json:"consent"`
	ConsentCollection *ConsentCollection `json:"consent_collection"`
	Created           api.Timestamp      `json:"created"`
	Currency          *api.Currency      `json:"currency"`
	CustomFields      []CustomField      `json:"custom_fields"`
	CustomText        CustomText         `json:"custom_text"`
	Customer          *api.Expandable    `json:"customer"`
	CustomerCreation  *CustomerCreation  `json:"customer_creation"`
	CustomerDetails   *CustomerDetails   `json:"customer_details"`
	CustomerEmail     *string            `json:"customer_email"`
	ExpiresAt         api.Timestamp      `json:"expires_at"`
	Invoice           *api.Expandable    `json:"invoice"`
	InvoiceCreation   *InvoiceCreation   `json:"invoice_creation"`

	// LineItems is only sent when expanded.
	LineItems *api.List[LineItem] `json:"line_items,omitempty"`

	Livemode bool         `json:"livemode"`
	Locale   *api.Locale  `json:"locale"`
	Metadata api.Metadata `json:"metadata,omitempty"`
	Mode     Mode         `json:"mode"`

	PaymentIntent                     *api.Expandable                    `json:"payment_intent"`
	PaymentLink                       *api.Expandable                    `json:"payment_link"`
	PaymentMethodCollection           *PaymentMethodCollection           `json:"payment_method_collection"`
	PaymentMethodConfigurationDetails *PaymentMethodConfigurationDetails `json:"payment_method_configuration_details"`

	// PaymentMethodOptions is kept undecoded; its shape depends on the
	// payment methods of the session.
	PaymentMethodOptions json.RawMessage `json:"payment_method_options,omitempty"`

	// PaymentMethodTypes may hold payment methods added to Stripe after
	// this package was written. They decode as Unknown values.
	PaymentMethodTypes []PaymentMethodType `json:"payment_method_types"`

	PaymentStatus             PaymentStatus              `json:"payment_status"`
	PhoneNumberCollection     *PhoneNumberCollection     `json:"phone_number_collection,omitempty"`
	RecoveredFrom             *string                    `json:"recovered_from"`
	RedirectOnCompletion      *RedirectOnCompletion      `json:"redirect_on_completion,omitempty"`
	ReturnURL                 *string                    `json:"return_url,omitempty"`
	SetupIntent               *api.Expandable            `json:"setup_intent"`
	ShippingAddressCollection *ShippingAddressCollection `json:"shipping_address_collection"`
	ShippingCost              *ShippingCost              `json:"shipping_cost"`
	ShippingDetails           *ShippingDetails           `json:"shipping_details"`
	ShippingOptions           []ShippingOption           `json:"shipping_options"`
	Status                    *Status                    `json:"status"`
	SubmitType                *SubmitType                `json:"submit_type"`
	Subscription              *api.Expandable            `json:"subscription"`
	SuccessURL                *string                    `json:"success_url"`
	TaxIDCollection           *TaxIDCollection           `json:"tax_id_collection,omitempty"`
	TotalDetails              *TotalDetails              `json:"total_details"`
	UIMode                    *UIMode                    `json:"ui_mode"`

	// URL is the hosted page of the session. It is null once the session
	// is complete or expired, and for embedded sessions.
	URL *string `json:"url"`
}

// ObjectID implements api.Object.
func (s Session) ObjectID() string { return s.ID }

// AfterExpiration configures what happens once the session expires.
type AfterExpiration struct {
	Recovery *Recovery `json:"recovery"`
}

// Recovery is the recovery link of an expired session.
type Recovery struct {
	AllowPromotionCodes bool           `json:"allow_promotion_codes"`
	Enabled             bool           `json:"enabled"`
	ExpiresAt           *api.Timestamp `json:"expires_at"`
	URL                 *string        `json:"url"`
}

// AutomaticTax is the automatic tax state of the session.
type AutomaticTax struct {
	Enabled   bool                `json:"enabled"`
	Liability *IssuerDetails      `json:"liability"`
	Status    *AutomaticTaxStatus `json:"status"`
}

// IssuerDetails is the response shape of Issuer. Account is only set when
// Type is IssuerTypeAccount.
type IssuerDetails struct {
	Account *api.Expandable `json:"account,omitempty"`
	Type    IssuerType      `json:"type"`
}

// Consent holds what the customer agreed to during the session.
type Consent struct {
	Promotions     *ConsentPromotions     `json:"promotions"`
	TermsOfService *ConsentTermsOfService `json:"terms_of_service"`
}

// ConsentCollection lists the consents the session asks for.
type ConsentCollection struct {
	PaymentMethodReuseAgreement *PaymentMethodReuseAgreement     `json:"payment_method_reuse_agreement"`
	Promotions                  *ConsentCollectionPromotions     `json:"promotions"`
	TermsOfService              *ConsentCollectionTermsOfService `json:"terms_of_service"`
}

// PaymentMethodReuseAgreement places the reuse agreement text.
type PaymentMethodReuseAgreement struct {
	Position PaymentMethodReuseAgreementPosition `json:"position"`
}

// CustomField is a field collected from the customer and its value.
type CustomField struct {
	Dropdown *CustomFieldDropdown `json:"dropdown,omitempty"`
	Key      string               `json:"key"`
	Label    CustomFieldLabel     `json:"label"`
	Numeric  *CustomFieldValue    `json:"numeric,omitempty"`
	Optional bool                 `json:"optional"`
	Text     *CustomFieldValue    `json:"text,omitempty"`
	Type     CustomFieldType      `json:"type"`
}

// CustomFieldDropdown is the setting and value of a dropdown field.
type CustomFieldDropdown struct {
	Options []CustomFieldDropdownOption `json:"options"`

	// Value is the option selected by the customer.
	Value *string `json:"value"`
}

// CustomFieldDropdownOption is one choice of a dropdown field.
type CustomFieldDropdownOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CustomFieldLabel is the label shown above a custom field.
type CustomFieldLabel struct {
	Custom *string              `json:"custom"`
	Type   CustomFieldLabelType `json:"type"`
}

// CustomFieldValue is the value entered in a numeric or text field.
type CustomFieldValue struct {
	MaximumLength *int64  `json:"maximum_length"`
	MinimumLength *int64  `json:"minimum_length"`
	Value         *string `json:"value"`
}

// CustomText is the text shown around the payment form.
type CustomText struct {
	AfterSubmit              *CustomTextMessage `json:"after_submit"`
	ShippingAddress          *CustomTextMessage `json:"shipping_address"`
	Submit                   *CustomTextMessage `json:"submit"`
	TermsOfServiceAcceptance *CustomTextMessage `json:"terms_of_service_acceptance"`
}

// CustomTextMessage is one piece of custom text.
type CustomTextMessage struct {
	Message string `json:"message"`
}

// CustomerDetails holds what the customer entered during the session.
type CustomerDetails struct {
	Address   *api.Address `json:"address"`
	Email     *string      `json:"email"`
	Name      *string      `json:"name"`
	Phone     *string      `json:"phone"`
	TaxExempt *TaxExempt   `json:"tax_exempt"`
	TaxIDs    []TaxID      `json:"tax_ids,omitempty"`
}

// TaxID is a tax id collected from the customer.
type TaxID struct {
	Type  TaxIDType `json:"type"`
	Value *string   `json:"value"`
}

// InvoiceCreation tells whether a post-payment invoice is created.
type InvoiceCreation struct {
	Enabled     bool        `json:"enabled"`
	InvoiceData InvoiceData `json:"invoice_data"`
}

// InvoiceData is copied to the post-payment invoice.
type InvoiceData struct {
	AccountTaxIDs    []api.Expandable         `json:"account_tax_ids,omitempty"`
	CustomFields     []InvoiceCustomField     `json:"custom_fields,omitempty"`
	Description      *string                  `json:"description"`
	Footer           *string                  `json:"footer"`
	Issuer           *IssuerDetails           `json:"issuer"`
	Metadata         api.Metadata             `json:"metadata,omitempty"`
	RenderingOptions *InvoiceRenderingOptions `json:"rendering_options"`
}

// InvoiceCustomField is a name and value printed on the invoice.
type InvoiceCustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// InvoiceRenderingOptions controls how the invoice is rendered.
type InvoiceRenderingOptions struct {
	AmountTaxDisplay *AmountTaxDisplay `json:"amount_tax_display"`
}

// PaymentMethodConfigurationDetails names the payment method configuration in use.
type PaymentMethodConfigurationDetails struct {
	ID     string  `json:"id"`
	Parent *string `json:"parent"`
}

// PhoneNumberCollection tells whether a phone number is collected.
type PhoneNumberCollection struct {
	Enabled bool `json:"enabled"`
}

// ShippingAddressCollection lists the countries shipping addresses may be in.
type ShippingAddressCollection struct {
	AllowedCountries []api.Country `json:"allowed_countries"`
}

// ShippingCost is the shipping rate the customer picked and its amounts.
type ShippingCost struct {
	AmountSubtotal int64           `json:"amount_subtotal"`
	AmountTax      int64           `json:"amount_tax"`
	AmountTotal    int64           `json:"amount_total"`
	ShippingRate   *api.Expandable `json:"shipping_rate"`
	Taxes          []LineItemTax   `json:"taxes,omitempty"`
}

// ShippingDetails is the shipping address the customer entered.
type ShippingDetails struct {
	Address *api.Address `json:"address,omitempty"`
	Name    *string      `json:"name,omitempty"`
}

// ShippingOption is a shipping rate offered and its amount.
type ShippingOption struct {
	ShippingAmount int64          `json:"shipping_amount"`
	ShippingRate   api.Expandable `json:"shipping_rate"`
}

// TaxIDCollection tells whether tax ids are collected.
type TaxIDCollection struct {
	Enabled bool `json:"enabled"`
}

// TotalDetails breaks the amounts of the session down.
type TotalDetails struct {
	AmountDiscount int64  `json:"amount_discount"`
	AmountShipping *int64 `json:"amount_shipping"`
	AmountTax      int64  `json:"amount_tax"`
}
