package checkout

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/api"

// CreateCheckoutSession holds the parameters of POST /checkout/sessions.
//
// Stripe enforces the combinations this record allows: Price and PriceData
// on a line item, ShippingRate and ShippingRateData on a shipping option,
// Coupon and PromotionCode on a discount are each mutually exclusive.
type CreateCheckoutSession struct {
	// AfterExpiration configures actions after the session expires.
	AfterExpiration *AfterExpirationParams `form:"after_expiration"`

	// AllowPromotionCodes enables user redeemable promotion codes.
	AllowPromotionCodes *bool `form:"allow_promotion_codes"`

	// AutomaticTax enables tax calculation with Stripe Tax.
	AutomaticTax *AutomaticTaxParams `form:"automatic_tax"`

	// BillingAddressCollection specifies whether Checkout collects the
	// customer's billing address.
	BillingAddressCollection *BillingAddressCollection `form:"billing_address_collection"`

	// CancelURL is where the customer is sent if they decide to cancel.
	CancelURL *string `form:"cancel_url"`

	// ClientReferenceID is a unique string to reference the session, such as
	// a cart id.
	ClientReferenceID *string `form:"client_reference_id"`

	// ConsentCollection configures fields for the session to gather consent.
	ConsentCollection *ConsentCollectionParams `form:"consent_collection"`

	// Currency is required in setup mode when PaymentMethodTypes is not set.
	Currency *api.Currency `form:"currency"`

	// CustomFields are collected from the customer, up to 3.
	CustomFields []CustomFieldParams `form:"custom_fields"`

	// CustomText is displayed alongside the payment confirmation button.
	CustomText *CustomTextParams `form:"custom_text"`

	// Customer is the id of an existing Customer.
	Customer *string `form:"customer"`

	// CustomerCreation applies to payment mode only.
	CustomerCreation *CustomerCreation `form:"customer_creation"`

	// CustomerEmail prefills the email field when Customer is not set.
	CustomerEmail *string `form:"customer_email"`

	// CustomerUpdate controls what is saved back to an existing Customer.
	CustomerUpdate *CustomerUpdateParams `form:"customer_update"`

	// Discounts are applied to the session. Only one is supported.
	Discounts []DiscountParams `form:"discounts"`

	Expand []string `form:"expand"`

	// ExpiresAt is between 30 minutes and 24 hours after creation.
	ExpiresAt *api.Timestamp `form:"expires_at"`

	// InvoiceCreation generates a post-purchase invoice in payment mode.
	InvoiceCreation *InvoiceCreationParams `form:"invoice_creation"`

	// LineItems lists the items the customer is purchasing.
	LineItems []LineItemParams `form:"line_items"`

	// Locale of the hosted page.
	Locale *api.Locale `form:"locale"`

	Metadata api.Metadata `form:"metadata"`

	// Mode is required unless a payment link creates the session.
	Mode *Mode `form:"mode"`

	// PaymentIntentData is passed to the PaymentIntent in payment mode.
	PaymentIntentData *PaymentIntentDataParams `form:"payment_intent_data"`

	// PaymentMethodCollection applies to subscription mode.
	PaymentMethodCollection *PaymentMethodCollection `form:"payment_method_collection"`

	// PaymentMethodConfiguration is the id of the payment method
	// configuration to use.
	PaymentMethodConfiguration *string `form:"payment_method_configuration"`

	// PaymentMethodOptions are payment method specific settings.
	PaymentMethodOptions *PaymentMethodOptionsParams `form:"payment_method_options"`

	// PaymentMethodTypes restricts the payment methods shown. When unset,
	// Stripe picks them from the dashboard settings.
	PaymentMethodTypes []PaymentMethodType `form:"payment_method_types"`

	// PhoneNumberCollection enables phone number collection.
	PhoneNumberCollection *PhoneNumberCollectionParams `form:"phone_number_collection"`

	// RedirectOnCompletion applies to embedded sessions.
	RedirectOnCompletion *RedirectOnCompletion `form:"redirect_on_completion"`

	// ReturnURL is required for embedded sessions that redirect.
	ReturnURL *string `form:"return_url"`

	// SetupIntentData is passed to the SetupIntent in setup mode.
	SetupIntentData *SetupIntentDataParams `form:"setup_intent_data"`

	// ShippingAddressCollection enables shipping address collection.
	ShippingAddressCollection *ShippingAddressCollectionParams `form:"shipping_address_collection"`

	// ShippingOptions are offered to the customer, up to 5.
	ShippingOptions []ShippingOptionParams `form:"shipping_options"`

	// SubmitType applies to payment mode.
	SubmitType *SubmitType `form:"submit_type"`

	// SubscriptionData is passed to the Subscription in subscription mode.
	SubscriptionData *SubscriptionDataParams `form:"subscription_data"`

	// SuccessURL is where the customer is sent after the payment. Not
	// allowed for embedded sessions.
	SuccessURL *string `form:"success_url"`

	// TaxIDCollection enables tax id collection.
	TaxIDCollection *TaxIDCollectionParams `form:"tax_id_collection"`

	// UIMode defaults to hosted.
	UIMode *UIMode `form:"ui_mode"`
}

// NewCreateCheckoutSession returns an empty CreateCheckoutSession. Every
// parameter of the endpoint is optional.
func NewCreateCheckoutSession() *CreateCheckoutSession {
	return &CreateCheckoutSession{}
}

// AfterExpirationParams configures actions after a session expires.
type AfterExpirationParams struct {
	Recovery *RecoveryParams `form:"recovery"`
}

// RecoveryParams configures a recovery URL for an expired session.
type RecoveryParams struct {
	// AllowPromotionCodes enables promotion codes on the recovered session.
	AllowPromotionCodes *bool `form:"allow_promotion_codes"`

	// Enabled creates a recovery URL when the session expires.
	Enabled bool `form:"enabled"`
}

// NewRecoveryParams returns RecoveryParams with the required fields set.
func NewRecoveryParams(enabled bool) *RecoveryParams {
	return &RecoveryParams{Enabled: enabled}
}

// AutomaticTaxParams enables Stripe Tax.
type AutomaticTaxParams struct {
	Enabled bool `form:"enabled"`

	// Liability is the account that is liable for tax.
	Liability *Issuer `form:"liability"`
}

// NewAutomaticTaxParams returns AutomaticTaxParams with the required fields set.
func NewAutomaticTaxParams(enabled bool) *AutomaticTaxParams {
	return &AutomaticTaxParams{Enabled: enabled}
}

// Issuer designates a connected account. Type selects whether the account is
// the platform itself or the connected account named in Account; Stripe
// rejects an Account with IssuerTypeSelf.
type Issuer struct {
	Type IssuerType `form:"type,required"`

	// Account is required when Type is IssuerTypeAccount.
	Account *string `form:"account"`
}

// NewIssuer returns an Issuer of the given type.
func NewIssuer(typ IssuerType) *Issuer {
	return &Issuer{Type: typ}
}

// NewAccountIssuer returns an Issuer pointing to the connected account.
func NewAccountIssuer(account string) *Issuer {
	return &Issuer{Type: IssuerTypeAccount, Account: &account}
}

// ConsentCollectionParams configures fields for the session to gather consent.
type ConsentCollectionParams struct {
	// PaymentMethodReuseAgreement controls the visibility of the payment
	// method reuse agreement.
	PaymentMethodReuseAgreement *PaymentMethodReuseAgreementParams `form:"payment_method_reuse_agreement"`

	// Promotions collects consent to send promotional communications.
	Promotions *ConsentCollectionPromotions `form:"promotions"`

	// TermsOfService requires the customer to accept the terms of service.
	TermsOfService *ConsentCollectionTermsOfService `form:"terms_of_service"`
}

// PaymentMethodReuseAgreementParams places the reuse agreement text.
type PaymentMethodReuseAgreementParams struct {
	Position PaymentMethodReuseAgreementPosition `form:"position,required"`
}

// CustomFieldParams is a field collected from the customer.
type CustomFieldParams struct {
	// Dropdown is required when Type is CustomFieldTypeDropdown.
	Dropdown *CustomFieldDropdownParams `form:"dropdown"`

	// Key identifies the field, up to 200 alphanumeric characters.
	Key string `form:"key,required"`

	// Label is shown to the customer.
	Label CustomFieldLabelParams `form:"label"`

	Numeric *CustomFieldNumericParams `form:"numeric"`

	// Optional lets the customer skip the field.
	Optional *bool `form:"optional"`

	Text *CustomFieldTextParams `form:"text"`

	Type CustomFieldType `form:"type,required"`
}

// NewCustomFieldParams returns a custom field with a custom label.
func NewCustomFieldParams(key, label string, typ CustomFieldType) CustomFieldParams {
	return CustomFieldParams{
		Key:   key,
		Label: NewCustomFieldLabelParams(label),
		Type:  typ,
	}
}

// CustomFieldDropdownParams configures a dropdown field.
type CustomFieldDropdownParams struct {
	// Options are shown to the customer, up to 200.
	Options []CustomFieldDropdownOptionParams `form:"options,required"`
}

// CustomFieldDropdownOptionParams is one choice of a dropdown field.
type CustomFieldDropdownOptionParams struct {
	Label string `form:"label,required"`
	Value string `form:"value,required"`
}

// CustomFieldLabelParams is the label shown above a custom field.
type CustomFieldLabelParams struct {
	Type CustomFieldLabelType `form:"type,required"`

	// Custom is the label, up to 50 characters.
	Custom string `form:"custom,required"`
}

// NewCustomFieldLabelParams returns a custom label.
func NewCustomFieldLabelParams(custom string) CustomFieldLabelParams {
	return CustomFieldLabelParams{Custom: custom, Type: CustomFieldLabelTypeCustom}
}

// CustomFieldNumericParams bounds the length of a numeric field.
type CustomFieldNumericParams struct {
	MaximumLength *int64 `form:"maximum_length"`
	MinimumLength *int64 `form:"minimum_length"`
}

// CustomFieldTextParams bounds the length of a text field.
type CustomFieldTextParams struct {
	MaximumLength *int64 `form:"maximum_length"`
	MinimumLength *int64 `form:"minimum_length"`
}

// CustomTextParams holds texts displayed on the hosted page.
type CustomTextParams struct {
	AfterSubmit              *CustomTextMessageParams `form:"after_submit"`
	ShippingAddress          *CustomTextMessageParams `form:"shipping_address"`
	Submit                   *CustomTextMessageParams `form:"submit"`
	TermsOfServiceAcceptance *CustomTextMessageParams `form:"terms_of_service_acceptance"`
}

// CustomTextMessageParams is a message of up to 1200 characters.
type CustomTextMessageParams struct {
	Message string `form:"message,required"`
}

// CustomerUpdateParams controls what Checkout saves to an existing Customer.
type CustomerUpdateParams struct {
	Address  *CustomerUpdateBehavior `form:"address"`
	Name     *CustomerUpdateBehavior `form:"name"`
	Shipping *CustomerUpdateBehavior `form:"shipping"`
}

// DiscountParams applies a coupon or a promotion code.
type DiscountParams struct {
	Coupon        *string `form:"coupon"`
	PromotionCode *string `form:"promotion_code"`
}

// InvoiceCreationParams generates a post-purchase invoice.
type InvoiceCreationParams struct {
	Enabled     bool               `form:"enabled"`
	InvoiceData *InvoiceDataParams `form:"invoice_data"`
}

// NewInvoiceCreationParams returns InvoiceCreationParams with the required fields set.
func NewInvoiceCreationParams(enabled bool) *InvoiceCreationParams {
	return &InvoiceCreationParams{Enabled: enabled}
}

// InvoiceDataParams is passed to the generated invoice.
type InvoiceDataParams struct {
	AccountTaxIDs    []string                       `form:"account_tax_ids"`
	CustomFields     []InvoiceCustomFieldParams     `form:"custom_fields"`
	Description      *string                        `form:"description"`
	Footer           *string                        `form:"footer"`
	Issuer           *Issuer                        `form:"issuer"`
	Metadata         api.Metadata                   `form:"metadata"`
	RenderingOptions *InvoiceRenderingOptionsParams `form:"rendering_options"`
}

// InvoiceCustomFieldParams is a name/value pair shown on the invoice, up to 4.
type InvoiceCustomFieldParams struct {
	Name  string `form:"name,required"`
	Value string `form:"value,required"`
}

// InvoiceRenderingOptionsParams controls how the invoice is rendered.
type InvoiceRenderingOptionsParams struct {
	AmountTaxDisplay *AmountTaxDisplay `form:"amount_tax_display"`
}

// LineItemParams is an item the customer is purchasing.
type LineItemParams struct {
	// AdjustableQuantity lets the customer change the quantity.
	AdjustableQuantity *AdjustableQuantityParams `form:"adjustable_quantity"`

	// DynamicTaxRates are matched against the customer's address.
	DynamicTaxRates []string `form:"dynamic_tax_rates"`

	// Price is the id of a Price object. Exclusive with PriceData.
	Price *string `form:"price"`

	// PriceData creates a one-off Price inline. Exclusive with Price.
	PriceData *PriceDataParams `form:"price_data"`

	// Quantity is required unless AdjustableQuantity is set in payment mode.
	Quantity *int64 `form:"quantity"`

	TaxRates []string `form:"tax_rates"`
}

// AdjustableQuantityParams bounds the quantity the customer can pick. The
// bounds are between 0 and 999999.
type AdjustableQuantityParams struct {
	Enabled bool   `form:"enabled"`
	Maximum *int64 `form:"maximum"`
	Minimum *int64 `form:"minimum"`
}

// NewAdjustableQuantityParams returns AdjustableQuantityParams with the required fields set.
func NewAdjustableQuantityParams(enabled bool) *AdjustableQuantityParams {
	return &AdjustableQuantityParams{Enabled: enabled}
}

// PriceDataParams creates a Price inline.
type PriceDataParams struct {
	Currency api.Currency `form:"currency,required"`

	// Product is the id of a Product. Exclusive with ProductData.
	Product *string `form:"product"`

	// ProductData creates a Product inline. Exclusive with Product.
	ProductData *ProductDataParams `form:"product_data"`

	Recurring   *RecurringParams `form:"recurring"`
	TaxBehavior *TaxBehavior     `form:"tax_behavior"`

	// UnitAmount is in the currency's minor unit. Exclusive with
	// UnitAmountDecimal.
	UnitAmount *int64 `form:"unit_amount"`

	// UnitAmountDecimal allows up to 12 decimal places.
	UnitAmountDecimal *string `form:"unit_amount_decimal"`
}

// NewPriceDataParams returns PriceDataParams with the required fields set.
func NewPriceDataParams(currency api.Currency) *PriceDataParams {
	return &PriceDataParams{Currency: currency}
}

// ProductDataParams creates a Product inline.
type ProductDataParams struct {
	Description *string      `form:"description"`
	Images      []string     `form:"images"`
	Metadata    api.Metadata `form:"metadata"`
	Name        string       `form:"name,required"`
	TaxCode     *string      `form:"tax_code"`
}

// NewProductDataParams returns ProductDataParams with the required fields set.
func NewProductDataParams(name string) *ProductDataParams {
	return &ProductDataParams{Name: name}
}

// RecurringParams makes a Price recurring.
type RecurringParams struct {
	Interval RecurringInterval `form:"interval,required"`

	// IntervalCount is at most one year, e.g. 12 for a monthly interval.
	IntervalCount *int64 `form:"interval_count"`
}

// NewRecurringParams returns RecurringParams with the required fields set.
func NewRecurringParams(interval RecurringInterval) *RecurringParams {
	return &RecurringParams{Interval: interval}
}

// PaymentIntentDataParams is passed to the PaymentIntent.
type PaymentIntentDataParams struct {
	ApplicationFeeAmount *int64         `form:"application_fee_amount"`
	CaptureMethod        *CaptureMethod `form:"capture_method"`
	Description          *string        `form:"description"`
	Metadata             api.Metadata   `form:"metadata"`
	OnBehalfOf           *string        `form:"on_behalf_of"`
	ReceiptEmail         *string        `form:"receipt_email"`

	// SetupFutureUsage only accepts off_session and on_session.
	SetupFutureUsage *SetupFutureUsage `form:"setup_future_usage"`

	Shipping                  *ShippingParams     `form:"shipping"`
	StatementDescriptor       *string             `form:"statement_descriptor"`
	StatementDescriptorSuffix *string             `form:"statement_descriptor_suffix"`
	TransferData              *TransferDataParams `form:"transfer_data"`
	TransferGroup             *string             `form:"transfer_group"`
}

// ShippingParams is the shipping information of a payment.
type ShippingParams struct {
	Address        AddressParams `form:"address"`
	Carrier        *string       `form:"carrier"`
	Name           string        `form:"name,required"`
	Phone          *string       `form:"phone"`
	TrackingNumber *string       `form:"tracking_number"`
}

// NewShippingParams returns ShippingParams with the required fields set.
func NewShippingParams(name, line1 string) *ShippingParams {
	return &ShippingParams{Name: name, Address: AddressParams{Line1: line1}}
}

// AddressParams is a postal address.
type AddressParams struct {
	City       *string      `form:"city"`
	Country    *api.Country `form:"country"`
	Line1      string       `form:"line1,required"`
	Line2      *string      `form:"line2"`
	PostalCode *string      `form:"postal_code"`
	State      *string      `form:"state"`
}

// TransferDataParams moves funds to a connected account.
type TransferDataParams struct {
	// Amount defaults to the full amount.
	Amount      *int64 `form:"amount"`
	Destination string `form:"destination,required"`
}

// PhoneNumberCollectionParams enables phone number collection.
type PhoneNumberCollectionParams struct {
	Enabled bool `form:"enabled"`
}

// SetupIntentDataParams is passed to the SetupIntent.
type SetupIntentDataParams struct {
	Description *string      `form:"description"`
	Metadata    api.Metadata `form:"metadata"`
	OnBehalfOf  *string      `form:"on_behalf_of"`
}

// ShippingAddressCollectionParams lists the countries Checkout ships to.
type ShippingAddressCollectionParams struct {
	AllowedCountries []api.Country `form:"allowed_countries,required"`
}

// NewShippingAddressCollectionParams returns ShippingAddressCollectionParams with the required fields set.
func NewShippingAddressCollectionParams(countries ...api.Country) *ShippingAddressCollectionParams {
	return &ShippingAddressCollectionParams{AllowedCountries: countries}
}

// ShippingOptionParams is a shipping rate offered to the customer.
type ShippingOptionParams struct {
	// ShippingRate is the id of a ShippingRate. Exclusive with ShippingRateData.
	ShippingRate *string `form:"shipping_rate"`

	// ShippingRateData creates a ShippingRate inline. Exclusive with ShippingRate.
	ShippingRateData *ShippingRateDataParams `form:"shipping_rate_data"`
}

// ShippingRateDataParams creates a ShippingRate inline.
type ShippingRateDataParams struct {
	DeliveryEstimate *DeliveryEstimateParams `form:"delivery_estimate"`

	// DisplayName is shown to the customer, up to 100 characters.
	DisplayName string `form:"display_name,required"`

	// FixedAmount is required when Type is fixed_amount.
	FixedAmount *FixedAmountParams `form:"fixed_amount"`

	Metadata    api.Metadata      `form:"metadata"`
	TaxBehavior *TaxBehavior      `form:"tax_behavior"`
	TaxCode     *string           `form:"tax_code"`
	Type        *ShippingRateType `form:"type"`
}

// NewShippingRateDataParams returns ShippingRateDataParams with the required fields set.
func NewShippingRateDataParams(displayName string) *ShippingRateDataParams {
	return &ShippingRateDataParams{DisplayName: displayName}
}

// DeliveryEstimateParams is the estimated range for how long shipping takes.
type DeliveryEstimateParams struct {
	Maximum *DeliveryEstimateBoundParams `form:"maximum"`
	Minimum *DeliveryEstimateBoundParams `form:"minimum"`
}

// DeliveryEstimateBoundParams is one end of a delivery estimate.
type DeliveryEstimateBoundParams struct {
	Unit  DeliveryEstimateUnit `form:"unit,required"`
	Value int64                `form:"value"`
}

// FixedAmountParams is a flat shipping amount.
type FixedAmountParams struct {
	Amount   int64        `form:"amount"`
	Currency api.Currency `form:"currency,required"`

	// CurrencyOptions holds the amount to charge in other currencies.
	CurrencyOptions map[api.Currency]CurrencyOptionParams `form:"currency_options"`
}

// NewFixedAmountParams returns FixedAmountParams with the required fields set.
func NewFixedAmountParams(amount int64, currency api.Currency) *FixedAmountParams {
	return &FixedAmountParams{Amount: amount, Currency: currency}
}

// CurrencyOptionParams is the shipping amount in one currency.
type CurrencyOptionParams struct {
	Amount      int64        `form:"amount"`
	TaxBehavior *TaxBehavior `form:"tax_behavior"`
}

// SubscriptionDataParams is passed to the Subscription.
type SubscriptionDataParams struct {
	// ApplicationFeePercent is a non-negative decimal between 0 and 100.
	ApplicationFeePercent *float64 `form:"application_fee_percent"`

	BillingCycleAnchor *api.Timestamp `form:"billing_cycle_anchor"`
	DefaultTaxRates    []string       `form:"default_tax_rates"`
	Description        *string        `form:"description"`

	InvoiceSettings *SubscriptionInvoiceSettingsParams `form:"invoice_settings"`

	Metadata          api.Metadata       `form:"metadata"`
	OnBehalfOf        *string            `form:"on_behalf_of"`
	ProrationBehavior *ProrationBehavior `form:"proration_behavior"`

	TransferData *SubscriptionTransferDataParams `form:"transfer_data"`

	// TrialEnd must be at least 48 hours in the future.
	TrialEnd *api.Timestamp `form:"trial_end"`

	// TrialPeriodDays must be at least 1.
	TrialPeriodDays *int64 `form:"trial_period_days"`

	TrialSettings *TrialSettingsParams `form:"trial_settings"`
}

// SubscriptionInvoiceSettingsParams configures the invoices of the subscription.
type SubscriptionInvoiceSettingsParams struct {
	Issuer *Issuer `form:"issuer"`
}

// SubscriptionTransferDataParams sends part of each invoice to a connected account.
type SubscriptionTransferDataParams struct {
	// AmountPercent is the share of the invoice total sent to the destination.
	AmountPercent *float64 `form:"amount_percent"`
	Destination   string   `form:"destination,required"`
}

// TrialSettingsParams configures the end of the trial.
type TrialSettingsParams struct {
	EndBehavior TrialEndBehaviorParams `form:"end_behavior"`
}

// TrialEndBehaviorParams decides what happens when a trial ends without a payment method.
type TrialEndBehaviorParams struct {
	MissingPaymentMethod MissingPaymentMethod `form:"missing_payment_method,required"`
}

// NewTrialSettingsParams returns TrialSettingsParams with the required fields set.
func NewTrialSettingsParams(missing MissingPaymentMethod) *TrialSettingsParams {
	return &TrialSettingsParams{EndBehavior: TrialEndBehaviorParams{MissingPaymentMethod: missing}}
}

// TaxIDCollectionParams enables tax id collection.
type TaxIDCollectionParams struct {
	Enabled bool `form:"enabled"`
}
