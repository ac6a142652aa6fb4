package checkout

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"

// Mode is the mode of a Checkout Session.
type Mode string

const (
	ModePayment      Mode = "payment"
	ModeSetup        Mode = "setup"
	ModeSubscription Mode = "subscription"
)

// Modes is the codec of Mode.
var Modes = enum.Closed("CheckoutSessionMode",
	ModePayment,
	ModeSetup,
	ModeSubscription,
)

// Status is the lifecycle status of a Checkout Session.
type Status string

const (
	StatusComplete Status = "complete"
	StatusExpired  Status = "expired"
	StatusOpen     Status = "open"
)

// Statuses is the codec of Status.
var Statuses = enum.Closed("CheckoutSessionStatus",
	StatusComplete,
	StatusExpired,
	StatusOpen,
)

// PaymentStatus tells whether the payment of a Checkout Session went through.
type PaymentStatus string

const (
	PaymentStatusNoPaymentRequired PaymentStatus = "no_payment_required"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusUnpaid            PaymentStatus = "unpaid"
)

// PaymentStatuses is the codec of PaymentStatus.
var PaymentStatuses = enum.Closed("CheckoutSessionPaymentStatus",
	PaymentStatusNoPaymentRequired,
	PaymentStatusPaid,
	PaymentStatusUnpaid,
)

// BillingAddressCollection decides when the billing address is collected.
type BillingAddressCollection string

const (
	BillingAddressCollectionAuto     BillingAddressCollection = "auto"
	BillingAddressCollectionRequired BillingAddressCollection = "required"
)

// BillingAddressCollections is the codec of BillingAddressCollection.
var BillingAddressCollections = enum.Closed("CheckoutSessionBillingAddressCollection",
	BillingAddressCollectionAuto,
	BillingAddressCollectionRequired,
)

// CustomerCreation controls whether a Customer is created in payment mode.
type CustomerCreation string

const (
	CustomerCreationAlways     CustomerCreation = "always"
	CustomerCreationIfRequired CustomerCreation = "if_required"
)

// CustomerCreations is the codec of CustomerCreation.
var CustomerCreations = enum.Closed("CheckoutSessionCustomerCreation",
	CustomerCreationAlways,
	CustomerCreationIfRequired,
)

// PaymentMethodCollection decides when a payment method is collected.
type PaymentMethodCollection string

const (
	PaymentMethodCollectionAlways     PaymentMethodCollection = "always"
	PaymentMethodCollectionIfRequired PaymentMethodCollection = "if_required"
)

// PaymentMethodCollections is the codec of PaymentMethodCollection.
var PaymentMethodCollections = enum.Closed("CheckoutSessionPaymentMethodCollection",
	PaymentMethodCollectionAlways,
	PaymentMethodCollectionIfRequired,
)

// RedirectOnCompletion applies to embedded sessions only.
type RedirectOnCompletion string

const (
	RedirectOnCompletionAlways     RedirectOnCompletion = "always"
	RedirectOnCompletionIfRequired RedirectOnCompletion = "if_required"
	RedirectOnCompletionNever      RedirectOnCompletion = "never"
)

// RedirectOnCompletions is the codec of RedirectOnCompletion.
var RedirectOnCompletions = enum.Closed("CheckoutSessionRedirectOnCompletion",
	RedirectOnCompletionAlways,
	RedirectOnCompletionIfRequired,
	RedirectOnCompletionNever,
)

// SubmitType sets the text of the submit button of a hosted page.
type SubmitType string

const (
	SubmitTypeAuto   SubmitType = "auto"
	SubmitTypeBook   SubmitType = "book"
	SubmitTypeDonate SubmitType = "donate"
	SubmitTypePay    SubmitType = "pay"
)

// SubmitTypes is the codec of SubmitType.
var SubmitTypes = enum.Closed("CheckoutSessionSubmitType",
	SubmitTypeAuto,
	SubmitTypeBook,
	SubmitTypeDonate,
	SubmitTypePay,
)

// UIMode is how the Checkout page is displayed.
type UIMode string

const (
	UIModeEmbedded UIMode = "embedded"
	UIModeHosted   UIMode = "hosted"
)

// UIModes is the codec of UIMode.
var UIModes = enum.Closed("CheckoutSessionUIMode",
	UIModeEmbedded,
	UIModeHosted,
)

// IssuerType selects whose account an invoice or a tax liability belongs to.
type IssuerType string

const (
	IssuerTypeAccount IssuerType = "account"
	IssuerTypeSelf    IssuerType = "self"
)

// IssuerTypes is the codec of IssuerType.
var IssuerTypes = enum.Closed("CheckoutSessionIssuerType",
	IssuerTypeAccount,
	IssuerTypeSelf,
)

// AutomaticTaxStatus is the result of the automatic tax calculation.
type AutomaticTaxStatus string

const (
	AutomaticTaxStatusComplete               AutomaticTaxStatus = "complete"
	AutomaticTaxStatusFailed                 AutomaticTaxStatus = "failed"
	AutomaticTaxStatusRequiresLocationInputs AutomaticTaxStatus = "requires_location_inputs"
)

// AutomaticTaxStatuses is the codec of AutomaticTaxStatus.
var AutomaticTaxStatuses = enum.Closed("CheckoutSessionAutomaticTaxStatus",
	AutomaticTaxStatusComplete,
	AutomaticTaxStatusFailed,
	AutomaticTaxStatusRequiresLocationInputs,
)

// ConsentCollectionPromotions asks for consent to promotional emails.
type ConsentCollectionPromotions string

const (
	ConsentCollectionPromotionsAuto ConsentCollectionPromotions = "auto"
	ConsentCollectionPromotionsNone ConsentCollectionPromotions = "none"
)

// ConsentCollectionPromotionsValues is the codec of ConsentCollectionPromotions.
var ConsentCollectionPromotionsValues = enum.Closed("CheckoutSessionConsentCollectionPromotions",
	ConsentCollectionPromotionsAuto,
	ConsentCollectionPromotionsNone,
)

// ConsentCollectionTermsOfService asks the customer to accept the terms of service.
type ConsentCollectionTermsOfService string

const (
	ConsentCollectionTermsOfServiceNone     ConsentCollectionTermsOfService = "none"
	ConsentCollectionTermsOfServiceRequired ConsentCollectionTermsOfService = "required"
)

// ConsentCollectionTermsOfServiceValues is the codec of ConsentCollectionTermsOfService.
var ConsentCollectionTermsOfServiceValues = enum.Closed("CheckoutSessionConsentCollectionTermsOfService",
	ConsentCollectionTermsOfServiceNone,
	ConsentCollectionTermsOfServiceRequired,
)

// PaymentMethodReuseAgreementPosition is where the reuse agreement is shown.
type PaymentMethodReuseAgreementPosition string

const (
	PaymentMethodReuseAgreementPositionAuto   PaymentMethodReuseAgreementPosition = "auto"
	PaymentMethodReuseAgreementPositionHidden PaymentMethodReuseAgreementPosition = "hidden"
)

// PaymentMethodReuseAgreementPositions is the codec of PaymentMethodReuseAgreementPosition.
var PaymentMethodReuseAgreementPositions = enum.Closed("CheckoutSessionPaymentMethodReuseAgreementPosition",
	PaymentMethodReuseAgreementPositionAuto,
	PaymentMethodReuseAgreementPositionHidden,
)

// ConsentPromotions is the customer's answer to the promotional emails question.
type ConsentPromotions string

const (
	ConsentPromotionsOptIn  ConsentPromotions = "opt_in"
	ConsentPromotionsOptOut ConsentPromotions = "opt_out"
)

// ConsentPromotionsValues is the codec of ConsentPromotions.
var ConsentPromotionsValues = enum.Closed("CheckoutSessionConsentPromotions",
	ConsentPromotionsOptIn,
	ConsentPromotionsOptOut,
)

// ConsentTermsOfService is whether the customer accepted the terms of service.
type ConsentTermsOfService string

const (
	ConsentTermsOfServiceAccepted ConsentTermsOfService = "accepted"
)

// ConsentTermsOfServiceValues is the codec of ConsentTermsOfService.
var ConsentTermsOfServiceValues = enum.Closed("CheckoutSessionConsentTermsOfService",
	ConsentTermsOfServiceAccepted,
)

// CustomFieldType is the kind of input of a custom field.
type CustomFieldType string

const (
	CustomFieldTypeDropdown CustomFieldType = "dropdown"
	CustomFieldTypeNumeric  CustomFieldType = "numeric"
	CustomFieldTypeText     CustomFieldType = "text"
)

// CustomFieldTypes is the codec of CustomFieldType.
var CustomFieldTypes = enum.Closed("CheckoutSessionCustomFieldType",
	CustomFieldTypeDropdown,
	CustomFieldTypeNumeric,
	CustomFieldTypeText,
)

// CustomFieldLabelType is the kind of label of a custom field.
type CustomFieldLabelType string

const (
	CustomFieldLabelTypeCustom CustomFieldLabelType = "custom"
)

// CustomFieldLabelTypes is the codec of CustomFieldLabelType.
var CustomFieldLabelTypes = enum.Closed("CheckoutSessionCustomFieldLabelType",
	CustomFieldLabelTypeCustom,
)

// CustomerUpdateBehavior controls whether the details collected by Checkout
// are saved back to an existing Customer.
type CustomerUpdateBehavior string

const (
	CustomerUpdateBehaviorAuto  CustomerUpdateBehavior = "auto"
	CustomerUpdateBehaviorNever CustomerUpdateBehavior = "never"
)

// CustomerUpdateBehaviors is the codec of CustomerUpdateBehavior.
var CustomerUpdateBehaviors = enum.Closed("CheckoutSessionCustomerUpdateBehavior",
	CustomerUpdateBehaviorAuto,
	CustomerUpdateBehaviorNever,
)

// AmountTaxDisplay is how taxes are shown on the invoice.
type AmountTaxDisplay string

const (
	AmountTaxDisplayExcludeTax          AmountTaxDisplay = "exclude_tax"
	AmountTaxDisplayIncludeInclusiveTax AmountTaxDisplay = "include_inclusive_tax"
)

// AmountTaxDisplays is the codec of AmountTaxDisplay.
var AmountTaxDisplays = enum.Closed("CheckoutSessionAmountTaxDisplay",
	AmountTaxDisplayExcludeTax,
	AmountTaxDisplayIncludeInclusiveTax,
)

// RecurringInterval is the billing frequency of a recurring price.
type RecurringInterval string

const (
	RecurringIntervalDay   RecurringInterval = "day"
	RecurringIntervalMonth RecurringInterval = "month"
	RecurringIntervalWeek  RecurringInterval = "week"
	RecurringIntervalYear  RecurringInterval = "year"
)

// RecurringIntervals is the codec of RecurringInterval.
var RecurringIntervals = enum.Closed("CheckoutSessionRecurringInterval",
	RecurringIntervalDay,
	RecurringIntervalMonth,
	RecurringIntervalWeek,
	RecurringIntervalYear,
)

// TaxBehavior tells whether a price includes tax. Once set to inclusive or
// exclusive it cannot be changed.
type TaxBehavior string

const (
	TaxBehaviorExclusive   TaxBehavior = "exclusive"
	TaxBehaviorInclusive   TaxBehavior = "inclusive"
	TaxBehaviorUnspecified TaxBehavior = "unspecified"
)

// TaxBehaviors is the codec of TaxBehavior.
var TaxBehaviors = enum.Closed("CheckoutSessionTaxBehavior",
	TaxBehaviorExclusive,
	TaxBehaviorInclusive,
	TaxBehaviorUnspecified,
)

// CaptureMethod is when the funds are captured.
type CaptureMethod string

const (
	CaptureMethodAutomatic      CaptureMethod = "automatic"
	CaptureMethodAutomaticAsync CaptureMethod = "automatic_async"
	CaptureMethodManual         CaptureMethod = "manual"
)

// CaptureMethods is the codec of CaptureMethod.
var CaptureMethods = enum.Closed("CheckoutSessionCaptureMethod",
	CaptureMethodAutomatic,
	CaptureMethodAutomaticAsync,
	CaptureMethodManual,
)

// SetupFutureUsage indicates how a payment method will be reused. Not every
// payment method accepts every value; Stripe rejects invalid combinations.
type SetupFutureUsage string

const (
	SetupFutureUsageNone       SetupFutureUsage = "none"
	SetupFutureUsageOffSession SetupFutureUsage = "off_session"
	SetupFutureUsageOnSession  SetupFutureUsage = "on_session"
)

// SetupFutureUsages is the codec of SetupFutureUsage.
var SetupFutureUsages = enum.Closed("CheckoutSessionSetupFutureUsage",
	SetupFutureUsageNone,
	SetupFutureUsageOffSession,
	SetupFutureUsageOnSession,
)

// ShippingRateType is the pricing model of a shipping rate.
type ShippingRateType string

const (
	ShippingRateTypeFixedAmount ShippingRateType = "fixed_amount"
)

// ShippingRateTypes is the codec of ShippingRateType.
var ShippingRateTypes = enum.Closed("CheckoutSessionShippingRateType",
	ShippingRateTypeFixedAmount,
)

// DeliveryEstimateUnit is the unit of a delivery estimate.
type DeliveryEstimateUnit string

const (
	DeliveryEstimateUnitBusinessDay DeliveryEstimateUnit = "business_day"
	DeliveryEstimateUnitDay         DeliveryEstimateUnit = "day"
	DeliveryEstimateUnitHour        DeliveryEstimateUnit = "hour"
	DeliveryEstimateUnitMonth       DeliveryEstimateUnit = "month"
	DeliveryEstimateUnitWeek        DeliveryEstimateUnit = "week"
)

// DeliveryEstimateUnits is the codec of DeliveryEstimateUnit.
var DeliveryEstimateUnits = enum.Closed("CheckoutSessionDeliveryEstimateUnit",
	DeliveryEstimateUnitBusinessDay,
	DeliveryEstimateUnitDay,
	DeliveryEstimateUnitHour,
	DeliveryEstimateUnitMonth,
	DeliveryEstimateUnitWeek,
)

// ProrationBehavior decides how changes to a subscription are prorated.
type ProrationBehavior string

const (
	ProrationBehaviorCreateProrations ProrationBehavior = "create_prorations"
	ProrationBehaviorNone             ProrationBehavior = "none"
)

// ProrationBehaviors is the codec of ProrationBehavior.
var ProrationBehaviors = enum.Closed("CheckoutSessionProrationBehavior",
	ProrationBehaviorCreateProrations,
	ProrationBehaviorNone,
)

// MissingPaymentMethod is what happens when a trial ends without a payment method.
type MissingPaymentMethod string

const (
	MissingPaymentMethodCancel        MissingPaymentMethod = "cancel"
	MissingPaymentMethodCreateInvoice MissingPaymentMethod = "create_invoice"
	MissingPaymentMethodPause         MissingPaymentMethod = "pause"
)

// MissingPaymentMethods is the codec of MissingPaymentMethod.
var MissingPaymentMethods = enum.Closed("CheckoutSessionMissingPaymentMethod",
	MissingPaymentMethodCancel,
	MissingPaymentMethodCreateInvoice,
	MissingPaymentMethodPause,
)

// TaxExempt is the tax exemption status of a customer.
type TaxExempt string

const (
	TaxExemptExempt  TaxExempt = "exempt"
	TaxExemptNone    TaxExempt = "none"
	TaxExemptReverse TaxExempt = "reverse"
)

// TaxExempts is the codec of TaxExempt.
var TaxExempts = enum.Closed("CheckoutSessionTaxExempt",
	TaxExemptExempt,
	TaxExemptNone,
	TaxExemptReverse,
)

// PriceType tells one-time prices from recurring ones.
type PriceType string

const (
	PriceTypeOneTime   PriceType = "one_time"
	PriceTypeRecurring PriceType = "recurring"
)

// PriceTypes is the codec of PriceType.
var PriceTypes = enum.Closed("PriceType",
	PriceTypeOneTime,
	PriceTypeRecurring,
)

// BillingScheme is how the unit amount of a price is computed.
type BillingScheme string

const (
	BillingSchemePerUnit BillingScheme = "per_unit"
	BillingSchemeTiered  BillingScheme = "tiered"
)

// BillingSchemes is the codec of BillingScheme.
var BillingSchemes = enum.Closed("PriceBillingScheme",
	BillingSchemePerUnit,
	BillingSchemeTiered,
)

// TaxabilityReason explains why a line item was taxed or not.
type TaxabilityReason string

const (
	TaxabilityReasonCustomerExempt       TaxabilityReason = "customer_exempt"
	TaxabilityReasonNotCollecting        TaxabilityReason = "not_collecting"
	TaxabilityReasonNotSubjectToTax      TaxabilityReason = "not_subject_to_tax"
	TaxabilityReasonNotSupported         TaxabilityReason = "not_supported"
	TaxabilityReasonPortionProductExempt TaxabilityReason = "portion_product_exempt"
	TaxabilityReasonPortionReducedRated  TaxabilityReason = "portion_reduced_rated"
	TaxabilityReasonPortionStandardRated TaxabilityReason = "portion_standard_rated"
	TaxabilityReasonProductExempt        TaxabilityReason = "product_exempt"
	TaxabilityReasonProductExemptHoliday TaxabilityReason = "product_exempt_holiday"
	TaxabilityReasonProportionallyRated  TaxabilityReason = "proportionally_rated"
	TaxabilityReasonReducedRated         TaxabilityReason = "reduced_rated"
	TaxabilityReasonReverseCharge        TaxabilityReason = "reverse_charge"
	TaxabilityReasonStandardRated        TaxabilityReason = "standard_rated"
	TaxabilityReasonTaxableBasisReduced  TaxabilityReason = "taxable_basis_reduced"
	TaxabilityReasonZeroRated            TaxabilityReason = "zero_rated"
)

// TaxabilityReasons is the codec of TaxabilityReason.
var TaxabilityReasons = enum.Closed("LineItemTaxabilityReason",
	TaxabilityReasonCustomerExempt,
	TaxabilityReasonNotCollecting,
	TaxabilityReasonNotSubjectToTax,
	TaxabilityReasonNotSupported,
	TaxabilityReasonPortionProductExempt,
	TaxabilityReasonPortionReducedRated,
	TaxabilityReasonPortionStandardRated,
	TaxabilityReasonProductExempt,
	TaxabilityReasonProductExemptHoliday,
	TaxabilityReasonProportionallyRated,
	TaxabilityReasonReducedRated,
	TaxabilityReasonReverseCharge,
	TaxabilityReasonStandardRated,
	TaxabilityReasonTaxableBasisReduced,
	TaxabilityReasonZeroRated,
)
