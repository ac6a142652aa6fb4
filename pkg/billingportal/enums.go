package billingportal

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"

// CustomerUpdateAllowedUpdate is a customer detail the portal lets customers edit.
type CustomerUpdateAllowedUpdate string

const (
	CustomerUpdateAllowedUpdateAddress  CustomerUpdateAllowedUpdate = "address"
	CustomerUpdateAllowedUpdateEmail    CustomerUpdateAllowedUpdate = "email"
	CustomerUpdateAllowedUpdateName     CustomerUpdateAllowedUpdate = "name"
	CustomerUpdateAllowedUpdatePhone    CustomerUpdateAllowedUpdate = "phone"
	CustomerUpdateAllowedUpdateShipping CustomerUpdateAllowedUpdate = "shipping"
	CustomerUpdateAllowedUpdateTaxID    CustomerUpdateAllowedUpdate = "tax_id"
)

// CustomerUpdateAllowedUpdates is the codec of CustomerUpdateAllowedUpdate.
var CustomerUpdateAllowedUpdates = enum.Closed("BillingPortalCustomerUpdateAllowedUpdate",
	CustomerUpdateAllowedUpdateAddress,
	CustomerUpdateAllowedUpdateEmail,
	CustomerUpdateAllowedUpdateName,
	CustomerUpdateAllowedUpdatePhone,
	CustomerUpdateAllowedUpdateShipping,
	CustomerUpdateAllowedUpdateTaxID,
)

// SubscriptionCancelMode tells whether a subscription is canceled at once or
// at the end of the billing period.
type SubscriptionCancelMode string

const (
	SubscriptionCancelModeAtPeriodEnd SubscriptionCancelMode = "at_period_end"
	SubscriptionCancelModeImmediately SubscriptionCancelMode = "immediately"
)

// SubscriptionCancelModes is the codec of SubscriptionCancelMode.
var SubscriptionCancelModes = enum.Closed("BillingPortalSubscriptionCancelMode",
	SubscriptionCancelModeAtPeriodEnd,
	SubscriptionCancelModeImmediately,
)

// SubscriptionCancelProrationBehavior decides how an immediate cancellation is prorated.
type SubscriptionCancelProrationBehavior string

const (
	SubscriptionCancelProrationBehaviorAlwaysInvoice    SubscriptionCancelProrationBehavior = "always_invoice"
	SubscriptionCancelProrationBehaviorCreateProrations SubscriptionCancelProrationBehavior = "create_prorations"
	SubscriptionCancelProrationBehaviorNone             SubscriptionCancelProrationBehavior = "none"
)

// SubscriptionCancelProrationBehaviors is the codec of SubscriptionCancelProrationBehavior.
var SubscriptionCancelProrationBehaviors = enum.Closed("BillingPortalSubscriptionCancelProrationBehavior",
	SubscriptionCancelProrationBehaviorAlwaysInvoice,
	SubscriptionCancelProrationBehaviorCreateProrations,
	SubscriptionCancelProrationBehaviorNone,
)

// CancellationReasonOption is a reason customers can pick when they cancel.
type CancellationReasonOption string

const (
	CancellationReasonOptionCustomerService CancellationReasonOption = "customer_service"
	CancellationReasonOptionLowQuality      CancellationReasonOption = "low_quality"
	CancellationReasonOptionMissingFeatures CancellationReasonOption = "missing_features"
	CancellationReasonOptionOther           CancellationReasonOption = "other"
	CancellationReasonOptionSwitchedService CancellationReasonOption = "switched_service"
	CancellationReasonOptionTooComplex      CancellationReasonOption = "too_complex"
	CancellationReasonOptionTooExpensive    CancellationReasonOption = "too_expensive"
	CancellationReasonOptionUnused          CancellationReasonOption = "unused"
)

// CancellationReasonOptions is the codec of CancellationReasonOption.
var CancellationReasonOptions = enum.Closed("BillingPortalCancellationReasonOption",
	CancellationReasonOptionCustomerService,
	CancellationReasonOptionLowQuality,
	CancellationReasonOptionMissingFeatures,
	CancellationReasonOptionOther,
	CancellationReasonOptionSwitchedService,
	CancellationReasonOptionTooComplex,
	CancellationReasonOptionTooExpensive,
	CancellationReasonOptionUnused,
)

// SubscriptionUpdateDefaultAllowedUpdate is something customers may change on a subscription.
type SubscriptionUpdateDefaultAllowedUpdate string

const (
	SubscriptionUpdateDefaultAllowedUpdatePrice         SubscriptionUpdateDefaultAllowedUpdate = "price"
	SubscriptionUpdateDefaultAllowedUpdatePromotionCode SubscriptionUpdateDefaultAllowedUpdate = "promotion_code"
	SubscriptionUpdateDefaultAllowedUpdateQuantity      SubscriptionUpdateDefaultAllowedUpdate = "quantity"
)

// SubscriptionUpdateDefaultAllowedUpdates is the codec of SubscriptionUpdateDefaultAllowedUpdate.
var SubscriptionUpdateDefaultAllowedUpdates = enum.Closed("BillingPortalSubscriptionUpdateDefaultAllowedUpdate",
	SubscriptionUpdateDefaultAllowedUpdatePrice,
	SubscriptionUpdateDefaultAllowedUpdatePromotionCode,
	SubscriptionUpdateDefaultAllowedUpdateQuantity,
)

// SubscriptionUpdateProrationBehavior decides how prorations are handled
// when a customer changes their subscription in the portal.
type SubscriptionUpdateProrationBehavior string

const (
	SubscriptionUpdateProrationBehaviorAlwaysInvoice    SubscriptionUpdateProrationBehavior = "always_invoice"
	SubscriptionUpdateProrationBehaviorCreateProrations SubscriptionUpdateProrationBehavior = "create_prorations"
	SubscriptionUpdateProrationBehaviorNone             SubscriptionUpdateProrationBehavior = "none"
)

// SubscriptionUpdateProrationBehaviors is the codec of SubscriptionUpdateProrationBehavior.
var SubscriptionUpdateProrationBehaviors = enum.Closed("BillingPortalSubscriptionUpdateProrationBehavior",
	SubscriptionUpdateProrationBehaviorAlwaysInvoice,
	SubscriptionUpdateProrationBehaviorCreateProrations,
	SubscriptionUpdateProrationBehaviorNone,
)

// FlowType is the kind of deep link a portal session opens with.
type FlowType string

const (
	FlowTypePaymentMethodUpdate       FlowType = "payment_method_update"
	FlowTypeSubscriptionCancel        FlowType = "subscription_cancel"
	FlowTypeSubscriptionUpdate        FlowType = "subscription_update"
	FlowTypeSubscriptionUpdateConfirm FlowType = "subscription_update_confirm"
)

// FlowTypes is the codec of FlowType.
var FlowTypes = enum.Closed("BillingPortalSessionFlowType",
	FlowTypePaymentMethodUpdate,
	FlowTypeSubscriptionCancel,
	FlowTypeSubscriptionUpdate,
	FlowTypeSubscriptionUpdateConfirm,
)

// AfterCompletionType is what happens once a flow completes.
type AfterCompletionType string

const (
	AfterCompletionTypeHostedConfirmation AfterCompletionType = "hosted_confirmation"
	AfterCompletionTypePortalHomepage     AfterCompletionType = "portal_homepage"
	AfterCompletionTypeRedirect           AfterCompletionType = "redirect"
)

// AfterCompletionTypes is the codec of AfterCompletionType.
var AfterCompletionTypes = enum.Closed("BillingPortalSessionAfterCompletionType",
	AfterCompletionTypeHostedConfirmation,
	AfterCompletionTypePortalHomepage,
	AfterCompletionTypeRedirect,
)

// RetentionType is the kind of offer made to keep a customer.
type RetentionType string

const (
	RetentionTypeCouponOffer RetentionType = "coupon_offer"
)

// RetentionTypes is the codec of RetentionType.
var RetentionTypes = enum.Closed("BillingPortalSessionRetentionType",
	RetentionTypeCouponOffer,
)
