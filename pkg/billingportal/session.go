package billingportal

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/api"

// Session is a customer portal session. Its URL is short-lived and must be
// used right after it is created.
type Session struct {
	ID     string `json:"id"`
	Object string `json:"object"`

	// Configuration is the portal configuration used by the session.
	Configuration api.Expandable `json:"configuration"`

	Created  api.Timestamp `json:"created"`
	Customer string        `json:"customer"`
	Flow     *Flow         `json:"flow"`
	Livemode bool          `json:"livemode"`
	Locale   *api.Locale   `json:"locale"`

	OnBehalfOf *string `json:"on_behalf_of"`
	ReturnURL  *string `json:"return_url"`

	// URL opens the portal for the customer.
	URL string `json:"url"`
}

// ObjectID implements api.Object.
func (s Session) ObjectID() string { return s.ID }

// Flow is the deep link a session opened with.
type Flow struct {
	AfterCompletion           AfterCompletion            `json:"after_completion"`
	SubscriptionCancel        *FlowSubscription          `json:"subscription_cancel"`
	SubscriptionUpdate        *FlowSubscription          `json:"subscription_update"`
	SubscriptionUpdateConfirm *SubscriptionUpdateConfirm `json:"subscription_update_confirm"`
	Type                      FlowType                   `json:"type"`
}

// AfterCompletion is what happens once the flow completes.
type AfterCompletion struct {
	HostedConfirmation *HostedConfirmation `json:"hosted_confirmation"`
	Redirect           *Redirect           `json:"redirect"`
	Type               AfterCompletionType `json:"type"`
}

// HostedConfirmation is the confirmation page shown by the portal.
type HostedConfirmation struct {
	CustomMessage *string `json:"custom_message"`
}

// Redirect sends the customer to ReturnURL.
type Redirect struct {
	ReturnURL string `json:"return_url"`
}

// FlowSubscription names the subscription a flow acts on.
type FlowSubscription struct {
	Subscription string `json:"subscription"`
}

// SubscriptionUpdateConfirm is the update the customer is asked to confirm.
type SubscriptionUpdateConfirm struct {
	Discounts    []FlowDiscount `json:"discounts,omitempty"`
	Items        []FlowItem     `json:"items"`
	Subscription string         `json:"subscription"`
}

// FlowDiscount is a discount applied by a flow.
type FlowDiscount struct {
	Coupon        *string `json:"coupon"`
	PromotionCode *string `json:"promotion_code"`
}

// FlowItem is a subscription item changed by a flow.
type FlowItem struct {
	ID       *string `json:"id"`
	Price    *string `json:"price"`
	Quantity *int64  `json:"quantity,omitempty"`
}

// CreateBillingPortalSession holds the parameters of
// POST /billing_portal/sessions.
type CreateBillingPortalSession struct {
	// Configuration defaults to the default portal configuration.
	Configuration *string `form:"configuration"`

	// Customer is the id of an existing Customer.
	Customer string `form:"customer,required"`

	Expand []string `form:"expand"`

	// FlowData opens the portal on a specific flow instead of its homepage.
	FlowData *FlowDataParams `form:"flow_data"`

	// Locale defaults to the customer's preferred locales.
	Locale *api.Locale `form:"locale"`

	// OnBehalfOf shows the portal with the branding of this connected account.
	OnBehalfOf *string `form:"on_behalf_of"`

	// ReturnURL is where customers go when they click the return link.
	ReturnURL *string `form:"return_url"`
}

// NewCreateBillingPortalSession returns CreateBillingPortalSession with the
// required fields set.
func NewCreateBillingPortalSession(customer string) *CreateBillingPortalSession {
	return &CreateBillingPortalSession{Customer: customer}
}

// FlowDataParams is a discriminated record: Type selects the flow and the
// matching field holds its settings.
type FlowDataParams struct {
	AfterCompletion           *AfterCompletionParams           `form:"after_completion"`
	SubscriptionCancel        *SubscriptionCancelFlowParams    `form:"subscription_cancel"`
	SubscriptionUpdate        *FlowSubscriptionParams          `form:"subscription_update"`
	SubscriptionUpdateConfirm *SubscriptionUpdateConfirmParams `form:"subscription_update_confirm"`
	Type                      FlowType                         `form:"type,required"`
}

// NewFlowDataParams returns FlowDataParams with the required fields set.
func NewFlowDataParams(typ FlowType) *FlowDataParams {
	return &FlowDataParams{Type: typ}
}

// AfterCompletionParams decides what happens once the flow completes.
type AfterCompletionParams struct {
	HostedConfirmation *HostedConfirmationParams `form:"hosted_confirmation"`

	// Redirect is required when Type is redirect.
	Redirect *RedirectParams     `form:"redirect"`
	Type     AfterCompletionType `form:"type,required"`
}

// HostedConfirmationParams configures the confirmation page.
type HostedConfirmationParams struct {
	CustomMessage *string `form:"custom_message"`
}

// RedirectParams sends the customer to ReturnURL once the flow completes.
type RedirectParams struct {
	ReturnURL string `form:"return_url,required"`
}

// SubscriptionCancelFlowParams opens the cancel flow of a subscription.
type SubscriptionCancelFlowParams struct {
	// Retention offers the customer something before they cancel.
	Retention    *RetentionParams `form:"retention"`
	Subscription string           `form:"subscription,required"`
}

// RetentionParams is an offer made before the customer cancels.
type RetentionParams struct {
	CouponOffer *CouponOfferParams `form:"coupon_offer"`
	Type        RetentionType      `form:"type,required"`
}

// CouponOfferParams offers a coupon.
type CouponOfferParams struct {
	Coupon string `form:"coupon,required"`
}

// FlowSubscriptionParams names the subscription a flow acts on.
type FlowSubscriptionParams struct {
	Subscription string `form:"subscription,required"`
}

// SubscriptionUpdateConfirmParams is the update the customer is asked to confirm.
type SubscriptionUpdateConfirmParams struct {
	// Discounts replace the discounts of the subscription. Only one is supported.
	Discounts    []FlowDiscountParams `form:"discounts"`
	Items        []FlowItemParams     `form:"items,required"`
	Subscription string               `form:"subscription,required"`
}

// FlowDiscountParams is a discount applied by a flow.
type FlowDiscountParams struct {
	Coupon        *string `form:"coupon"`
	PromotionCode *string `form:"promotion_code"`
}

// FlowItemParams is a subscription item changed by a flow.
type FlowItemParams struct {
	// ID is the subscription item to update.
	ID       string  `form:"id,required"`
	Price    *string `form:"price"`
	Quantity *int64  `form:"quantity"`
}
