package billingportal

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/api"

// ListBillingPortalConfiguration holds the parameters of
// GET /billing_portal/configurations.
type ListBillingPortalConfiguration struct {
	// Active only returns active or inactive configurations.
	Active *bool `form:"active"`

	api.ListParams

	Expand []string `form:"expand"`

	// IsDefault only returns the default or the non-default configurations.
	IsDefault *bool `form:"is_default"`
}

// NewListBillingPortalConfiguration returns an empty ListBillingPortalConfiguration.
func NewListBillingPortalConfiguration() *ListBillingPortalConfiguration {
	return &ListBillingPortalConfiguration{}
}

// RetrieveBillingPortalConfiguration holds the parameters of
// GET /billing_portal/configurations/{id}.
type RetrieveBillingPortalConfiguration struct {
	Expand []string `form:"expand"`
}

// NewRetrieveBillingPortalConfiguration returns an empty RetrieveBillingPortalConfiguration.
func NewRetrieveBillingPortalConfiguration() *RetrieveBillingPortalConfiguration {
	return &RetrieveBillingPortalConfiguration{}
}

// CreateBillingPortalConfiguration holds the parameters of
// POST /billing_portal/configurations.
type CreateBillingPortalConfiguration struct {
	BusinessProfile *BusinessProfileParams `form:"business_profile"`

	// DefaultReturnURL is where customers go when they leave the portal.
	DefaultReturnURL *string `form:"default_return_url"`

	Expand []string `form:"expand"`

	// Features lists what customers can do in the portal.
	Features FeaturesParams `form:"features"`

	LoginPage *LoginPageParams `form:"login_page"`
	Metadata  api.Metadata     `form:"metadata"`
}

// NewCreateBillingPortalConfiguration returns CreateBillingPortalConfiguration
// with the required fields set.
func NewCreateBillingPortalConfiguration(features FeaturesParams) *CreateBillingPortalConfiguration {
	return &CreateBillingPortalConfiguration{Features: features}
}

// BusinessProfileParams is the business information shown in the portal.
type BusinessProfileParams struct {
	Headline          *string `form:"headline"`
	PrivacyPolicyURL  *string `form:"privacy_policy_url"`
	TermsOfServiceURL *string `form:"terms_of_service_url"`
}

// FeaturesParams lists what customers can do in a new portal configuration.
type FeaturesParams struct {
	CustomerUpdate      *CustomerUpdateParams     `form:"customer_update"`
	InvoiceHistory      *ToggleParams             `form:"invoice_history"`
	PaymentMethodUpdate *ToggleParams             `form:"payment_method_update"`
	SubscriptionCancel  *SubscriptionCancelParams `form:"subscription_cancel"`
	SubscriptionUpdate  *SubscriptionUpdateParams `form:"subscription_update"`
}

// ToggleParams enables or disables a feature.
type ToggleParams struct {
	Enabled bool `form:"enabled"`
}

// CustomerUpdateParams lets customers update their details.
type CustomerUpdateParams struct {
	AllowedUpdates []CustomerUpdateAllowedUpdate `form:"allowed_updates"`
	Enabled        bool                          `form:"enabled"`
}

// SubscriptionCancelParams lets customers cancel subscriptions.
type SubscriptionCancelParams struct {
	CancellationReason *CancellationReasonParams `form:"cancellation_reason"`
	Enabled            bool                      `form:"enabled"`

	// Mode defaults to at_period_end.
	Mode *SubscriptionCancelMode `form:"mode"`

	// ProrationBehavior only applies when Mode is immediately.
	ProrationBehavior *SubscriptionCancelProrationBehavior `form:"proration_behavior"`
}

// CancellationReasonParams asks customers why they cancel.
type CancellationReasonParams struct {
	Enabled bool                       `form:"enabled"`
	Options []CancellationReasonOption `form:"options,required"`
}

// NewCancellationReasonParams returns CancellationReasonParams with the required fields set.
func NewCancellationReasonParams(enabled bool, options ...CancellationReasonOption) *CancellationReasonParams {
	return &CancellationReasonParams{Enabled: enabled, Options: options}
}

// SubscriptionUpdateParams lets customers change their subscriptions.
type SubscriptionUpdateParams struct {
	DefaultAllowedUpdates []SubscriptionUpdateDefaultAllowedUpdate `form:"default_allowed_updates,required"`
	Enabled               bool                                     `form:"enabled"`
	Products              []SubscriptionUpdateProductParams        `form:"products,required"`
	ProrationBehavior     *SubscriptionUpdateProrationBehavior     `form:"proration_behavior"`
}

// NewSubscriptionUpdateParams returns SubscriptionUpdateParams with the required fields set.
func NewSubscriptionUpdateParams(enabled bool, allowed []SubscriptionUpdateDefaultAllowedUpdate, products []SubscriptionUpdateProductParams) *SubscriptionUpdateParams {
	return &SubscriptionUpdateParams{
		DefaultAllowedUpdates: allowed,
		Enabled:               enabled,
		Products:              products,
	}
}

// SubscriptionUpdateProductParams is a product customers can switch to.
type SubscriptionUpdateProductParams struct {
	Prices  []string `form:"prices,required"`
	Product string   `form:"product,required"`
}

// LoginPageParams enables the shareable login page.
type LoginPageParams struct {
	Enabled bool `form:"enabled"`
}

// UpdateBillingPortalConfiguration holds the parameters of
// POST /billing_portal/configurations/{id}. Every field is optional and only
// the fields set are changed.
type UpdateBillingPortalConfiguration struct {
	// Active set to false stops new portal sessions from using the
	// configuration.
	Active *bool `form:"active"`

	BusinessProfile *BusinessProfileParams `form:"business_profile"`

	// DefaultReturnURL set to "" removes the default return URL.
	DefaultReturnURL *string `form:"default_return_url"`

	Expand    []string              `form:"expand"`
	Features  *UpdateFeaturesParams `form:"features"`
	LoginPage *LoginPageParams      `form:"login_page"`
	Metadata  api.Metadata          `form:"metadata"`
}

// NewUpdateBillingPortalConfiguration returns an empty UpdateBillingPortalConfiguration.
func NewUpdateBillingPortalConfiguration() *UpdateBillingPortalConfiguration {
	return &UpdateBillingPortalConfiguration{}
}

// UpdateFeaturesParams is FeaturesParams where every setting is optional.
type UpdateFeaturesParams struct {
	CustomerUpdate      *UpdateCustomerUpdateParams     `form:"customer_update"`
	InvoiceHistory      *ToggleParams                   `form:"invoice_history"`
	PaymentMethodUpdate *ToggleParams                   `form:"payment_method_update"`
	SubscriptionCancel  *UpdateSubscriptionCancelParams `form:"subscription_cancel"`
	SubscriptionUpdate  *UpdateSubscriptionUpdateParams `form:"subscription_update"`
}

// UpdateCustomerUpdateParams changes the customer update feature.
type UpdateCustomerUpdateParams struct {
	AllowedUpdates []CustomerUpdateAllowedUpdate `form:"allowed_updates"`
	Enabled        *bool                         `form:"enabled"`
}

// UpdateSubscriptionCancelParams changes the subscription cancel feature.
type UpdateSubscriptionCancelParams struct {
	CancellationReason *UpdateCancellationReasonParams      `form:"cancellation_reason"`
	Enabled            *bool                                `form:"enabled"`
	Mode               *SubscriptionCancelMode              `form:"mode"`
	ProrationBehavior  *SubscriptionCancelProrationBehavior `form:"proration_behavior"`
}

// UpdateCancellationReasonParams changes the cancellation reason survey.
type UpdateCancellationReasonParams struct {
	Enabled bool                       `form:"enabled"`
	Options []CancellationReasonOption `form:"options"`
}

// UpdateSubscriptionUpdateParams changes the subscription update feature.
type UpdateSubscriptionUpdateParams struct {
	DefaultAllowedUpdates []SubscriptionUpdateDefaultAllowedUpdate `form:"default_allowed_updates"`
	Enabled               *bool                                    `form:"enabled"`
	Products              []SubscriptionUpdateProductParams        `form:"products"`
	ProrationBehavior     *SubscriptionUpdateProrationBehavior     `form:"proration_behavior"`
}
