package billingportal

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/api"

// Configuration describes the functionality and behavior of a customer
// portal.
type Configuration struct {
	ID     string `json:"id"`
	Object string `json:"object"`

	// Active tells whether new portal sessions can use this configuration.
	Active bool `json:"active"`

	// Application is the Connect application that created the configuration.
	Application *api.Expandable `json:"application"`

	BusinessProfile  BusinessProfile `json:"business_profile"`
	Created          api.Timestamp   `json:"created"`
	DefaultReturnURL *string         `json:"default_return_url"`
	Features         Features        `json:"features"`

	// IsDefault tells whether this is the configuration used when none is
	// given to a portal session.
	IsDefault bool `json:"is_default"`

	Livemode  bool          `json:"livemode"`
	LoginPage LoginPage     `json:"login_page"`
	Metadata  api.Metadata  `json:"metadata,omitempty"`
	Updated   api.Timestamp `json:"updated"`
}

// ObjectID implements api.Object.
func (c Configuration) ObjectID() string { return c.ID }

// BusinessProfile is the business information shown in the portal.
type BusinessProfile struct {
	Headline          *string `json:"headline"`
	PrivacyPolicyURL  *string `json:"privacy_policy_url"`
	TermsOfServiceURL *string `json:"terms_of_service_url"`
}

// Features lists what customers can do in the portal.
type Features struct {
	CustomerUpdate      CustomerUpdate     `json:"customer_update"`
	InvoiceHistory      Toggle             `json:"invoice_history"`
	PaymentMethodUpdate Toggle             `json:"payment_method_update"`
	SubscriptionCancel  SubscriptionCancel `json:"subscription_cancel"`
	SubscriptionUpdate  SubscriptionUpdate `json:"subscription_update"`
}

// Toggle is a feature whose only setting is whether it is enabled.
type Toggle struct {
	Enabled bool `json:"enabled"`
}

// CustomerUpdate lets customers update their details.
type CustomerUpdate struct {
	AllowedUpdates []CustomerUpdateAllowedUpdate `json:"allowed_updates"`
	Enabled        bool                          `json:"enabled"`
}

// SubscriptionCancel lets customers cancel subscriptions.
type SubscriptionCancel struct {
	CancellationReason CancellationReason                  `json:"cancellation_reason"`
	Enabled            bool                                `json:"enabled"`
	Mode               SubscriptionCancelMode              `json:"mode"`
	ProrationBehavior  SubscriptionCancelProrationBehavior `json:"proration_behavior"`
}

// CancellationReason asks customers why they cancel.
type CancellationReason struct {
	Enabled bool                       `json:"enabled"`
	Options []CancellationReasonOption `json:"options"`
}

// SubscriptionUpdate lets customers change their subscriptions.
type SubscriptionUpdate struct {
	DefaultAllowedUpdates []SubscriptionUpdateDefaultAllowedUpdate `json:"default_allowed_updates"`
	Enabled               bool                                     `json:"enabled"`
	Products              []SubscriptionUpdateProduct              `json:"products,omitempty"`
	ProrationBehavior     SubscriptionUpdateProrationBehavior      `json:"proration_behavior"`
}

// SubscriptionUpdateProduct is a product customers can switch to, with the
// prices they can pick.
type SubscriptionUpdateProduct struct {
	Prices  []string `json:"prices"`
	Product string   `json:"product"`
}

// LoginPage is the shareable login page of the portal.
type LoginPage struct {
	Enabled bool `json:"enabled"`

	// URL is a shareable link to the portal login page. It is null when the
	// login page is disabled.
	URL *string `json:"url"`
}
