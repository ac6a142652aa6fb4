package checkout

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/api"

// ListCheckoutSession holds the parameters of GET /checkout/sessions.
type ListCheckoutSession struct {
	// Created filters sessions by creation date.
	Created *api.RangeQueryTs `form:"created"`

	// Customer only returns the sessions of this Customer.
	Customer *string `form:"customer"`

	// CustomerDetails only returns the sessions of this customer email.
	CustomerDetails *CustomerDetailsParams `form:"customer_details"`

	api.ListParams

	Expand []string `form:"expand"`

	// PaymentIntent only returns the session of this PaymentIntent.
	PaymentIntent *string `form:"payment_intent"`

	// PaymentLink only returns the sessions of this Payment Link.
	PaymentLink *string `form:"payment_link"`

	// Status only returns the sessions with this status.
	Status *Status `form:"status"`

	// Subscription only returns the session of this Subscription.
	Subscription *string `form:"subscription"`
}

// NewListCheckoutSession returns an empty ListCheckoutSession.
func NewListCheckoutSession() *ListCheckoutSession {
	return &ListCheckoutSession{}
}

// CustomerDetailsParams filters sessions by customer email.
type CustomerDetailsParams struct {
	Email string `form:"email,required"`
}

// NewCustomerDetailsParams returns CustomerDetailsParams with the required fields set.
func NewCustomerDetailsParams(email string) *CustomerDetailsParams {
	return &CustomerDetailsParams{Email: email}
}

// RetrieveCheckoutSession holds the parameters of GET /checkout/sessions/{id}.
type RetrieveCheckoutSession struct {
	Expand []string `form:"expand"`
}

// NewRetrieveCheckoutSession returns an empty RetrieveCheckoutSession.
func NewRetrieveCheckoutSession() *RetrieveCheckoutSession {
	return &RetrieveCheckoutSession{}
}

// ExpireCheckoutSession holds the parameters of POST /checkout/sessions/{id}/expire.
type ExpireCheckoutSession struct {
	Expand []string `form:"expand"`
}

// NewExpireCheckoutSession returns an empty ExpireCheckoutSession.
func NewExpireCheckoutSession() *ExpireCheckoutSession {
	return &ExpireCheckoutSession{}
}

// ListLineItemsCheckoutSession holds the parameters of
// GET /checkout/sessions/{id}/line_items.
type ListLineItemsCheckoutSession struct {
	api.ListParams

	Expand []string `form:"expand"`
}

// NewListLineItemsCheckoutSession returns an empty ListLineItemsCheckoutSession.
func NewListLineItemsCheckoutSession() *ListLineItemsCheckoutSession {
	return &ListLineItemsCheckoutSession{}
}
