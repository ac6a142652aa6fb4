package server

import (
	"github.com/brianvoe/gofakeit/v6"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/billingportal"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/checkout"
	"sync"
	"time"
)

// Store keeps the objects served by the fake Stripe API in memory. Lists are
// kept in creation order, newest first, like Stripe returns them.
type Store struct {
	mu sync.RWMutex

	faker *gofakeit.Faker

	sessions       []checkout.Session
	lineItems      map[string][]checkout.LineItem
	configurations []billingportal.Configuration
	portalSessions []billingportal.Session
}

// NewStore returns an empty store. The seed makes generated ids and fixtures
// reproducible.
func NewStore(seed int64) *Store {
	return &Store{
		faker:     gofakeit.New(seed),
		lineItems: make(map[string][]checkout.LineItem),
	}
}

// Seed fills the store with n open Checkout Sessions, each with a few line
// items, and a default portal configuration.
func (s *Store) Seed(n int) {
	for i := 0; i < n; i++ {
		items := make([]LineItemInput, s.faker.Number(1, 3))
		for j := range items {
			items[j] = LineItemInput{
				Name:       s.faker.Word(),
				Currency:   api.CurrencyUSD,
				UnitAmount: int64(s.faker.Number(100, 10000)),
				Quantity:   int64(s.faker.Number(1, 5)),
			}
		}
		s.CreateSession(SessionInput{
			Mode:          checkout.ModePayment,
			Currency:      api.CurrencyUSD,
			CustomerEmail: s.faker.Email(),
			SuccessURL:    s.faker.URL(),
			LineItems:     items,
		})
	}
	s.CreateConfiguration(billingportal.Features{
		CustomerUpdate: billingportal.CustomerUpdate{
			AllowedUpdates: []billingportal.CustomerUpdateAllowedUpdate{billingportal.CustomerUpdateAllowedUpdateEmail},
			Enabled:        true,
		},
		InvoiceHistory: billingportal.Toggle{Enabled: true},
	}, nil)
}

// SessionInput holds what a new Checkout Session is created from.
type SessionInput struct {
	Mode               checkout.Mode
	UIMode             checkout.UIMode
	Currency           api.Currency
	Customer           string
	CustomerEmail      string
	ClientReferenceID  string
	SuccessURL         string
	CancelURL          string
	Metadata           api.Metadata
	PaymentMethodTypes []checkout.PaymentMethodType
	LineItems          []LineItemInput
}

// LineItemInput is a line item of a new Checkout Session.
type LineItemInput struct {
	Price      string
	Name       string
	Currency   api.Currency
	UnitAmount int64
	Quantity   int64
}

// CreateSession adds an open Checkout Session and returns it.
func (s *Store) CreateSession(in SessionInput) checkout.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	id := "cs_test_" + s.faker.LetterN(24)

	mode := in.Mode
	if len(mode) == 0 {
		mode = checkout.ModePayment
	}
	uiMode := in.UIMode
	if len(uiMode) == 0 {
		uiMode = checkout.UIModeHosted
	}
	methods := in.PaymentMethodTypes
	if len(methods) == 0 {
		methods = []checkout.PaymentMethodType{checkout.PaymentMethodTypeCard}
	}

	var total int64
	items := make([]checkout.LineItem, 0, len(in.LineItems))
	for _, li := range in.LineItems {
		item := s.lineItem(li, now)
		total += item.AmountTotal
		items = append(items, item)
	}
	s.lineItems[id] = items

	status := checkout.StatusOpen
	session := checkout.Session{
		ID:                 id,
		Object:             "checkout.session",
		AmountSubtotal:     &total,
		AmountTotal:        &total,
		CustomFields:       []checkout.CustomField{},
		Created:            api.NewTimestamp(now),
		ExpiresAt:          api.NewTimestamp(now.Add(24 * time.Hour)),
		Mode:               mode,
		PaymentMethodTypes: methods,
		PaymentStatus:      checkout.PaymentStatusUnpaid,
		ShippingOptions:    []checkout.ShippingOption{},
		Status:             &status,
		UIMode:             &uiMode,
		TotalDetails:       &checkout.TotalDetails{},
	}
	if len(in.Currency) > 0 {
		session.Currency = api.Ptr(in.Currency)
	}
	if len(in.Customer) > 0 {
		session.Customer = &api.Expandable{ID: in.Customer}
	}
	if len(in.CustomerEmail) > 0 {
		session.CustomerEmail = api.Ptr(in.CustomerEmail)
	}
	if len(in.ClientReferenceID) > 0 {
		session.ClientReferenceID = api.Ptr(in.ClientReferenceID)
	}
	if len(in.SuccessURL) > 0 {
		session.SuccessURL = api.Ptr(in.SuccessURL)
	}
	if len(in.CancelURL) > 0 {
		session.CancelURL = api.Ptr(in.CancelURL)
	}
	if len(in.Metadata) > 0 {
		session.Metadata = in.Metadata
	}
	if uiMode == checkout.UIModeHosted {
		session.URL = api.Ptr("https://checkout.stripe.com/c/pay/" + id)
	} else {
		session.ClientSecret = api.Ptr(id + "_secret_" + s.faker.LetterN(16))
	}

	s.sessions = append([]checkout.Session{session}, s.sessions...)
	return session
}

func (s *Store) lineItem(in LineItemInput, now time.Time) checkout.LineItem {
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	currency := in.Currency
	if len(currency) == 0 {
		currency = api.CurrencyUSD
	}
	priceID := in.Price
	if len(priceID) == 0 {
		priceID = "price_" + s.faker.LetterN(24)
	}
	name := in.Name
	if len(name) == 0 {
		name = s.faker.Word()
	}
	amount := in.UnitAmount * quantity
	unit := in.UnitAmount

	return checkout.LineItem{
		ID:             "li_" + s.faker.LetterN(24),
		Object:         "item",
		AmountSubtotal: amount,
		AmountTotal:    amount,
		Currency:       currency,
		Description:    name,
		Price: &checkout.Price{
			ID:            priceID,
			Object:        "price",
			Active:        true,
			BillingScheme: checkout.BillingSchemePerUnit,
			Created:       api.NewTimestamp(now),
			Currency:      currency,
			Product:       api.Expandable{ID: "prod_" + s.faker.LetterN(14)},
			Type:          checkout.PriceTypeOneTime,
			UnitAmount:    &unit,
		},
		Quantity: &quantity,
	}
}

// Session returns the Checkout Session id.
func (s *Store) Session(id string) (checkout.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.sessions, id)
	if i < 0 {
		return checkout.Session{}, false
	}
	return s.sessions[i], true
}

// Sessions returns every Checkout Session matching filter.
func (s *Store) Sessions(filter func(checkout.Session) bool) []checkout.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]checkout.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		if filter == nil || filter(session) {
			out = append(out, session)
		}
	}
	return out
}

// LineItems returns the line items of the Checkout Session id.
func (s *Store) LineItems(id string) ([]checkout.LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.lineItems[id]
	return items, ok
}

// ExpireSession expires the open Checkout Session id. It returns false when
// the session does not exist and an error when it is not open.
func (s *Store) ExpireSession(id string) (checkout.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.sessions, id)
	if i < 0 {
		return checkout.Session{}, false, nil
	}
	session := &s.sessions[i]
	if session.Status == nil || *session.Status != checkout.StatusOpen {
		return *session, true, ErrSessionNotOpen
	}
	status := checkout.StatusExpired
	session.Status = &status
	session.URL = nil
	return *session, true, nil
}

// CreateConfiguration adds a portal configuration. The first one created is
// the default configuration.
func (s *Store) CreateConfiguration(features billingportal.Features, metadata api.Metadata) billingportal.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := api.NewTimestamp(time.Now())
	cfg := billingportal.Configuration{
		ID:        "bpc_" + s.faker.LetterN(24),
		Object:    "billing_portal.configuration",
		Active:    true,
		Created:   now,
		Features:  normalizeFeatures(features),
		IsDefault: len(s.configurations) == 0,
		Metadata:  metadata,
		Updated:   now,
	}
	s.configurations = append([]billingportal.Configuration{cfg}, s.configurations...)
	return cfg
}

// Configuration returns the portal configuration id.
func (s *Store) Configuration(id string) (billingportal.Configuration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.configurations, id)
	if i < 0 {
		return billingportal.Configuration{}, false
	}
	return s.configurations[i], true
}

// Configurations returns every portal configuration matching filter.
func (s *Store) Configurations(filter func(billingportal.Configuration) bool) []billingportal.Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]billingportal.Configuration, 0, len(s.configurations))
	for _, cfg := range s.configurations {
		if filter == nil || filter(cfg) {
			out = append(out, cfg)
		}
	}
	return out
}

// UpdateConfiguration applies update to the portal configuration id.
func (s *Store) UpdateConfiguration(id string, update func(*billingportal.Configuration)) (billingportal.Configuration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.configurations, id)
	if i < 0 {
		return billingportal.Configuration{}, false
	}
	cfg := &s.configurations[i]
	update(cfg)
	cfg.Features = normalizeFeatures(cfg.Features)
	cfg.Updated = api.NewTimestamp(time.Now())
	return *cfg, true
}

// CreatePortalSession adds a portal session for customer. An empty
// configuration selects the default configuration.
func (s *Store) CreatePortalSession(customer, configuration, returnURL string, flow *billingportal.Flow) (billingportal.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(configuration) == 0 {
		for _, cfg := range s.configurations {
			if cfg.IsDefault {
				configuration = cfg.ID
			}
		}
	}
	if indexOf(s.configurations, configuration) < 0 {
		return billingportal.Session{}, ErrNoConfiguration
	}

	id := "bps_" + s.faker.LetterN(24)
	session := billingportal.Session{
		ID:            id,
		Object:        "billing_portal.session",
		Configuration: api.Expandable{ID: configuration},
		Created:       api.NewTimestamp(time.Now()),
		Customer:      customer,
		Flow:          flow,
		URL:           "https://billing.stripe.com/p/session/" + id,
	}
	if len(returnURL) > 0 {
		session.ReturnURL = api.Ptr(returnURL)
	}
	s.portalSessions = append(s.portalSessions, session)
	return session, nil
}

// normalizeFeatures replaces nil slices with empty ones so every list
// field is sent as an array.
func normalizeFeatures(f billingportal.Features) billingportal.Features {
	if f.CustomerUpdate.AllowedUpdates == nil {
		f.CustomerUpdate.AllowedUpdates = []billingportal.CustomerUpdateAllowedUpdate{}
	}
	if f.SubscriptionCancel.CancellationReason.Options == nil {
		f.SubscriptionCancel.CancellationReason.Options = []billingportal.CancellationReasonOption{}
	}
	if len(f.SubscriptionCancel.Mode) == 0 {
		f.SubscriptionCancel.Mode = billingportal.SubscriptionCancelModeAtPeriodEnd
	}
	if len(f.SubscriptionCancel.ProrationBehavior) == 0 {
		f.SubscriptionCancel.ProrationBehavior = billingportal.SubscriptionCancelProrationBehaviorNone
	}
	if f.SubscriptionUpdate.DefaultAllowedUpdates == nil {
		f.SubscriptionUpdate.DefaultAllowedUpdates = []billingportal.SubscriptionUpdateDefaultAllowedUpdate{}
	}
	if len(f.SubscriptionUpdate.ProrationBehavior) == 0 {
		f.SubscriptionUpdate.ProrationBehavior = billingportal.SubscriptionUpdateProrationBehaviorNone
	}
	return f
}

func indexOf[T api.Object](items []T, id string) int {
	for i, item := range items {
		if item.ObjectID() == id {
			return i
		}
	}
	return -1
}
