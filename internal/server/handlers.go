package server

import (
	"encoding/json"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v72"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/billingportal"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/checkout"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListSessions is an HTTP handler for GET /v1/checkout/sessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sessions := s.store.Sessions(func(session checkout.Session) bool {
		if v := q.Get("status"); len(v) > 0 && (session.Status == nil || string(*session.Status) != v) {
			return false
		}
		if v := q.Get("customer"); len(v) > 0 && (session.Customer == nil || session.Customer.ID != v) {
			return false
		}
		if v := q.Get("customer_details[email]"); len(v) > 0 && (session.CustomerEmail == nil || *session.CustomerEmail != v) {
			return false
		}
		return true
	})
	page, err := paginate(sessions, q, r.URL.Path)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error(), "limit")
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

// GetSession is an HTTP handler for GET /v1/checkout/sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, ok := s.store.Session(id)
	if !ok {
		s.writeNotFound(w, "checkout session", id)
		return
	}
	s.writeJSON(w, http.StatusOK, session)
}

// ListLineItems is an HTTP handler for GET /v1/checkout/sessions/{id}/line_items.
func (s *Server) ListLineItems(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	items, ok := s.store.LineItems(id)
	if !ok {
		s.writeNotFound(w, "checkout session", id)
		return
	}
	page, err := paginate(items, r.URL.Query(), r.URL.Path)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error(), "limit")
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

// CreateSession is an HTTP handler for POST /v1/checkout/sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, http.StatusBadRequest, "Failed to parse form", "")
		return
	}
	form := r.PostForm

	mode := form.Get("mode")
	if len(mode) == 0 {
		s.writeError(w, http.StatusBadRequest, "Missing required param: mode.", "mode")
		return
	}
	parsedMode, err := checkout.Modes.Parse(mode)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error(), "mode")
		return
	}

	var uiMode checkout.UIMode
	if v := form.Get("ui_mode"); len(v) > 0 {
		if uiMode, err = checkout.UIModes.Parse(v); err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error(), "ui_mode")
			return
		}
	}

	in := SessionInput{
		Mode:              parsedMode,
		UIMode:            uiMode,
		Currency:          api.Currency(form.Get("currency")),
		Customer:          form.Get("customer"),
		CustomerEmail:     form.Get("customer_email"),
		ClientReferenceID: form.Get("client_reference_id"),
		SuccessURL:        form.Get("success_url"),
		CancelURL:         form.Get("cancel_url"),
		Metadata:          prefixed(form, "metadata"),
	}
	for _, v := range indexed(form, "payment_method_types") {
		in.PaymentMethodTypes = append(in.PaymentMethodTypes, checkout.PaymentMethodType(v))
	}

	for i := 0; ; i++ {
		key := fmt.Sprintf("line_items[%d]", i)
		if !hasPrefix(form, key) {
			break
		}
		quantity, _ := strconv.ParseInt(form.Get(key+"[quantity]"), 10, 64)
		unit, _ := strconv.ParseInt(form.Get(key+"[price_data][unit_amount]"), 10, 64)
		in.LineItems = append(in.LineItems, LineItemInput{
			Price:      form.Get(key + "[price]"),
			Name:       form.Get(key + "[price_data][product_data][name]"),
			Currency:   api.Currency(form.Get(key + "[price_data][currency]")),
			UnitAmount: unit,
			Quantity:   quantity,
		})
	}
	if in.Mode != checkout.ModeSetup && len(in.LineItems) == 0 {
		s.writeError(w, http.StatusBadRequest, "You must provide at least one line item.", "line_items")
		return
	}

	s.writeJSON(w, http.StatusOK, s.store.CreateSession(in))
}

// ExpireSession is an HTTP handler for POST /v1/checkout/sessions/{id}/expire.
func (s *Server) ExpireSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, ok, err := s.store.ExpireSession(id)
	if !ok {
		s.writeNotFound(w, "checkout session", id)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	s.writeJSON(w, http.StatusOK, session)
}

// ListConfigurations is an HTTP handler for GET /v1/billing_portal/configurations.
func (s *Server) ListConfigurations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	configurations := s.store.Configurations(func(cfg billingportal.Configuration) bool {
		if v := q.Get("active"); len(v) > 0 && strconv.FormatBool(cfg.Active) != v {
			return false
		}
		if v := q.Get("is_default"); len(v) > 0 && strconv.FormatBool(cfg.IsDefault) != v {
			return false
		}
		return true
	})
	page, err := paginate(configurations, q, r.URL.Path)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error(), "limit")
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

// GetConfiguration is an HTTP handler for GET /v1/billing_portal/configurations/{id}.
func (s *Server) GetConfiguration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cfg, ok := s.store.Configuration(id)
	if !ok {
		s.writeNotFound(w, "billing portal configuration", id)
		return
	}
	s.writeJSON(w, http.StatusOK, cfg)
}

// CreateConfiguration is an HTTP handler for POST /v1/billing_portal/configurations.
func (s *Server) CreateConfiguration(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, http.StatusBadRequest, "Failed to parse form", "")
		return
	}
	if !hasPrefix(r.PostForm, "features") {
		s.writeError(w, http.StatusBadRequest, "Missing required param: features.", "features")
		return
	}
	var features billingportal.Features
	applyFeatures(&features, r.PostForm)
	s.writeJSON(w, http.StatusOK, s.store.CreateConfiguration(features, prefixed(r.PostForm, "metadata")))
}

// UpdateConfiguration is an HTTP handler for POST /v1/billing_portal/configurations/{id}.
func (s *Server) UpdateConfiguration(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, http.StatusBadRequest, "Failed to parse form", "")
		return
	}
	form := r.PostForm
	id := chi.URLParam(r, "id")
	cfg, ok := s.store.UpdateConfiguration(id, func(cfg *billingportal.Configuration) {
		if v := form.Get("active"); len(v) > 0 {
			cfg.Active = v == "true"
		}
		if form.Has("default_return_url") {
			cfg.DefaultReturnURL = nil
			if v := form.Get("default_return_url"); len(v) > 0 {
				cfg.DefaultReturnURL = api.Ptr(v)
			}
		}
		applyFeatures(&cfg.Features, form)
		for k, v := range prefixed(form, "metadata") {
			if cfg.Metadata == nil {
				cfg.Metadata = api.Metadata{}
			}
			if len(v) == 0 {
				delete(cfg.Metadata, k)
				continue
			}
			cfg.Metadata[k] = v
		}
	})
	if !ok {
		s.writeNotFound(w, "billing portal configuration", id)
		return
	}
	s.writeJSON(w, http.StatusOK, cfg)
}

// CreatePortalSession is an HTTP handler for POST /v1/billing_portal/sessions.
func (s *Server) CreatePortalSession(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, http.StatusBadRequest, "Failed to parse form", "")
		return
	}
	form := r.PostForm
	customer := form.Get("customer")
	if len(customer) == 0 {
		s.writeError(w, http.StatusBadRequest, "Missing required param: customer.", "customer")
		return
	}

	var flow *billingportal.Flow
	if v := form.Get("flow_data[type]"); len(v) > 0 {
		flowType, err := billingportal.FlowTypes.Parse(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error(), "flow_data[type]")
			return
		}
		flow = &billingportal.Flow{
			Type: flowType,
			AfterCompletion: billingportal.AfterCompletion{
				Type: billingportal.AfterCompletionTypePortalHomepage,
			},
		}
		if v := form.Get("flow_data[after_completion][type]"); len(v) > 0 {
			flow.AfterCompletion.Type = billingportal.AfterCompletionType(v)
		}
		if v := form.Get("flow_data[after_completion][redirect][return_url]"); len(v) > 0 {
			flow.AfterCompletion.Redirect = &billingportal.Redirect{ReturnURL: v}
		}
		if v := form.Get("flow_data[subscription_cancel][subscription]"); len(v) > 0 {
			flow.SubscriptionCancel = &billingportal.FlowSubscription{Subscription: v}
		}
		if v := form.Get("flow_data[subscription_update][subscription]"); len(v) > 0 {
			flow.SubscriptionUpdate = &billingportal.FlowSubscription{Subscription: v}
		}
	}

	session, err := s.store.CreatePortalSession(customer, form.Get("configuration"), form.Get("return_url"), flow)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error(), "configuration")
		return
	}
	s.writeJSON(w, http.StatusOK, session)
}

func applyFeatures(f *billingportal.Features, form url.Values) {
	if v := form.Get("features[customer_update][enabled]"); len(v) > 0 {
		f.CustomerUpdate.Enabled = v == "true"
	}
	if values := indexed(form, "features[customer_update][allowed_updates]"); len(values) > 0 {
		f.CustomerUpdate.AllowedUpdates = nil
		for _, v := range values {
			f.CustomerUpdate.AllowedUpdates = append(f.CustomerUpdate.AllowedUpdates, billingportal.CustomerUpdateAllowedUpdate(v))
		}
	}
	if v := form.Get("features[invoice_history][enabled]"); len(v) > 0 {
		f.InvoiceHistory.Enabled = v == "true"
	}
	if v := form.Get("features[payment_method_update][enabled]"); len(v) > 0 {
		f.PaymentMethodUpdate.Enabled = v == "true"
	}
	if v := form.Get("features[subscription_cancel][enabled]"); len(v) > 0 {
		f.SubscriptionCancel.Enabled = v == "true"
	}
	if v := form.Get("features[subscription_cancel][mode]"); len(v) > 0 {
		f.SubscriptionCancel.Mode = billingportal.SubscriptionCancelMode(v)
	}
	if v := form.Get("features[subscription_update][enabled]"); len(v) > 0 {
		f.SubscriptionUpdate.Enabled = v == "true"
	}
	if v := form.Get("features[subscription_update][proration_behavior]"); len(v) > 0 {
		f.SubscriptionUpdate.ProrationBehavior = billingportal.SubscriptionUpdateProrationBehavior(v)
	}
	if values := indexed(form, "features[subscription_update][default_allowed_updates]"); len(values) > 0 {
		f.SubscriptionUpdate.DefaultAllowedUpdates = nil
		for _, v := range values {
			f.SubscriptionUpdate.DefaultAllowedUpdates = append(f.SubscriptionUpdate.DefaultAllowedUpdates, billingportal.SubscriptionUpdateDefaultAllowedUpdate(v))
		}
	}
}

// paginate cuts the page Stripe would return for the cursor parameters in q.
func paginate[T api.Object](items []T, q url.Values, path string) (api.List[T], error) {
	limit := 10
	if v := q.Get("limit"); len(v) > 0 {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return api.List[T]{}, fmt.Errorf("invalid limit %q: must be between 1 and 100", v)
		}
		limit = n
	}

	start, end := 0, len(items)
	if id := q.Get("starting_after"); len(id) > 0 {
		start = indexOf(items, id) + 1
	} else if id := q.Get("ending_before"); len(id) > 0 {
		if end = indexOf(items, id); end < 0 {
			end = 0
		}
		if end-limit > start {
			start = end - limit
		}
	}
	if start > end {
		start = end
	}
	stop := start + limit
	if stop > end {
		stop = end
	}

	data := make([]T, stop-start)
	copy(data, items[start:stop])
	return api.List[T]{
		Object:  "list",
		Data:    data,
		HasMore: stop < end,
		URL:     strings.TrimPrefix(path, "/v1"),
	}, nil
}

// indexed returns the values of key[0], key[1], ... in order.
func indexed(form url.Values, key string) []string {
	var values []string
	for i := 0; ; i++ {
		k := fmt.Sprintf("%s[%d]", key, i)
		if !form.Has(k) {
			return values
		}
		values = append(values, form.Get(k))
	}
}

// prefixed returns the entries key[name]=value as a map of name to value.
func prefixed(form url.Values, key string) api.Metadata {
	var m api.Metadata
	for k := range form {
		if !strings.HasPrefix(k, key+"[") || !strings.HasSuffix(k, "]") {
			continue
		}
		if m == nil {
			m = api.Metadata{}
		}
		m[k[len(key)+1:len(k)-1]] = form.Get(k)
	}
	return m
}

func hasPrefix(form url.Values, key string) bool {
	for k := range form {
		if strings.HasPrefix(k, key+"[") || k == key {
			return true
		}
	}
	return false
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error(err, "Failed to encode response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(body); err != nil {
		s.logger.Error(err, "Failed to write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg, param string) {
	s.writeJSON(w, status, map[string]*stripe.Error{
		"error": {
			Type:  stripe.ErrorTypeInvalidRequest,
			Msg:   msg,
			Param: param,
		},
	})
}

func (s *Server) writeNotFound(w http.ResponseWriter, object, id string) {
	s.writeJSON(w, http.StatusNotFound, map[string]*stripe.Error{
		"error": {
			Type:  stripe.ErrorTypeInvalidRequest,
			Code:  stripe.ErrorCodeResourceMissing,
			Msg:   fmt.Sprintf("No such %s: '%s'", object, id),
			Param: "id",
		},
	})
}
