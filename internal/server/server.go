package server

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/stripe/stripe-go/v72"
	"gitlab.com/ignitionrobotics/billing/checkout/internal/conf"
	"net/http"
	"strings"
)

var (
	// ErrSessionNotOpen is returned when expiring a Checkout Session that is not open.
	ErrSessionNotOpen = errors.New("only Checkout Sessions with a status of open can be expired")

	// ErrNoConfiguration is returned when a portal session is created without a portal configuration.
	ErrNoConfiguration = errors.New("no billing portal configuration found")
)

// Server is a fake Stripe API serving the Checkout and customer portal
// endpoints from an in-memory Store.
type Server struct {
	httpServer *http.Server
	router     chi.Router
	store      *Store
	logger     logr.Logger
	secret     string
}

// Options holds the dependencies of a Server.
type Options struct {
	config conf.Config
	store  *Store
	logger logr.Logger
}

// NewOptions returns the Options of a Server.
func NewOptions(config conf.Config, store *Store, logger logr.Logger) Options {
	return Options{
		config: config,
		store:  store,
		logger: logger,
	}
}

// NewServer initializes a new Server. A nil store is replaced with an empty one.
func NewServer(opts Options) *Server {
	store := opts.store
	if store == nil {
		store = NewStore(1)
	}
	s := &Server{
		store:  store,
		logger: opts.logger,
		secret: opts.config.Stripe.SecretKey,
	}
	s.router = s.routes()
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.config.Port),
		Handler: s.router,
	}
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Use(s.authenticate)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/checkout/sessions", func(r chi.Router) {
			r.Get("/", s.ListSessions)
			r.Post("/", s.CreateSession)
			r.Get("/{id}", s.GetSession)
			r.Get("/{id}/line_items", s.ListLineItems)
			r.Post("/{id}/expire", s.ExpireSession)
		})
		r.Route("/billing_portal", func(r chi.Router) {
			r.Get("/configurations", s.ListConfigurations)
			r.Post("/configurations", s.CreateConfiguration)
			r.Get("/configurations/{id}", s.GetConfiguration)
			r.Post("/configurations/{id}", s.UpdateConfiguration)
			r.Post("/sessions", s.CreatePortalSession)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("Unrecognized request URL (%s: %s).", r.Method, r.URL.Path), "")
	})
	return r
}

// Handler returns the HTTP handler serving the fake Stripe API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Store returns the store the server reads and writes.
func (s *Server) Store() *Store {
	return s.store
}

// requestID copies the id assigned by the request id middleware to the
// Request-Id response header, like Stripe does.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := middleware.GetReqID(r.Context())
		w.Header().Set("Request-Id", "req_"+strings.TrimLeft(strings.ReplaceAll(id, "/", "_"), "_"))
		next.ServeHTTP(w, r)
	})
}

// authenticate rejects requests that do not carry the configured secret key
// as a bearer token.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.secret {
			s.logger.V(1).Info("Rejecting request with an invalid API key", "path", r.URL.Path)
			s.writeJSON(w, http.StatusUnauthorized, map[string]*stripe.Error{
				"error": {
					Type: stripe.ErrorTypeInvalidRequest,
					Msg:  "Invalid API Key provided.",
				},
			})
			return
		}
		s.logger.V(1).Info("Serving request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe starts listening for incoming HTTP requests. It returns nil
// once the server is shut down.
func (s *Server) ListenAndServe() error {
	s.logger.Info("Listening for incoming HTTP requests", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Setup initializes the conf.Config to run the fake Stripe API.
func Setup(logger logr.Logger) (conf.Config, error) {
	var cfg conf.Config
	logger.Info("Parsing config")
	if err := cfg.Parse(); err != nil {
		return conf.Config{}, err
	}
	return cfg, nil
}

// Run seeds a store and serves the fake Stripe API until ctx is done.
func Run(ctx context.Context, config conf.Config, seed int64, logger logr.Logger) error {
	store := NewStore(seed)
	store.Seed(5)

	server := NewServer(NewOptions(config, store, logger))

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		logger.Info("Shutting HTTP server down")
		if err := server.Shutdown(context.Background()); err != nil {
			return err
		}
		return <-errs
	}
}
