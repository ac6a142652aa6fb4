package conf

import (
	"errors"
	"github.com/caarlos0/env/v6"
	"net/url"
	"time"
)

// ErrInvalidURL is returned when the configured Stripe URL is not an absolute URL.
var ErrInvalidURL = errors.New("invalid URL")

// Stripe contains the needed config to interact with the stripe API.
type Stripe struct {
	// SecretKey is the key used to allow the stripe client use the stripe API.
	SecretKey string `env:"CHECKOUT_STRIPE_SECRET_KEY,required"`

	// URL is the backend stripe API url, only used for testing purposes.
	URL string `env:"CHECKOUT_STRIPE_URL"`

	// Version is the Stripe API version sent with every request. When empty the
	// version the bindings were generated against is used.
	Version string `env:"CHECKOUT_STRIPE_API_VERSION"`
}

// Parse fills Stripe data from an external source.
func (c *Stripe) Parse() error {
	if err := env.Parse(c); err != nil {
		return err
	}
	if len(c.URL) > 0 {
		return validateURL(c.URL)
	}
	return nil
}

// Config contains the needed config to run the checkout tool.
type Config struct {
	// Stripe contains configuration for the stripe client.
	Stripe Stripe

	// Port is the TCP port the fake Stripe API listens to for incoming HTTP requests.
	Port uint `env:"CHECKOUT_HTTP_SERVER_PORT" envDefault:"8001"`

	// Timeout is the amount of time a single request to Stripe waits before it fails.
	Timeout time.Duration `env:"CHECKOUT_HTTP_TIMEOUT" envDefault:"30s"`

	// PageSize is the number of objects requested per page when listing.
	PageSize int64 `env:"CHECKOUT_PAGE_SIZE" envDefault:"10"`
}

// Parse fills Config data from an external source.
func (c *Config) Parse() error {
	if err := c.Stripe.Parse(); err != nil {
		return err
	}
	return env.Parse(c)
}

// validateURL validates if a raw URL string is well-formed or not.
func validateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
