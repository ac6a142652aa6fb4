package main

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/suite"
	"gitlab.com/ignitionrobotics/billing/checkout/internal/conf"
	"gitlab.com/ignitionrobotics/billing/checkout/internal/server"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/billingportal"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/checkout"
	"net/http/httptest"
	"os"
	"testing"
)

type commandsTestSuite struct {
	suite.Suite
	Server *server.Server
	HTTP   *httptest.Server
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(commandsTestSuite))
}

func (s *commandsTestSuite) SetupTest() {
	store := server.NewStore(7)
	store.Seed(3)

	cfg := conf.Config{Stripe: conf.Stripe{SecretKey: "sk_test_cli"}}
	s.Server = server.NewServer(server.NewOptions(cfg, store, logr.Discard()))
	s.HTTP = httptest.NewServer(s.Server.Handler())

	s.Require().NoError(os.Setenv("CHECKOUT_STRIPE_SECRET_KEY", "sk_test_cli"))
	s.Require().NoError(os.Setenv("CHECKOUT_STRIPE_URL", s.HTTP.URL))
	s.Require().NoError(os.Setenv("CHECKOUT_PAGE_SIZE", "2"))
}

func (s *commandsTestSuite) TearDownTest() {
	s.HTTP.Close()
	s.Require().NoError(os.Unsetenv("CHECKOUT_STRIPE_SECRET_KEY"))
	s.Require().NoError(os.Unsetenv("CHECKOUT_STRIPE_URL"))
	s.Require().NoError(os.Unsetenv("CHECKOUT_PAGE_SIZE"))
}

func (s *commandsTestSuite) run(args ...string) ([]byte, error) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.Bytes(), err
}

func (s *commandsTestSuite) TestSessionsListAll() {
	out, err := s.run("sessions", "list", "--all")
	s.Require().NoError(err)

	var sessions []checkout.Session
	s.Require().NoError(json.Unmarshal(out, &sessions))
	s.Assert().Len(sessions, 3)
}

func (s *commandsTestSuite) TestSessionsListInvalidStatus() {
	_, err := s.run("sessions", "list", "--status", "pending")
	s.Assert().Error(err)
}

func (s *commandsTestSuite) TestSessionsCreateAndExpire() {
	out, err := s.run("sessions", "create",
		"--product", "Sticker=500",
		"--success-url", "https://example.com/success",
		"--metadata", "order=42",
	)
	s.Require().NoError(err)

	var session checkout.Session
	s.Require().NoError(json.Unmarshal(out, &session))
	s.Assert().Equal(checkout.ModePayment, session.Mode)
	s.Assert().Equal("42", session.Metadata["order"])

	out, err = s.run("sessions", "line-items", session.ID)
	s.Require().NoError(err)
	var items []checkout.LineItem
	s.Require().NoError(json.Unmarshal(out, &items))
	s.Require().Len(items, 1)
	s.Assert().Equal("Sticker", items[0].Description)

	out, err = s.run("sessions", "expire", session.ID)
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal(out, &session))
	s.Require().NotNil(session.Status)
	s.Assert().Equal(checkout.StatusExpired, *session.Status)
}

func (s *commandsTestSuite) TestSessionsGetMissing() {
	_, err := s.run("sessions", "get", "cs_test_missing")
	s.Assert().Error(err)
}

func (s *commandsTestSuite) TestPortal() {
	out, err := s.run("portal", "configurations", "list")
	s.Require().NoError(err)

	var configurations []billingportal.Configuration
	s.Require().NoError(json.Unmarshal(out, &configurations))
	s.Require().Len(configurations, 1)

	out, err = s.run("portal", "session", "cus_1234", "--return-url", "https://example.com")
	s.Require().NoError(err)

	var session billingportal.Session
	s.Require().NoError(json.Unmarshal(out, &session))
	s.Assert().Equal(configurations[0].ID, session.Configuration.ID)
}

func (s *commandsTestSuite) TestMissingSecretKey() {
	s.Require().NoError(os.Unsetenv("CHECKOUT_STRIPE_SECRET_KEY"))

	_, err := s.run("sessions", "list")
	s.Assert().Error(err)
}
