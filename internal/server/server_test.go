package server

import (
	"context"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/stretchr/testify/suite"
	"gitlab.com/ignitionrobotics/billing/checkout/internal/conf"
	"log"
	"os"
	"testing"
	"time"
)

type setupTestSuite struct {
	suite.Suite
	Logger logr.Logger
}

func TestSetupSuite(t *testing.T) {
	suite.Run(t, new(setupTestSuite))
}

func (s *setupTestSuite) SetupSuite() {
	s.Logger = stdr.New(log.New(os.Stdout, "[TestSetup] ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix))
}

func (s *setupTestSuite) TearDownTest() {
	unsetEnvVars(&s.Suite)
}

func (s *setupTestSuite) TestSucceed() {
	s.Require().NoError(os.Setenv("CHECKOUT_HTTP_SERVER_PORT", "8002"))
	s.Require().NoError(os.Setenv("CHECKOUT_STRIPE_SECRET_KEY", "sk_test_1234"))
	s.Require().NoError(os.Setenv("CHECKOUT_HTTP_TIMEOUT", "10s"))

	cfg, err := Setup(s.Logger)

	s.Assert().NoError(err)
	s.Assert().Equal(uint(8002), cfg.Port)
	s.Assert().Equal("sk_test_1234", cfg.Stripe.SecretKey)
	s.Assert().Equal(10*time.Second, cfg.Timeout)
}

func (s *setupTestSuite) TestDefaultValues() {
	s.Require().NoError(os.Setenv("CHECKOUT_STRIPE_SECRET_KEY", "sk_test_1234"))

	cfg, err := Setup(s.Logger)
	s.Assert().NoError(err)
	s.Assert().Equal(uint(8001), cfg.Port)
	s.Assert().Equal(30*time.Second, cfg.Timeout)
	s.Assert().Equal(int64(10), cfg.PageSize)
}

func (s *setupTestSuite) TestMissingEnvVars() {
	_, err := Setup(s.Logger)
	s.Assert().Error(err)
}

func (s *setupTestSuite) TestSetupWithErrors() {
	s.Require().NoError(os.Setenv("CHECKOUT_STRIPE_SECRET_KEY", "sk_test_1234"))
	s.Require().NoError(os.Setenv("CHECKOUT_HTTP_SERVER_PORT", "ABCD"))

	_, err := Setup(s.Logger)
	s.Assert().Error(err)
}

type serverTestSuite struct {
	suite.Suite
	Logger logr.Logger
	Config conf.Config
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(serverTestSuite))
}

func (s *serverTestSuite) SetupSuite() {
	var err error
	s.Require().NoError(os.Setenv("CHECKOUT_HTTP_SERVER_PORT", "8003"))
	s.Require().NoError(os.Setenv("CHECKOUT_STRIPE_SECRET_KEY", "sk_test_1234"))
	s.Logger = stdr.New(log.New(os.Stdout, "[TestServer] ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix))
	s.Config, err = Setup(s.Logger)
	s.Require().NoError(err)
}

func (s *serverTestSuite) TestListenAndServe() {
	server := NewServer(NewOptions(s.Config, NewStore(1), s.Logger))

	running := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		close(running)
		s.Assert().NoError(server.ListenAndServe())
	}()

	<-running

	// Give the listener a chance to bind before shutting it down.
	time.Sleep(50 * time.Millisecond)

	err := server.Shutdown(context.TODO())
	s.Assert().NoError(err)

	<-done
}

func (s *serverTestSuite) TestListenAndServeAddressInUse() {
	server := NewServer(NewOptions(s.Config, NewStore(1), s.Logger))
	anotherServer := NewServer(NewOptions(s.Config, NewStore(2), s.Logger))

	running := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		close(running)
		s.Assert().NoError(server.ListenAndServe())
	}()

	<-running
	time.Sleep(50 * time.Millisecond)

	// Running another HTTP server listening to the same port will cause an error
	err := anotherServer.ListenAndServe()
	s.Assert().Error(err)

	// Shutting down the first server should work
	err = server.Shutdown(context.TODO())
	s.Assert().NoError(err)

	<-done
}

func (s *serverTestSuite) TestServerShutdownBeforeRunning() {
	server := NewServer(NewOptions(s.Config, nil, s.Logger))

	s.Assert().NoError(server.Shutdown(context.Background()))
}

func (s *serverTestSuite) TestNilStoreIsReplaced() {
	server := NewServer(NewOptions(s.Config, nil, s.Logger))

	s.Require().NotNil(server.Store())
	s.Assert().Empty(server.Store().Sessions(nil))
}

func (s *serverTestSuite) TearDownSuite() {
	unsetEnvVars(&s.Suite)
}

type runTestSuite struct {
	suite.Suite
	Logger logr.Logger
	Config conf.Config
}

func TestRun(t *testing.T) {
	suite.Run(t, new(runTestSuite))
}

func (s *runTestSuite) SetupSuite() {
	var err error
	s.Require().NoError(os.Setenv("CHECKOUT_HTTP_SERVER_PORT", "8004"))
	s.Require().NoError(os.Setenv("CHECKOUT_STRIPE_SECRET_KEY", "sk_test_1234"))
	s.Logger = stdr.New(log.New(os.Stdout, "[TestRun] ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix))
	s.Config, err = Setup(s.Logger)
	s.Require().NoError(err)
}

func (s *runTestSuite) TestRunStopsWithContext() {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	s.Assert().NoError(Run(ctx, s.Config, 1, s.Logger))
}

func (s *runTestSuite) TestRunAddressInUse() {
	// Run a web server
	server := NewServer(NewOptions(s.Config, nil, s.Logger))

	running := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		close(running)
		s.Assert().NoError(server.ListenAndServe())
	}()

	<-running
	time.Sleep(50 * time.Millisecond)

	// Run fails because the port is taken
	s.Assert().Error(Run(context.Background(), s.Config, 1, s.Logger))

	s.Assert().NoError(server.Shutdown(context.TODO()))
	<-done
}

func (s *runTestSuite) TearDownSuite() {
	unsetEnvVars(&s.Suite)
}

func unsetEnvVars(s *suite.Suite) {
	s.Require().NoError(os.Unsetenv("CHECKOUT_HTTP_SERVER_PORT"))
	s.Require().NoError(os.Unsetenv("CHECKOUT_STRIPE_SECRET_KEY"))
	s.Require().NoError(os.Unsetenv("CHECKOUT_HTTP_TIMEOUT"))
}
