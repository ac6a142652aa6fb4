package api_test

import (
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/suite"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"
	"strings"
	"testing"
	"time"
)

type tier string

const (
	tierFree tier = "free"
	tierPro  tier = "pro"
)

var _ = enum.Closed("TestTier", tierFree, tierPro)

type account struct {
	ID       string          `json:"id"`
	Tier     tier            `json:"tier"`
	Seats    int64           `json:"seats"`
	Email    *string         `json:"email"`
	Owner    api.Expandable  `json:"owner"`
	Tags     []string        `json:"tags"`
	Metadata api.Metadata    `json:"metadata,omitempty"`
	Extra    json.RawMessage `json:"extra,omitempty"`
}

func (a account) ObjectID() string { return a.ID }

type decodeTestSuite struct {
	suite.Suite
}

func TestDecodeSuite(t *testing.T) {
	suite.Run(t, new(decodeTestSuite))
}

func (s *decodeTestSuite) TestDecode() {
	var a account
	err := api.Decode([]byte(`{
		"id": "acct_1",
		"tier": "pro",
		"seats": 3,
		"email": null,
		"owner": "cus_1",
		"tags": ["a", "b"],
		"unknown_field": {"ignored": true}
	}`), &a)

	s.Require().NoError(err)
	s.Assert().Equal("acct_1", a.ID)
	s.Assert().Equal(tierPro, a.Tier)
	s.Assert().Equal(int64(3), a.Seats)
	s.Assert().Nil(a.Email)
	s.Assert().Equal("cus_1", a.Owner.ID)
	s.Assert().False(a.Owner.Expanded())
	s.Assert().Equal([]string{"a", "b"}, a.Tags)
	s.Assert().Nil(a.Metadata)
}

func (s *decodeTestSuite) TestMissingField() {
	var a account
	err := api.Decode([]byte(`{"id": "acct_1", "tier": "pro", "seats": 3, "email": null, "owner": "cus_1"}`), &a)

	var missing *api.MissingFieldError
	s.Require().True(errors.As(err, &missing))
	s.Assert().Equal("tags", missing.Path)
}

func (s *decodeTestSuite) TestNullRequiredField() {
	var a account
	err := api.Decode([]byte(`{"id": "acct_1", "tier": "pro", "seats": 3, "email": null, "owner": "cus_1", "tags": null}`), &a)

	var missing *api.MissingFieldError
	s.Require().True(errors.As(err, &missing))
	s.Assert().Equal("tags", missing.Path)
}

func (s *decodeTestSuite) TestTypeMismatch() {
	var a account
	err := api.Decode([]byte(`{"id": "acct_1", "tier": "pro", "seats": "three", "email": null, "owner": "cus_1", "tags": []}`), &a)

	var mismatch *api.TypeMismatchError
	s.Require().True(errors.As(err, &mismatch))
	s.Assert().Equal("seats", mismatch.Path)
	s.Assert().Equal("integer", mismatch.Expected)
}

func (s *decodeTestSuite) TestFractionalInteger() {
	var a account
	err := api.Decode([]byte(`{"id": "acct_1", "tier": "pro", "seats": 1.5, "email": null, "owner": "cus_1", "tags": []}`), &a)

	var mismatch *api.TypeMismatchError
	s.Require().True(errors.As(err, &mismatch))
	s.Assert().Equal("seats", mismatch.Path)
}

func (s *decodeTestSuite) TestNestedPath() {
	var list api.List[account]
	err := api.Decode([]byte(`{
		"object": "list",
		"url": "/v1/accounts",
		"has_more": false,
		"data": [{"id": "acct_1", "tier": "pro", "seats": 3, "email": null, "owner": "cus_1", "tags": [1]}]
	}`), &list)

	var mismatch *api.TypeMismatchError
	s.Require().True(errors.As(err, &mismatch))
	s.Assert().Equal("data[0].tags[0]", mismatch.Path)
}

func (s *decodeTestSuite) TestClosedEnumRejectsUnknown() {
	var a account
	err := api.Decode([]byte(`{"id": "acct_1", "tier": "enterprise", "seats": 3, "email": null, "owner": "cus_1", "tags": []}`), &a)

	var decodeErr *enum.DecodeError
	s.Require().True(errors.As(err, &decodeErr))
	s.Assert().Equal("TestTier", decodeErr.Enum)
	s.Assert().Equal("enterprise", decodeErr.Value)
	s.Assert().Equal("tier", decodeErr.Path)
}

func (s *decodeTestSuite) TestDecodeTarget() {
	var a account
	s.Assert().Error(api.Decode([]byte(`{}`), a))
	s.Assert().Error(api.Decode([]byte(`{`), &a))
}

func (s *decodeTestSuite) TestListLast() {
	list := api.List[account]{Data: []account{{ID: "acct_1"}, {ID: "acct_2"}}}

	last, ok := list.Last()
	s.Require().True(ok)
	s.Assert().Equal("acct_2", last.ObjectID())

	_, ok = api.List[account]{}.Last()
	s.Assert().False(ok)
}

type expandableTestSuite struct {
	suite.Suite
}

func TestExpandableSuite(t *testing.T) {
	suite.Run(t, new(expandableTestSuite))
}

func (s *expandableTestSuite) TestExpanded() {
	var a account
	err := api.Decode([]byte(`{
		"id": "acct_1",
		"tier": "free",
		"seats": 1,
		"email": "owner@example.com",
		"owner": {"id": "cus_1", "object": "customer", "email": "owner@example.com"},
		"tags": []
	}`), &a)
	s.Require().NoError(err)

	s.Assert().Equal("cus_1", a.Owner.ID)
	s.Require().True(a.Owner.Expanded())

	var owner struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	s.Require().NoError(a.Owner.Decode(&owner))
	s.Assert().Equal("owner@example.com", owner.Email)

	data, err := json.Marshal(a.Owner)
	s.Require().NoError(err)
	s.Assert().JSONEq(`{"id": "cus_1", "object": "customer", "email": "owner@example.com"}`, string(data))
}

func (s *expandableTestSuite) TestDecodeNotExpanded() {
	e := api.Expandable{ID: "cus_1"}

	var v struct{}
	var missing *api.MissingFieldError
	s.Assert().True(errors.As(e.Decode(&v), &missing))

	data, err := json.Marshal(e)
	s.Require().NoError(err)
	s.Assert().Equal(`"cus_1"`, string(data))
}

func (s *expandableTestSuite) TestInvalidShape() {
	var e api.Expandable
	var mismatch *api.TypeMismatchError
	s.Assert().True(errors.As(json.Unmarshal([]byte(`42`), &e), &mismatch))
}

type timestampTestSuite struct {
	suite.Suite
}

func TestTimestampSuite(t *testing.T) {
	suite.Run(t, new(timestampTestSuite))
}

func (s *timestampTestSuite) TestRoundTrip() {
	now := time.Date(2024, 4, 10, 12, 30, 15, 999, time.UTC)

	ts := api.NewTimestamp(now)
	s.Assert().Equal(api.Timestamp(now.Unix()), ts)
	s.Assert().Equal(now.Truncate(time.Second), ts.Time())
}

func (s *decodeTestSuite) TestValidateID() {
	s.Assert().NoError(api.ValidateID("cs_test_a1"))
	s.Assert().NoError(api.ValidateID(strings.Repeat("a", api.MaxIDLength)))
	s.Assert().ErrorIs(api.ValidateID(""), api.ErrEmptyID)
	s.Assert().ErrorIs(api.ValidateID(" \t"), api.ErrEmptyID)
	s.Assert().ErrorIs(api.ValidateID(strings.Repeat("a", api.MaxIDLength+1)), api.ErrIDTooLong)
}
