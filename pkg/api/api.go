// Package api holds the vocabulary shared by every Stripe binding in this
// module: scalar types, list envelopes, expandable references, error types,
// and the response decoder.
package api

import (
	"strings"
	"time"
)

// Timestamp is a Unix timestamp in seconds.
type Timestamp int64

// NewTimestamp converts t to a Timestamp, dropping sub-second precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Unix())
}

// Time returns the Timestamp as a UTC time.Time.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// MaxIDLength is the longest id Stripe accepts in a resource path.
const MaxIDLength = 5000

// ValidateID checks that id can address a single resource: it must not be
// blank nor longer than MaxIDLength.
func ValidateID(id string) error {
	if len(strings.TrimSpace(id)) == 0 {
		return ErrEmptyID
	}
	if len(id) > MaxIDLength {
		return ErrIDTooLong
	}
	return nil
}

// Metadata is the set of key-value pairs attached to a Stripe object.
// In a request, an empty value unsets the key.
type Metadata map[string]string

// RangeQueryTs filters a timestamp field. Every bound is optional; set Gte
// and Lte to the same value to match an exact timestamp.
type RangeQueryTs struct {
	// Gt keeps results after the timestamp.
	Gt *Timestamp `form:"gt"`

	// Gte keeps results at or after the timestamp.
	Gte *Timestamp `form:"gte"`

	// Lt keeps results before the timestamp.
	Lt *Timestamp `form:"lt"`

	// Lte keeps results at or before the timestamp.
	Lte *Timestamp `form:"lte"`
}

// Object is implemented by every response record that carries a Stripe id.
type Object interface {
	ObjectID() string
}

// Address is a postal address as returned by Stripe.
type Address struct {
	City       *string `json:"city"`
	Country    *string `json:"country"`
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	PostalCode *string `json:"postal_code"`
	State      *string `json:"state"`
}

// Ptr returns a pointer to v. It is mostly used to set optional enum fields.
func Ptr[T any](v T) *T {
	return &v
}
