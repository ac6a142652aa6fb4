package api

// List is the envelope Stripe wraps every list response in.
type List[T any] struct {
	// Object is always "list".
	Object string `json:"object"`

	// Data holds the page in the order returned by Stripe.
	Data []T `json:"data"`

	// HasMore reports whether another page follows this one.
	HasMore bool `json:"has_more"`

	// URL is the path this list was fetched from.
	URL string `json:"url"`
}

// Last returns the last element of the page.
func (l List[T]) Last() (T, bool) {
	if len(l.Data) == 0 {
		var zero T
		return zero, false
	}
	return l.Data[len(l.Data)-1], true
}

// ListParams holds the cursor parameters accepted by every list endpoint.
type ListParams struct {
	// EndingBefore is an object id; the page ends right before it.
	EndingBefore *string `form:"ending_before"`

	// Limit bounds the page size between 1 and 100. Stripe defaults to 10.
	Limit *int64 `form:"limit"`

	// StartingAfter is an object id; the page starts right after it.
	StartingAfter *string `form:"starting_after"`
}
