package params

import (
	"github.com/stripe/stripe-go/v72/form"
	"net/url"
)

// Encode renders the pairs as an application/x-www-form-urlencoded string in
// their current order. Brackets in keys are left unescaped.
func (p Pairs) Encode() string {
	return p.Values().Encode()
}

// Values copies the pairs into stripe-go's ordered form values.
func (p Pairs) Values() *form.Values {
	values := &form.Values{}
	for _, pair := range p {
		values.Add(pair.Key, pair.Value)
	}
	return values
}

// URLValues copies the pairs into url.Values, losing the order across keys.
func (p Pairs) URLValues() url.Values {
	return p.Values().ToValues()
}

// Get returns every value stored under key, in order.
func (p Pairs) Get(key string) []string {
	var values []string
	for _, pair := range p {
		if pair.Key == key {
			values = append(values, pair.Value)
		}
	}
	return values
}

// Has reports whether key is present.
func (p Pairs) Has(key string) bool {
	for _, pair := range p {
		if pair.Key == key {
			return true
		}
	}
	return false
}

// Keys returns the keys in order.
func (p Pairs) Keys() []string {
	keys := make([]string, len(p))
	for i, pair := range p {
		keys[i] = pair.Key
	}
	return keys
}

// Without returns a copy of the pairs with every key in keys removed.
func (p Pairs) Without(keys ...string) Pairs {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(Pairs, 0, len(p))
	for _, pair := range p {
		if _, ok := drop[pair.Key]; ok {
			continue
		}
		out = append(out, pair)
	}
	return out
}

// With returns a copy of the pairs with key=value appended.
func (p Pairs) With(key, value string) Pairs {
	out := make(Pairs, len(p), len(p)+1)
	copy(out, p)
	return append(out, Pair{Key: key, Value: value})
}
