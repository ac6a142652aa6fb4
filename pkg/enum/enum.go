// Package enum declares string-backed categorical values and the codec that
// maps them to and from their Stripe wire strings.
//
// A closed set rejects any wire string it does not list. An open set accepts
// every string: values it does not list are Unknown, keep the original string,
// and are refused when a request is serialized.
//
// Every set registers itself by Go type so the form serializer and the
// response decoder can find the codec of any enum field through reflection.
package enum

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Info describes a declared enum set independently of its Go type.
type Info interface {
	// Name returns the name used in error messages.
	Name() string

	// IsOpen reports whether the set accepts unknown wire strings.
	IsOpen() bool

	// Type returns the Go type the set was declared for.
	Type() reflect.Type

	// Wires returns the known wire strings in declaration order.
	Wires() []string

	// KnownWire reports whether w is one of the declared wire strings.
	KnownWire(w string) bool

	// ParseWire is Parse without the Go type.
	ParseWire(w string) (string, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[reflect.Type]Info)
)

// Set is the codec of the string-backed enum type E.
type Set[E ~string] struct {
	name   string
	open   bool
	values []E
	known  map[E]struct{}
}

var _ Info = (*Set[string])(nil)

// Closed declares an enum whose wire strings are exactly the given values.
func Closed[E ~string](name string, values ...E) *Set[E] {
	return declare(name, false, values)
}

// Open declares a forward compatible enum: the given values are the known
// variants and any other wire string decodes to an Unknown value.
func Open[E ~string](name string, values ...E) *Set[E] {
	return declare(name, true, values)
}

func declare[E ~string](name string, open bool, values []E) *Set[E] {
	s := &Set[E]{
		name:   name,
		open:   open,
		values: make([]E, 0, len(values)),
		known:  make(map[E]struct{}, len(values)),
	}
	for _, v := range values {
		if _, ok := s.known[v]; ok {
			panic(fmt.Sprintf("enum: %s declares %q twice", name, string(v)))
		}
		s.known[v] = struct{}{}
		s.values = append(s.values, v)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	t := s.Type()
	if prev, ok := registry[t]; ok {
		panic(fmt.Sprintf("enum: %s and %s are declared for the same type %s", prev.Name(), name, t))
	}
	registry[t] = s
	return s
}

// Lookup returns the set declared for t, if any.
func Lookup(t reflect.Type) (Info, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	info, ok := registry[t]
	return info, ok
}

// Registered returns every declared set ordered by name.
func Registered() []Info {
	registryMu.RLock()
	defer registryMu.RUnlock()
	infos := make([]Info, 0, len(registry))
	for _, info := range registry {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })
	return infos
}

// Name returns the name used in error messages.
func (s *Set[E]) Name() string { return s.name }

// IsOpen reports whether the set accepts unknown wire strings.
func (s *Set[E]) IsOpen() bool { return s.open }

// Type returns reflect.Type of E.
func (s *Set[E]) Type() reflect.Type { return reflect.TypeOf((*E)(nil)).Elem() }

// Values returns the known variants in declaration order.
func (s *Set[E]) Values() []E {
	values := make([]E, len(s.values))
	copy(values, s.values)
	return values
}

// Wires returns the known wire strings in declaration order.
func (s *Set[E]) Wires() []string {
	wires := make([]string, len(s.values))
	for i, v := range s.values {
		wires[i] = string(v)
	}
	return wires
}

// Known reports whether v is one of the declared variants.
func (s *Set[E]) Known(v E) bool {
	_, ok := s.known[v]
	return ok
}

// KnownWire reports whether w is one of the declared wire strings.
func (s *Set[E]) KnownWire(w string) bool { return s.Known(E(w)) }

// IsUnknown reports whether v is an Unknown value of an open set.
func (s *Set[E]) IsUnknown(v E) bool { return s.open && !s.Known(v) }

// Parse maps a wire string to its variant. A closed set fails with a
// *DecodeError for strings it does not declare. An open set never fails and
// returns the string unchanged as an Unknown value.
func (s *Set[E]) Parse(w string) (E, error) {
	v := E(w)
	if s.Known(v) || s.open {
		return v, nil
	}
	var zero E
	return zero, &DecodeError{Enum: s.name, Value: w}
}

// ParseWire is Parse without the Go type.
func (s *Set[E]) ParseWire(w string) (string, error) {
	v, err := s.Parse(w)
	return string(v), err
}

// Wire maps a variant to its wire string. Values the set does not declare,
// including Unknown values of open sets, fail with *UnsupportedVariantError.
func (s *Set[E]) Wire(v E) (string, error) {
	if !s.Known(v) {
		return "", &UnsupportedVariantError{Enum: s.name, Value: string(v)}
	}
	return string(v), nil
}

// MustWire is Wire for values known to be declared.
func (s *Set[E]) MustWire(v E) string {
	w, err := s.Wire(v)
	if err != nil {
		panic(err)
	}
	return w
}
