// Package params serializes request parameter records to the form encoding
// Stripe expects, where nested fields are written as parent[child], array
// elements as array[i] and map entries as map[key].
//
// Records are plain structs whose fields carry a form tag:
//
//	type LineItem struct {
//		Price    *string `form:"price"`
//		Quantity *int64  `form:"quantity"`
//	}
//
// A nil pointer, slice or map is absent and produces no pairs. Anything else
// is present, so a pointer to false, 0 or "" is sent. The required option
// makes an absent field (or an empty string) an error. Embedded structs
// without a tag are flattened into their parent. Fields are written in
// declaration order, array elements in index order and map entries sorted by
// key.
package params

import (
	"fmt"
	"github.com/stripe/stripe-go/v72/form"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Pair is one key/value of a form body or query string.
type Pair struct {
	Key   string
	Value string
}

// Pairs is an ordered list of form pairs. Duplicate keys are allowed.
type Pairs []Pair

// Encode serializes the record v into pairs. v must be a struct or a pointer
// to one; a nil pointer encodes to no pairs.
//
// Serialization fails with *api.MissingFieldError when a required field is
// absent and with *enum.UnsupportedVariantError when an enum field holds a
// value its set does not declare.
func Encode(v interface{}) (Pairs, error) {
	pairs := Pairs{}
	if v == nil {
		return pairs, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return pairs, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("params: cannot encode %s, expected a struct", rv.Type())
	}

	e := &encoder{pairs: pairs}
	if err := e.encodeStruct(rv, nil); err != nil {
		return nil, err
	}
	return e.pairs, nil
}

type encoder struct {
	pairs Pairs
}

func (e *encoder) add(parts []string, value string) {
	e.pairs = append(e.pairs, Pair{Key: form.FormatKey(parts), Value: value})
}

func (e *encoder) encodeStruct(rv reflect.Value, parts []string) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("form")
		if tag == "-" {
			continue
		}
		name, opts := parseTag(tag)
		fv := rv.Field(i)

		if f.Anonymous && name == "" {
			for fv.Kind() == reflect.Ptr && !fv.IsNil() {
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				if err := e.encodeStruct(fv, parts); err != nil {
					return err
				}
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}

		fieldParts := child(parts, name)
		required := opts.has("required")
		if absent(fv, required) {
			if required {
				return &api.MissingFieldError{Path: form.FormatKey(fieldParts)}
			}
			continue
		}
		if err := e.encodeValue(fv, fieldParts); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encodeValue(rv reflect.Value, parts []string) error {
	if info, ok := enum.Lookup(rv.Type()); ok {
		w := rv.String()
		if !info.KnownWire(w) {
			return &enum.UnsupportedVariantError{Enum: info.Name(), Value: w, Path: form.FormatKey(parts)}
		}
		e.add(parts, w)
		return nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return e.encodeValue(rv.Elem(), parts)
	case reflect.Struct:
		return e.encodeStruct(rv, parts)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			if err := e.encodeValue(rv.Index(i), child(parts, strconv.Itoa(i))); err != nil {
				return err
			}
		}
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("params: cannot encode %s at %s, map keys must be strings", rv.Type(), form.FormatKey(parts))
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		info, isEnum := enum.Lookup(rv.Type().Key())
		for _, k := range keys {
			next := child(parts, k.String())
			if isEnum && !info.KnownWire(k.String()) {
				return &enum.UnsupportedVariantError{Enum: info.Name(), Value: k.String(), Path: form.FormatKey(next)}
			}
			if err := e.encodeValue(rv.MapIndex(k), next); err != nil {
				return err
			}
		}
	case reflect.String:
		e.add(parts, rv.String())
	case reflect.Bool:
		e.add(parts, strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.add(parts, strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		e.add(parts, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		e.add(parts, strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	default:
		return fmt.Errorf("params: cannot encode %s at %s", rv.Type(), form.FormatKey(parts))
	}
	return nil
}

// absent reports whether fv contributes nothing to the form. Empty strings
// only count as absent for required fields.
func absent(fv reflect.Value, required bool) bool {
	switch fv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return fv.IsNil()
	case reflect.String:
		return required && fv.Len() == 0
	}
	return false
}

func child(parts []string, key string) []string {
	next := make([]string, len(parts)+1)
	copy(next, parts)
	next[len(parts)] = key
	return next
}

type tagOptions []string

func (o tagOptions) has(opt string) bool {
	for _, s := range o {
		if s == opt {
			return true
		}
	}
	return false
}

func parseTag(tag string) (string, tagOptions) {
	parts := strings.Split(tag, ",")
	return parts[0], tagOptions(parts[1:])
}
