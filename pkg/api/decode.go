package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"
	"reflect"
	"strconv"
	"strings"
)

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// Decode decodes the JSON document data into the response record v.
//
// Unknown fields are ignored. A field is required unless its type is a
// pointer or its json tag has omitempty; a required field that is missing or
// null fails with *MissingFieldError. A value whose JSON shape does not match
// the record fails with *TypeMismatchError, and a closed enum receiving an
// unknown string fails with *enum.DecodeError.
func Decode(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("api: decode target must be a non-nil pointer")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	if err := check(rv.Type().Elem(), doc, ""); err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			return &TypeMismatchError{Path: te.Field, Expected: te.Type.String(), Got: te.Value}
		}
		return err
	}
	return nil
}

// check walks doc alongside t and reports the first structural problem.
func check(t reflect.Type, doc interface{}, path string) error {
	if doc == nil {
		return nil
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Implements(unmarshalerType) || reflect.PtrTo(t).Implements(unmarshalerType) {
		return nil
	}

	if info, ok := enum.Lookup(t); ok {
		s, ok := doc.(string)
		if !ok {
			return mismatch(path, "string", doc)
		}
		if !info.IsOpen() && !info.KnownWire(s) {
			return &enum.DecodeError{Enum: info.Name(), Value: s, Path: path}
		}
		return nil
	}

	switch t.Kind() {
	case reflect.String:
		if _, ok := doc.(string); !ok {
			return mismatch(path, "string", doc)
		}
	case reflect.Bool:
		if _, ok := doc.(bool); !ok {
			return mismatch(path, "bool", doc)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := doc.(json.Number)
		if !ok {
			return mismatch(path, "integer", doc)
		}
		if _, err := n.Int64(); err != nil {
			return &TypeMismatchError{Path: path, Expected: "integer", Got: "number " + n.String()}
		}
	case reflect.Float32, reflect.Float64:
		if _, ok := doc.(json.Number); !ok {
			return mismatch(path, "number", doc)
		}
	case reflect.Struct:
		m, ok := doc.(map[string]interface{})
		if !ok {
			return mismatch(path, "object", doc)
		}
		return checkStruct(t, m, path)
	case reflect.Slice, reflect.Array:
		items, ok := doc.([]interface{})
		if !ok {
			return mismatch(path, "array", doc)
		}
		for i, item := range items {
			if err := check(t.Elem(), item, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
	case reflect.Map:
		m, ok := doc.(map[string]interface{})
		if !ok {
			return mismatch(path, "object", doc)
		}
		for k, item := range m {
			if err := check(t.Elem(), item, path+"["+k+"]"); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkStruct(t reflect.Type, m map[string]interface{}, path string) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts := parseTag(tag)

		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			if err := checkStruct(f.Type, m, path); err != nil {
				return err
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}

		fieldPath := name
		if path != "" {
			fieldPath = path + "." + name
		}

		value, present := m[name]
		if !present || value == nil {
			if f.Type.Kind() != reflect.Ptr && !opts.has("omitempty") {
				return &MissingFieldError{Path: fieldPath}
			}
			continue
		}
		if err := check(f.Type, value, fieldPath); err != nil {
			return err
		}
	}
	return nil
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

func mismatch(path, expected string, doc interface{}) error {
	var got string
	switch doc.(type) {
	case string:
		got = "string"
	case bool:
		got = "bool"
	case json.Number:
		got = "number"
	case map[string]interface{}:
		got = "object"
	case []interface{}:
		got = "array"
	default:
		got = "null"
	}
	return &TypeMismatchError{Path: path, Expected: expected, Got: got}
}
