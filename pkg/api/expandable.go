package api

import (
	"bytes"
	"encoding/json"
)

// Expandable is a reference to another Stripe object. Stripe sends the id of
// the object unless the request asked for the field to be expanded, in which
// case the whole object is sent and kept in Raw.
type Expandable struct {
	ID  string
	Raw json.RawMessage
}

var (
	_ json.Marshaler   = Expandable{}
	_ json.Unmarshaler = (*Expandable)(nil)
)

// Expanded reports whether the full object was sent.
func (e Expandable) Expanded() bool { return len(e.Raw) > 0 }

// Decode unpacks the expanded object into v.
func (e Expandable) Decode(v interface{}) error {
	if !e.Expanded() {
		return &MissingFieldError{Path: "(expanded object " + e.ID + ")"}
	}
	return Decode(e.Raw, v)
}

// UnmarshalJSON accepts either an id string or an object with an "id" key.
func (e *Expandable) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		e.Raw = nil
		return json.Unmarshal(data, &e.ID)
	case '{':
		var ref struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(data, &ref); err != nil {
			return err
		}
		e.ID = ref.ID
		e.Raw = append(json.RawMessage(nil), data...)
		return nil
	default:
		return &TypeMismatchError{Expected: "id string or object", Got: jsonKind(data)}
	}
}

// MarshalJSON emits the object when expanded and the id otherwise.
func (e Expandable) MarshalJSON() ([]byte, error) {
	if e.Expanded() {
		return e.Raw, nil
	}
	return json.Marshal(e.ID)
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "nothing"
	}
	switch data[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
