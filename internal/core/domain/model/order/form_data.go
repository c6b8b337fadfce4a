package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"ordertracker/internal/pkg/errs"
)

// FormField is one answer of the stage forms.
type FormField struct {
	Key   string
	Value string
}

// FormData holds form answers in insertion order. Keys follow the
// stage<N>_<fieldName> convention. A nil FormData means "not supplied";
// an empty non-nil one means "supplied with no fields".
//
// FormData is a value type: methods that change content return a new slice.
type FormData []FormField

// Get returns the value stored under key.
func (f FormData) Get(key string) (string, bool) {
	if i := f.indexOf(key); i >= 0 {
		return f[i].Value, true
	}
	return "", false
}

// Keys returns the keys in their current order.
func (f FormData) Keys() []string {
	keys := make([]string, len(f))
	for i, field := range f {
		keys[i] = field.Key
	}
	return keys
}

// With returns a copy of f where key holds value. An existing key keeps its
// position; a new key is appended.
func (f FormData) With(key, value string) FormData {
	out := f.Clone()
	out.set(key, value)
	return out
}

// Merge overlays other onto f following the With rules for each field of other.
func (f FormData) Merge(other FormData) FormData {
	out := f.Clone()
	for _, field := range other {
		out.set(field.Key, field.Value)
	}
	return out
}

// Clone returns an independent copy. Cloning nil yields an empty, non-nil FormData.
func (f FormData) Clone() FormData {
	out := make(FormData, len(f))
	copy(out, f)
	return out
}

func (f FormData) indexOf(key string) int {
	for i, field := range f {
		if field.Key == key {
			return i
		}
	}
	return -1
}

func (f *FormData) set(key, value string) {
	if i := f.indexOf(key); i >= 0 {
		(*f)[i].Value = value
		return
	}
	*f = append(*f, FormField{Key: key, Value: value})
}

// MarshalJSON writes the fields as a JSON object in their stored order.
func (f FormData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat JSON object keeping key order. Numbers and
// booleans are kept in their literal text form, null becomes an empty string.
// Nested objects and arrays are rejected. A duplicated key keeps its first
// position and its last value.
func (f *FormData) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("formData", err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errs.NewValueIsInvalidErrorWithCause("formData", errors.New("expected an object"))
	}

	fields := FormData{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("formData", err)
		}
		key, _ := keyTok.(string)

		valueTok, err := dec.Token()
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("formData", err)
		}
		value, err := scalarText(valueTok)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("formData", fmt.Errorf("field %q: %w", key, err))
		}
		fields.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("formData", err)
	}

	*f = fields
	return nil
}

func scalarText(tok json.Token) (string, error) {
	switch v := tok.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	default:
		return "", errors.New("nested values are not supported")
	}
}
