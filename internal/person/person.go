// Package person defines the record stored by the names service.
package person

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultCollection is the store collection holding person records.
const DefaultCollection = "persons"

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("invalid person")

// Person is a named record with an age.
type Person struct {
	Name string `json:"name" yaml:"name"`
	Age  int    `json:"age" yaml:"age"`
}

// ValidationError describes which field failed and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalid.
func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Validate checks the record invariants.
func (p Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Age < 0 {
		return &ValidationError{Field: "age", Reason: "must not be negative"}
	}
	return nil
}

// wire mirrors Person with raw fields so that type mismatches are reported
// per field instead of being coerced.
type wire struct {
	Name *json.RawMessage `json:"name"`
	Age  *json.RawMessage `json:"age"`
}

// Decode reads a single JSON object. Name must be a JSON string and age a
// JSON integer; unknown fields are rejected.
func Decode(r io.Reader) (Person, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var w wire
	if err := dec.Decode(&w); err != nil {
		return Person{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if dec.More() {
		return Person{}, fmt.Errorf("%w: trailing data after object", ErrInvalid)
	}

	var p Person
	if w.Name == nil {
		return Person{}, &ValidationError{Field: "name", Reason: "field required"}
	}
	if err := json.Unmarshal(*w.Name, &p.Name); err != nil {
		return Person{}, &ValidationError{Field: "name", Reason: "must be a string"}
	}

	if w.Age == nil {
		return Person{}, &ValidationError{Field: "age", Reason: "field required"}
	}
	if !isJSONInteger(*w.Age) {
		return Person{}, &ValidationError{Field: "age", Reason: "must be an integer"}
	}
	if err := json.Unmarshal(*w.Age, &p.Age); err != nil {
		return Person{}, &ValidationError{Field: "age", Reason: "out of range"}
	}

	return p, p.Validate()
}

// Marshal encodes p for storage.
func Marshal(p Person) ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal decodes a stored record.
func Unmarshal(data []byte) (Person, error) {
	var p Person
	if err := json.Unmarshal(data, &p); err != nil {
		return Person{}, fmt.Errorf("failed to decode stored person: %w", err)
	}
	return p, nil
}

func isJSONInteger(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '-' {
		raw = raw[1:]
	}
	if len(raw) == 0 {
		return false
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
