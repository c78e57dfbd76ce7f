// Package dto holds the validated transfer records projected from the
// persisted models. Optional fields are pointers and serialize as null
// when absent.
package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError reports a record that failed validation
type ValidationError struct {
	Record string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Record, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Fields lists the struct fields that failed validation
func (e *ValidationError) Fields() []string {
	var verrs validator.ValidationErrors
	if !errors.As(e.Err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace())
	}
	return fields
}

// Validate checks a record's tags
func Validate(record string, v any) error {
	if err := validate.Struct(v); err != nil {
		return &ValidationError{Record: record, Err: err}
	}
	return nil
}

// ToJSON renders v as two-space indented JSON
func ToJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode json: %w", err)
	}
	return string(b), nil
}

func decode[T any](record string, data []byte, v *T) (*T, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", record, err)
	}
	if err := Validate(record, v); err != nil {
		return nil, err
	}
	return v, nil
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func uintPtr(u uint) *uint {
	if u == 0 {
		return nil
	}
	return &u
}
