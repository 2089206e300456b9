package api

import (
	"encoding/json"
	"fmt"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors maps JSON field names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation.
type ValidationErrors = validation.Errors

// DecodeError reports a request body that is not valid JSON for its type.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Validate checks value against its Rules when it implements [Ruler].
// Other values are valid.
func Validate(value any) error {
	r, ok := value.(Ruler)
	if !ok {
		return nil
	}
	return validation.ValidateStruct(value, convertFieldRules(r.Rules())...)
}

// DecodeAndValidate reads one JSON document from r into dst and validates it.
// Fields absent from the document keep the values dst already holds, so
// defaults can be set before decoding.
func DecodeAndValidate(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return &DecodeError{Err: err}
	}
	return Validate(dst)
}

// convertFieldRules translates FieldRules into ozzo's FieldRules.
func convertFieldRules(fields []*FieldRules) []*validation.FieldRules {
	vFields := make([]*validation.FieldRules, len(fields))
	for i, fr := range fields {
		rules := make([]validation.Rule, len(fr.rules))
		for j, r := range fr.rules {
			rules[j] = validation.Rule(r)
		}
		vFields[i] = validation.Field(fr.fieldPtr, rules...)
	}
	return vFields
}
