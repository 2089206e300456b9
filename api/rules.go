package api

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type (
	// RuleFunc validates a value and returns an error if it is invalid.
	RuleFunc func(value any) error

	// Rule validates a value and documents itself on an OpenAPI schema.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// Ruler is implemented by request types that declare field rules.
	Ruler interface {
		Rules() []*FieldRules
	}

	// FieldRules binds a struct field pointer to its rules.
	FieldRules struct {
		fieldPtr any
		tag      string
		rules    []Rule
	}
)

// Field creates a FieldRules binding a struct field pointer to its rules.
func Field[T any](fieldPtr *T, rules ...Rule) *FieldRules {
	return &FieldRules{
		fieldPtr: fieldPtr,
		rules:    rules,
	}
}

// NotNil rejects absent slices and pointers. An empty JSON array passes.
var NotNil = notNilRule{Rule: validation.NotNil}

type notNilRule struct {
	validation.Rule
}

func (r notNilRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	schema.Required = append(schema.Required, name)
	ref.Value.Nullable = false
	return nil
}

type describe struct {
	desc string
}

// Describe returns a documentation-only rule that appends desc to the schema description.
func Describe(desc string) Rule {
	return &describe{desc: desc}
}

func (r *describe) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

func (r *describe) Validate(_ any) error {
	return nil
}

type defaulter struct {
	a any
}

// Default returns a documentation-only rule that sets the schema default value.
func Default(a any) Rule {
	return defaulter{a: a}
}

func (r defaulter) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Default = r.a
	return nil
}

func (r defaulter) Validate(_ any) error {
	return nil
}

type example struct {
	ex any
}

// Example returns a documentation-only rule that sets the schema example value.
func Example(ex any) Rule {
	return &example{ex: ex}
}

func (r *example) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Example = r.ex
	return nil
}

func (r *example) Validate(_ any) error {
	return nil
}

// By wraps a RuleFunc into a Rule documented by desc.
func By(f RuleFunc, desc string) Rule {
	return &inlineRule{validation.By(validation.RuleFunc(f)), desc}
}

type inlineRule struct {
	validation.Rule
	desc string
}

func (r *inlineRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
