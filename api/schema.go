package api

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Gobd/preprocess"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

var valueType = reflect.TypeOf(preprocess.Value{})

// NewSchemaRefForValue generates an OpenAPI schema for value. Fields of
// types implementing [Ruler] are annotated by their rules, and
// [preprocess.Value] is documented as any JSON scalar or array.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(schemaDoc))
	return g.NewSchemaRefForValue(value, nil)
}

func schemaDoc(name string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	if t == valueType {
		*schema = openapi3.Schema{
			Description: "null, boolean, number, string or array of values.",
		}
		return nil
	}

	inst := reflect.New(t)
	r, ok := inst.Interface().(Ruler)
	if !ok {
		return nil
	}
	fields := r.Rules()
	if err := mapFieldsToTags(fields, inst.Elem()); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return applyRulesToSchema(fields, schema)
}

// mapFieldsToTags resolves each FieldRules' fieldPtr to its JSON tag name
// by comparing field addresses.
func mapFieldsToTags(fields []*FieldRules, structVal reflect.Value) error {
	for i, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			return fmt.Errorf("rule target for field index %d must be a pointer, got %s", i, fv.Kind())
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			return fmt.Errorf("rule target for field index %d not found in struct %s", i, structVal.Type())
		}
		fields[i].tag = strings.Split(sf.Tag.Get("json"), ",")[0]
	}
	return nil
}

func findStructField(structVal reflect.Value, fieldPtr reflect.Value) *reflect.StructField {
	ptr := fieldPtr.Pointer()
	for i := range structVal.NumField() {
		f := structVal.Field(i)
		if f.UnsafeAddr() == ptr && f.Type() == fieldPtr.Elem().Type() {
			sf := structVal.Type().Field(i)
			return &sf
		}
	}
	return nil
}

// applyRulesToSchema calls Describe on each rule for matching schema properties.
func applyRulesToSchema(fields []*FieldRules, schema *openapi3.Schema) error {
	for k, propRef := range schema.Properties {
		for _, f := range fields {
			if f.tag != k {
				continue
			}
			for _, rule := range f.rules {
				if err := rule.Describe(k, schema, propRef); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
