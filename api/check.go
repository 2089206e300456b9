package api

import (
	"reflect"
	"strings"
)

// MissingRules returns the JSON names of exported fields of structPtr that
// no rule in its Rules() covers. Fields tagged json:"-" are skipped.
//
// Use in tests to catch forgotten fields:
//
//	assert.Empty(t, api.MissingRules(&ClipRequest{}))
func MissingRules(structPtr any) []string {
	r, ok := structPtr.(Ruler)
	if !ok {
		return nil
	}

	structVal := reflect.Indirect(reflect.ValueOf(structPtr))
	covered := map[string]bool{}
	for _, fr := range r.Rules() {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			continue
		}
		if sf := findStructField(structVal, fv); sf != nil {
			covered[fieldKey(*sf)] = true
		}
	}

	var missing []string
	t := structVal.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() || strings.Split(sf.Tag.Get("json"), ",")[0] == "-" {
			continue
		}
		if key := fieldKey(sf); !covered[key] {
			missing = append(missing, key)
		}
	}
	return missing
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}
