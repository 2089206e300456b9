package preprocess

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// MarshalJSON encodes Missing and non-finite floats as null. Finite floats
// always carry a fractional part or exponent so they decode back to Float.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindMissing:
		return []byte("null"), nil
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	case KindInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return []byte("null"), nil
		}
		return []byte(FormatFloat(v.f)), nil
	case KindText:
		return json.Marshal(v.s)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal([]Value(v.list))
	}
	return nil, fmt.Errorf("cannot encode value of kind %v", v.kind)
}

// UnmarshalJSON decodes null as Missing, integers without a fraction or
// exponent as Int, other numbers as Float, strings as Text and arrays as List.
func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errors.New("empty JSON value")
	}
	switch b[0] {
	case 'n':
		*v = Missing()
		return nil
	case 't', 'f':
		var x bool
		if err := json.Unmarshal(b, &x); err != nil {
			return err
		}
		*v = Bool(x)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	case '[':
		var list []Value
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		if list == nil {
			list = []Value{}
		}
		*v = List(list...)
		return nil
	case '{':
		return errors.New("objects are not supported as values")
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if !bytes.ContainsAny(b, ".eE") {
		if i, err := n.Int64(); err == nil {
			*v = Int(i)
			return nil
		}
	}
	f, err := n.Float64()
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return err
	}
	*v = Float(f)
	return nil
}

// MarshalYAML returns the native form of v for gopkg.in/yaml.v3.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindInt:
		return v.i, nil
	case KindFloat:
		return v.f, nil
	case KindText:
		return v.s, nil
	case KindList:
		if v.list == nil {
			return []Value{}, nil
		}
		return []Value(v.list), nil
	}
	return nil, nil
}
