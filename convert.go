package preprocess

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
)

// int64 bounds as float64; the upper bound itself is not representable.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// ParseFloat parses s as a decimal floating-point number. Surrounding
// whitespace, exponents and inf/infinity are accepted; hexadecimal forms and
// nan are not. Values beyond the float64 range parse to ±Inf.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !govalidator.IsFloat(strings.TrimLeft(s, "+-")) && !isInfinity(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func isInfinity(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.EqualFold(s, "inf") || strings.EqualFold(s, "infinity")
}

// ToIntegers converts the elements of s to integers. Text is parsed with
// [ParseFloat] and truncated toward zero, Float is truncated and Int is kept.
// Anything else, and anything non-finite or outside the int64 range, is
// dropped.
func ToIntegers(s Sequence) Sequence {
	out := make(Sequence, 0, len(s))
	for _, v := range s {
		var f float64
		switch v.kind {
		case KindInt:
			out = append(out, v)
			continue
		case KindFloat:
			f = v.f
		case KindText:
			var ok bool
			if f, ok = ParseFloat(v.s); !ok {
				continue
			}
		default:
			continue
		}
		if i, ok := truncate(f); ok {
			out = append(out, Int(i))
		}
	}
	return out
}

func truncate(f float64) (int64, bool) {
	if math.IsNaN(f) || f < minInt64Float || f >= maxInt64Float {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}

// LogTransform returns the natural logarithm of every numeric element of s
// that is strictly positive. Everything else is dropped.
func LogTransform(s Sequence) Sequence {
	out := make(Sequence, 0, len(s))
	for _, v := range s {
		if x, ok := v.Number(); ok && x > 0 {
			out = append(out, Float(math.Log(x)))
		}
	}
	return out
}
