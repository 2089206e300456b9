package preprocess

import (
	"math"
	"strconv"
	"strings"
)

// String renders v for display: None, True/False, integers in decimal,
// floats with a fractional part or exponent (0.0, 1e+16, nan, inf), text in
// single quotes and lists in brackets.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

// String renders s as a bracketed, comma separated list.
func (s Sequence) String() string {
	var b strings.Builder
	writeList(&b, s)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.kind {
	case KindMissing:
		b.WriteString("None")
	case KindBool:
		if v.b {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		b.WriteString(FormatFloat(v.f))
	case KindText:
		b.WriteString(quote(v.s))
	case KindList:
		writeList(b, v.list)
	}
}

func writeList(b *strings.Builder, s Sequence) {
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		v.write(b)
	}
	b.WriteByte(']')
}

// FormatFloat returns the shortest representation of f that parses back to
// the same float and always reads as a float: a fractional part is added to
// integral values, and the exponent form is used below 1e-4 and from 1e16.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// quote wraps s in single quotes, switching to double quotes when s holds a
// single quote and no double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r == rune(q) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
