package preprocess

import (
	"math"
	"strconv"
	"strings"
)

// Deduplicate keeps the first occurrence of each distinct value, in order.
// Values are distinct under [Value.Equal], so NaN (and any list holding a
// NaN) is never a duplicate and is always kept.
func Deduplicate(s Sequence) Sequence {
	seen := make(map[string]struct{}, len(s))
	out := make(Sequence, 0, len(s))
	for _, v := range s {
		k, ok := v.key()
		if !ok {
			out = append(out, v)
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// key returns a string that is identical for two values exactly when they
// are Equal. It reports false when v holds a NaN, which equals nothing.
func (v Value) key() (string, bool) {
	var b strings.Builder
	if !v.writeKey(&b) {
		return "", false
	}
	return b.String(), true
}

func (v Value) writeKey(b *strings.Builder) bool {
	b.WriteByte(byte('0' + v.kind))
	switch v.kind {
	case KindBool:
		b.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		if math.IsNaN(v.f) {
			return false
		}
		f := v.f
		if f == 0 {
			f = 0 // -0 == 0
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case KindText:
		b.WriteString(strconv.Quote(v.s))
	case KindList:
		b.WriteString(strconv.Itoa(len(v.list)))
		b.WriteByte('[')
		for _, e := range v.list {
			if !e.writeKey(b) {
				return false
			}
			b.WriteByte(',')
		}
		b.WriteByte(']')
	}
	return true
}
