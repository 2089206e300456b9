package cli

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/Gobd/preprocess"
)

// ParseValue converts one command-line argument into a Value:
//
//   - "none" in any case is Missing and "nan" in any case is NaN
//   - "" is empty Text
//   - a JSON array such as "[1, [2, null]]" is a List
//   - a decimal number is an Int when integral and within int64, else a Float
//   - anything else is Text, unchanged
func ParseValue(s string) preprocess.Value {
	switch {
	case strings.EqualFold(s, "none"):
		return preprocess.Missing()
	case strings.EqualFold(s, "nan"):
		return preprocess.NaN()
	case s == "":
		return preprocess.Text("")
	}

	if strings.HasPrefix(strings.TrimSpace(s), "[") {
		var v preprocess.Value
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}

	if f, ok := preprocess.ParseFloat(s); ok {
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return preprocess.Int(int64(f))
		}
		return preprocess.Float(f)
	}
	return preprocess.Text(s)
}

// ParseValues applies ParseValue to each argument.
func ParseValues(args []string) preprocess.Sequence {
	out := make(preprocess.Sequence, len(args))
	for i, a := range args {
		out[i] = ParseValue(a)
	}
	return out
}

// rawValues wraps each argument as Text without coercion.
func rawValues(args []string) preprocess.Sequence {
	out := make(preprocess.Sequence, len(args))
	for i, a := range args {
		out[i] = preprocess.Text(a)
	}
	return out
}
