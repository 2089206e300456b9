package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/Gobd/preprocess"
	"gopkg.in/yaml.v3"
)

type printer struct {
	w         io.Writer
	format    string
	precision int
}

type envelope struct {
	Result any `json:"result" yaml:"result"`
}

// print writes result, a Sequence or a string, in the configured format.
func (p printer) print(result any) error {
	if s, ok := result.(preprocess.Sequence); ok && p.precision >= 0 {
		result = roundSequence(s, p.precision)
	}

	switch p.format {
	case FormatJSON:
		return json.NewEncoder(p.w).Encode(envelope{Result: result})
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(envelope{Result: result}); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintf(p.w, "Result: %v\n", result)
	return err
}

func roundSequence(s preprocess.Sequence, precision int) preprocess.Sequence {
	out := make(preprocess.Sequence, len(s))
	for i, v := range s {
		switch v.Kind() {
		case preprocess.KindFloat:
			f, _ := v.AsFloat()
			out[i] = preprocess.Float(roundFloat(f, precision))
		case preprocess.KindList:
			l, _ := v.AsList()
			out[i] = preprocess.List(roundSequence(l, precision)...)
		default:
			out[i] = v
		}
	}
	return out
}

// roundFloat rounds f to precision decimal places. Non-finite values are
// returned unchanged.
func roundFloat(f float64, precision int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', precision, 64), 64)
	if err != nil {
		return f
	}
	return r
}
