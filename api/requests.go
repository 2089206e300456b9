package api

import (
	"fmt"

	"github.com/Gobd/preprocess"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dataDesc = "Input sequence. Elements may be null, booleans, numbers, strings or arrays."

var (
	dataExample = []any{float64(10), 20.5, "text", []any{float64(1), float64(2)}}
	textExample = "Hola, mundo! 1 prueba."
)

// SequenceRequest carries a sequence for transforms that take no options.
type SequenceRequest struct {
	Data preprocess.Sequence `json:"data"`
}

func (r *SequenceRequest) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&r.Data, NotNil, Describe(dataDesc), Example(dataExample)),
	}
}

// FillRequest is the body of clean/fill-missing.
type FillRequest struct {
	Data      preprocess.Sequence `json:"data"`
	FillValue preprocess.Value    `json:"fill_value"`
}

func (r *FillRequest) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&r.Data, NotNil, Describe(dataDesc), Example(dataExample)),
		Field(&r.FillValue, Default(float64(0)), Describe("Replaces every missing element.")),
	}
}

// NormalizeRequest is the body of numeric/normalize.
type NormalizeRequest struct {
	Data   preprocess.Sequence `json:"data"`
	NewMin float64             `json:"new_min"`
	NewMax float64             `json:"new_max"`
}

func (r *NormalizeRequest) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&r.Data, NotNil, Describe(dataDesc), Example(dataExample)),
		Field(&r.NewMin, Default(float64(0)), Describe("Lower end of the target range.")),
		Field(&r.NewMax, Default(float64(1)), Describe("Upper end of the target range.")),
	}
}

// ClipRequest is the body of numeric/clip.
type ClipRequest struct {
	Data   preprocess.Sequence `json:"data"`
	MinVal float64             `json:"min_val"`
	MaxVal float64             `json:"max_val"`
}

func (r *ClipRequest) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&r.Data, NotNil, Describe(dataDesc), Example(dataExample)),
		Field(&r.MinVal, Default(float64(0)), By(r.checkRange, "Must not exceed max_val.")),
		Field(&r.MaxVal, Default(float64(1))),
	}
}

func (r *ClipRequest) checkRange(_ any) error {
	if r.MinVal > r.MaxVal {
		return validation.NewError("validation_range_inverted",
			fmt.Sprintf("must be no greater than max_val (%v)", r.MaxVal))
	}
	return nil
}

// IntegersRequest is the body of numeric/to-integers. Data holds raw strings.
type IntegersRequest struct {
	Data []string `json:"data"`
}

func (r *IntegersRequest) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&r.Data, NotNil, Describe("Strings to parse. Unparseable entries are dropped."),
			Example([]any{"10.5", "20", "texto"})),
	}
}

// TextRequest is the body of the tokenize and remove-punctuation transforms.
type TextRequest struct {
	Text string `json:"text"`
}

func (r *TextRequest) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&r.Text, Describe("Input text."), Example(textExample)),
	}
}

// StopWordsRequest is the body of text/remove-stops.
type StopWordsRequest struct {
	Text      string   `json:"text"`
	StopWords []string `json:"stop_words"`
}

func (r *StopWordsRequest) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&r.Text, Describe("Input text."), Example(textExample)),
		Field(&r.StopWords, Describe("Words to drop, compared against the lower-cased text."),
			Example([]any{"un", "de"})),
	}
}

// ShuffleRequest is the body of struct/shuffle.
type ShuffleRequest struct {
	Data preprocess.Sequence `json:"data"`
	Seed *int64              `json:"seed,omitempty"`
}

func (r *ShuffleRequest) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&r.Data, NotNil, Describe(dataDesc), Example(dataExample)),
		Field(&r.Seed, Describe("Optional seed. The same seed always yields the same order.")),
	}
}

// SequenceResponse carries a transformed sequence.
type SequenceResponse struct {
	Result preprocess.Sequence `json:"result"`
}

// TextResponse carries transformed text.
type TextResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
