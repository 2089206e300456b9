package api

import (
	"io"

	"github.com/Gobd/preprocess"
)

// applyFunc decodes a request body, runs a transform and returns the
// response body with the number of elements the transform dropped.
type applyFunc func(body io.Reader) (result any, dropped int, err error)

type operation struct {
	group    string
	command  string
	endpoint Endpoint
	apply    applyFunc
}

func (o operation) path() string {
	return "/" + o.group + "/" + o.command
}

func (o operation) name() string {
	return o.group + "/" + o.command
}

// decode returns an applyFunc that decodes into a copy of defaults,
// validates it and calls fn.
func decode[T any](defaults T, fn func(*T) (any, int, error)) applyFunc {
	return func(body io.Reader) (any, int, error) {
		req := defaults
		if err := DecodeAndValidate(body, &req); err != nil {
			return nil, 0, err
		}
		return fn(&req)
	}
}

func sequenceResult(in, out preprocess.Sequence) (any, int, error) {
	return SequenceResponse{Result: out}, len(in) - len(out), nil
}

func sequenceOp(group, command, summary string, fn func(preprocess.Sequence) preprocess.Sequence) operation {
	return operation{
		group:   group,
		command: command,
		endpoint: Endpoint{
			Summary:  summary,
			Request:  SequenceRequest{},
			Response: SequenceResponse{},
		},
		apply: decode(SequenceRequest{}, func(r *SequenceRequest) (any, int, error) {
			return sequenceResult(r.Data, fn(r.Data))
		}),
	}
}

func textOp(command, summary string, fn func(string) string) operation {
	return operation{
		group:   "text",
		command: command,
		endpoint: Endpoint{
			Summary:  summary,
			Request:  TextRequest{},
			Response: TextResponse{},
		},
		apply: decode(TextRequest{}, func(r *TextRequest) (any, int, error) {
			return TextResponse{Result: fn(r.Text)}, 0, nil
		}),
	}
}

func operations() []operation {
	return []operation{
		sequenceOp("clean", "remove-missing", "Drop missing elements", preprocess.RemoveMissing),
		{
			group:   "clean",
			command: "fill-missing",
			endpoint: Endpoint{
				Summary:  "Replace missing elements",
				Request:  FillRequest{},
				Response: SequenceResponse{},
			},
			apply: decode(FillRequest{FillValue: preprocess.Int(0)}, func(r *FillRequest) (any, int, error) {
				return sequenceResult(r.Data, preprocess.FillMissing(r.Data, r.FillValue))
			}),
		},
		sequenceOp("clean", "unique", "Drop repeated elements", preprocess.Deduplicate),
		{
			group:   "numeric",
			command: "normalize",
			endpoint: Endpoint{
				Summary:  "Rescale numbers into a range",
				Request:  NormalizeRequest{},
				Response: SequenceResponse{},
			},
			apply: decode(NormalizeRequest{NewMax: 1}, func(r *NormalizeRequest) (any, int, error) {
				return sequenceResult(r.Data, preprocess.NormalizeMinMax(r.Data, r.NewMin, r.NewMax))
			}),
		},
		sequenceOp("numeric", "standardize", "Z-score standardization", preprocess.StandardizeZScore),
		{
			group:   "numeric",
			command: "clip",
			endpoint: Endpoint{
				Summary:  "Bound numbers to a range",
				Request:  ClipRequest{},
				Response: SequenceResponse{},
			},
			apply: decode(ClipRequest{MaxVal: 1}, func(r *ClipRequest) (any, int, error) {
				out, err := preprocess.Clip(r.Data, r.MinVal, r.MaxVal)
				if err != nil {
					return nil, 0, err
				}
				return sequenceResult(r.Data, out)
			}),
		},
		{
			group:   "numeric",
			command: "to-integers",
			endpoint: Endpoint{
				Summary:  "Parse strings into integers",
				Request:  IntegersRequest{},
				Response: SequenceResponse{},
			},
			apply: decode(IntegersRequest{}, func(r *IntegersRequest) (any, int, error) {
				in := make(preprocess.Sequence, len(r.Data))
				for i, s := range r.Data {
					in[i] = preprocess.Text(s)
				}
				return sequenceResult(in, preprocess.ToIntegers(in))
			}),
		},
		sequenceOp("numeric", "log-transform", "Natural logarithm of positive numbers", preprocess.LogTransform),
		textOp("tokenize", "Lower-case and split into words", preprocess.Tokenize),
		textOp("remove-punctuation", "Keep ASCII letters, digits and whitespace", preprocess.SelectAlphanumericAndSpaces),
		{
			group:   "text",
			command: "remove-stops",
			endpoint: Endpoint{
				Summary:  "Drop stop words",
				Request:  StopWordsRequest{},
				Response: TextResponse{},
			},
			apply: decode(StopWordsRequest{}, func(r *StopWordsRequest) (any, int, error) {
				return TextResponse{Result: preprocess.RemoveStopWords(r.Text, r.StopWords)}, 0, nil
			}),
		},
		sequenceOp("struct", "flatten", "Flatten nested lists one level", preprocess.Flatten),
		{
			group:   "struct",
			command: "shuffle",
			endpoint: Endpoint{
				Summary:  "Randomly reorder elements",
				Request:  ShuffleRequest{},
				Response: SequenceResponse{},
			},
			apply: decode(ShuffleRequest{}, func(r *ShuffleRequest) (any, int, error) {
				if r.Seed != nil {
					return sequenceResult(r.Data, preprocess.ShuffleSeeded(r.Data, *r.Seed))
				}
				return sequenceResult(r.Data, preprocess.Shuffle(r.Data))
			}),
		},
	}
}
