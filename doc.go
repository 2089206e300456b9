// Package preprocess provides stateless data-preprocessing transforms over
// heterogeneous sequences and text.
//
// Elements are modeled by [Value], a tagged union of Missing, Bool, Int,
// Float, Text and List. Build sequences directly or lift native Go values:
//
//	s := preprocess.SequenceOf(10, nil, 20.5, "", "text", math.NaN(), 30)
//	fmt.Println(preprocess.RemoveMissing(s)) // [10, 20.5, 'text', 30]
//
// Transforms fall into four groups:
//   - cleaning: [RemoveMissing], [FillMissing], [Deduplicate]
//   - numeric: [NormalizeMinMax], [StandardizeZScore], [Clip], [ToIntegers], [LogTransform]
//   - text: [Tokenize], [SelectAlphanumericAndSpaces], [RemoveStopWords]
//   - structural: [Flatten], [Shuffle], [ShuffleSeeded]
//
// Every transform returns a new value and never modifies its input. Elements
// a transform cannot interpret (text in a numeric transform, unparseable
// strings in [ToIntegers]) are dropped rather than reported. Violated
// preconditions return an error wrapping [ErrInvalidArgument].
//
// Sub-packages:
//   - cli – cobra command tree and string to [Value] coercion
//   - api – HTTP JSON surface, OpenAPI document and Swagger UI
//   - logger – zerolog construction
package preprocess
