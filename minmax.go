package preprocess

import "fmt"

// NormalizeMinMax rescales the numeric elements of s linearly into
// [newMin, newMax]. Non-numeric elements are dropped. When every numeric
// element is equal the result is newMin for each of them.
func NormalizeMinMax(s Sequence, newMin, newMax float64) Sequence {
	nums := numbers(s)
	if len(nums) == 0 {
		return Sequence{}
	}

	lo, hi := nums[0], nums[0]
	for _, x := range nums[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	out := make(Sequence, len(nums))
	span := hi - lo
	if span == 0 {
		for i := range nums {
			out[i] = Float(newMin)
		}
		return out
	}
	for i, x := range nums {
		out[i] = Float(newMin + (x-lo)*(newMax-newMin)/span)
	}
	return out
}

// Clip bounds every numeric element of s to [minVal, maxVal]. Elements below
// minVal become minVal, elements above maxVal become maxVal, the rest are
// returned unchanged. Non-numeric elements are dropped.
func Clip(s Sequence, minVal, maxVal float64) (Sequence, error) {
	if minVal > maxVal {
		return nil, invalidArgument("min_val", "validation_range_inverted",
			fmt.Sprintf("must be no greater than max_val (%v)", maxVal))
	}

	out := make(Sequence, 0, len(s))
	for _, v := range s {
		x, ok := v.Number()
		if !ok {
			continue
		}
		switch {
		case x < minVal:
			out = append(out, Float(minVal))
		case x > maxVal:
			out = append(out, Float(maxVal))
		default:
			out = append(out, v)
		}
	}
	return out, nil
}

// numbers returns the numeric elements of s as float64, in order.
func numbers(s Sequence) []float64 {
	nums := make([]float64, 0, len(s))
	for _, v := range s {
		if x, ok := v.Number(); ok {
			nums = append(nums, x)
		}
	}
	return nums
}
