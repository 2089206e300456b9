package preprocess

import "math"

// StandardizeZScore maps each numeric element x of s to (x-mean)/std using
// the population mean and standard deviation (divided by N). Non-numeric
// elements are dropped. A zero deviation yields 0.0 for every element.
func StandardizeZScore(s Sequence) Sequence {
	nums := numbers(s)
	if len(nums) == 0 {
		return Sequence{}
	}

	n := float64(len(nums))
	var sum float64
	for _, x := range nums {
		sum += x
	}
	mean := sum / n

	var sq float64
	for _, x := range nums {
		sq += (x - mean) * (x - mean)
	}
	std := math.Sqrt(sq / n)

	out := make(Sequence, len(nums))
	for i, x := range nums {
		if std == 0 {
			out[i] = Float(0)
			continue
		}
		out[i] = Float((x - mean) / std)
	}
	return out
}
