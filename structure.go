package preprocess

import "math/rand/v2"

// Flatten splices the elements of every List element of s into the result,
// one level deep. Other elements are appended as they are.
func Flatten(s Sequence) Sequence {
	out := make(Sequence, 0, len(s))
	for _, v := range s {
		if v.kind == KindList {
			out = append(out, v.list...)
			continue
		}
		out = append(out, v)
	}
	return out
}

// Shuffle returns a copy of s in random order drawn from a non-deterministic
// source. s is not modified.
func Shuffle(s Sequence) Sequence {
	return fisherYates(s, rand.IntN)
}

// ShuffleSeeded returns a copy of s permuted by Fisher-Yates driven by a PCG
// generator seeded with (seed, 0). The same seed and length always produce
// the same permutation. s is not modified.
func ShuffleSeeded(s Sequence, seed int64) Sequence {
	r := rand.New(rand.NewPCG(uint64(seed), 0)) //nolint:gosec // reproducibility, not secrecy
	return fisherYates(s, r.IntN)
}

// fisherYates walks i from the last index down to 1 and swaps element i with
// a uniformly chosen j in [0, i].
func fisherYates(s Sequence, intN func(int) int) Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
