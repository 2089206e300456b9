package preprocess

// RemoveMissing returns the elements of s that are not missing. Zero and
// false are kept; only Missing, empty Text and NaN are dropped.
func RemoveMissing(s Sequence) Sequence {
	out := make(Sequence, 0, len(s))
	for _, v := range s {
		if v.IsMissing() {
			continue
		}
		out = append(out, v)
	}
	return out
}

// FillMissing returns a copy of s with every missing element replaced by
// fill. Length and order are preserved, and fill may itself be missing.
func FillMissing(s Sequence, fill Value) Sequence {
	out := make(Sequence, len(s))
	for i, v := range s {
		if v.IsMissing() {
			out[i] = fill
			continue
		}
		out[i] = v
	}
	return out
}
