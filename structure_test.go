package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   Sequence
		want string
	}{
		{name: "lists", in: SequenceOf([]any{1, 2}, []any{3, 4}), want: "[1, 2, 3, 4]"},
		{name: "mixed", in: SequenceOf(1, []any{2, 3}, "a", []any{}), want: "[1, 2, 3, 'a']"},
		{name: "one level only", in: SequenceOf([]any{1, []any{2, 3}}), want: "[1, [2, 3]]"},
		{name: "empty", in: nil, want: "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flatten(tt.in).String())
		})
	}
}

func TestFlattenFlatIsIdentity(t *testing.T) {
	in := SequenceOf(1, "b", nil, 2.5, true)
	assert.Equal(t, in.String(), Flatten(in).String())
}

func seqOfInts(n int) Sequence {
	s := make(Sequence, n)
	for i := range s {
		s[i] = Int(int64(i))
	}
	return s
}

func TestShuffleSeededReproducible(t *testing.T) {
	in := seqOfInts(12)
	a := ShuffleSeeded(in, 42)
	b := ShuffleSeeded(in, 42)
	c := ShuffleSeeded(in, 99)

	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.String(), c.String())
	assert.Equal(t, seqOfInts(12).String(), in.String(), "input must not be modified")
}

func TestShufflePermutes(t *testing.T) {
	in := seqOfInts(50)
	for _, out := range []Sequence{Shuffle(in), ShuffleSeeded(in, 7)} {
		require.Len(t, out, len(in))
		seen := map[int64]bool{}
		for _, v := range out {
			i, ok := v.AsInt()
			require.True(t, ok)
			seen[i] = true
		}
		assert.Len(t, seen, len(in))
	}
	assert.Equal(t, seqOfInts(50).String(), in.String())
}

func TestShuffleEdgeCases(t *testing.T) {
	assert.Equal(t, "[]", Shuffle(nil).String())
	assert.Equal(t, "[1]", ShuffleSeeded(SequenceOf(1), 3).String())
}
