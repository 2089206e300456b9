package preprocess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardizeZScore(t *testing.T) {
	out := StandardizeZScore(SequenceOf(10, 20, "x", 30))
	require.Len(t, out, 3)

	want := []float64{-1.224744871391589, 0, 1.224744871391589}
	for i, v := range out {
		f, ok := v.AsFloat()
		require.True(t, ok)
		assert.InDelta(t, want[i], f, 1e-12)
	}
}

func TestStandardizeZScoreMoments(t *testing.T) {
	out := StandardizeZScore(SequenceOf(2, 4, 4, 4, 5, 5, 7, 9.5, -3))
	nums := numbers(out)
	require.Len(t, nums, 9)

	var sum float64
	for _, x := range nums {
		sum += x
	}
	mean := sum / float64(len(nums))

	var sq float64
	for _, x := range nums {
		sq += (x - mean) * (x - mean)
	}
	assert.InDelta(t, 0, mean, 1e-9)
	assert.InDelta(t, 1, math.Sqrt(sq/float64(len(nums))), 1e-9)
}

func TestStandardizeZScoreDegenerate(t *testing.T) {
	assert.Equal(t, "[0.0, 0.0, 0.0]", StandardizeZScore(SequenceOf(4, 4.0, 4)).String())
	assert.Equal(t, "[0.0]", StandardizeZScore(SequenceOf(42)).String())
	assert.Equal(t, "[]", StandardizeZScore(SequenceOf("a", nil)).String())
	assert.Equal(t, "[]", StandardizeZScore(nil).String())
}
