package preprocess

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUnmarshalJSON(t *testing.T) {
	var s Sequence
	err := json.Unmarshal([]byte(`[10, null, 20.5, "", "text", true, 1e3, [1, [2]], 30.0]`), &s)
	require.NoError(t, err)

	want := Sequence{
		Int(10), Missing(), Float(20.5), Text(""), Text("text"), Bool(true),
		Float(1000), List(Int(1), List(Int(2))), Float(30),
	}
	require.Len(t, s, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(s[i]), "index %d: got %v want %v", i, s[i], want[i])
	}
}

func TestUnmarshalJSONErrors(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`[1,`), &v))
}

func TestUnmarshalJSONLargeInteger(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`123456789012345678901234567890`), &v))
	assert.Equal(t, KindFloat, v.Kind())
}

func TestMarshalJSON(t *testing.T) {
	s := Sequence{Int(10), Missing(), Float(2), NaN(), Float(math.Inf(1)), Text("a"), Bool(false), List(), List(Float(0.5))}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[10, null, 2.0, null, null, "a", false, [], [0.5]]`, string(b))
	assert.Contains(t, string(b), "2.0")
}

func TestJSONRoundTripKeepsKinds(t *testing.T) {
	in := Sequence{Int(3), Float(3), Text("3")}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out Sequence
	require.NoError(t, json.Unmarshal(b, &out))
	for i := range in {
		assert.True(t, in[i].Equal(out[i]))
	}
}

func TestMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]any{"result": Sequence{Int(1), Missing(), Text("a"), List(Bool(true))}})
	require.NoError(t, err)
	assert.Equal(t, "result:\n    - 1\n    - null\n    - a\n    - - true\n", string(out))
}
