package api

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchemaRefForValue_Rules(t *testing.T) {
	ref, err := NewSchemaRefForValue(ClipRequest{})
	require.NoError(t, err)
	s := ref.Value

	assert.ElementsMatch(t, []string{"data"}, s.Required)
	require.Contains(t, s.Properties, "min_val")
	assert.Equal(t, float64(0), s.Properties["min_val"].Value.Default)
	assert.Equal(t, "Must not exceed max_val.", s.Properties["min_val"].Value.Description)
	assert.Equal(t, float64(1), s.Properties["max_val"].Value.Default)

	data := s.Properties["data"].Value
	assert.True(t, data.Type.Is(openapi3.TypeArray))
	assert.Equal(t, dataDesc, data.Description)
	require.NotNil(t, data.Items)
	assert.Nil(t, data.Items.Value.Type, "elements accept any JSON value")
}

func TestNewSchemaRefForValue_ValueField(t *testing.T) {
	ref, err := NewSchemaRefForValue(FillRequest{})
	require.NoError(t, err)

	fill := ref.Value.Properties["fill_value"].Value
	assert.Nil(t, fill.Type)
	assert.Empty(t, fill.Properties)
	assert.Contains(t, fill.Description, "Replaces every missing element.")
	assert.Equal(t, float64(0), fill.Default)
}

func TestNewSchemaRefForValue_PlainType(t *testing.T) {
	ref, err := NewSchemaRefForValue(TextResponse{})
	require.NoError(t, err)
	assert.Empty(t, ref.Value.Required)
	assert.Contains(t, ref.Value.Properties, "result")
}

type strayRules struct {
	A string `json:"a"`
}

var stray string

func (r *strayRules) Rules() []*FieldRules {
	return []*FieldRules{Field(&stray, Describe("not a field"))}
}

func TestNewSchemaRefForValue_ForeignPointer(t *testing.T) {
	_, err := NewSchemaRefForValue(strayRules{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in struct")
}

func TestNewRequestAndResponse(t *testing.T) {
	body, err := NewRequest(SequenceRequest{})
	require.NoError(t, err)
	assert.True(t, body.Value.Required)
	assert.NotNil(t, body.Value.Content["application/json"].Schema.Value.Properties["data"])

	both, err := NewRequest(TextRequest{}, StopWordsRequest{})
	require.NoError(t, err)
	assert.Len(t, both.Value.Content["application/json"].Schema.Value.OneOf, 2)

	_, err = NewRequest()
	require.Error(t, err)

	resp, err := NewResponse(map[string]Response{
		"200": {Desc: "OK", Bodies: []any{SequenceResponse{}}},
		"400": {Desc: "Bad", Bodies: []any{ErrorResponse{}}},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Value("400"))
	assert.Equal(t, "Bad", *resp.Value("400").Value.Description)

	_, err = NewResponse(nil)
	require.Error(t, err)
}

func TestPost(t *testing.T) {
	doc := DocBase("svc", "desc", "0.1.0")
	require.NoError(t, Post(doc, "/text/tokenize", "textTokenize", Endpoint{
		Summary:  "Tokenize",
		Request:  TextRequest{},
		Response: TextResponse{},
	}))

	op := doc.Paths.Value("/text/tokenize").Post
	require.NotNil(t, op)
	assert.Equal(t, "textTokenize", op.OperationID)
	assert.NotNil(t, op.Responses.Value("200"))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
}
