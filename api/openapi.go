package api

import (
	"errors"
	"net/http"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Response describes an HTTP response with a description and body types for schema generation.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single API operation.
type Endpoint struct {
	Summary     string
	Description string
	Request     any                 // request body type
	Response    any                 // 200 response type
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// NewRequest generates an OpenAPI request body schema from the given value types.
// More than one type yields a oneOf schema.
func NewRequest(vs ...any) (*openapi3.RequestBodyRef, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	wrapper := &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: openapi3.SchemaRefs{}}}
	for i := range vs {
		schema, err := NewSchemaRefForValue(vs[i])
		if err != nil {
			return nil, err
		}
		wrapper.Value.OneOf = append(wrapper.Value.OneOf, schema)
	}
	if len(wrapper.Value.OneOf) == 1 {
		wrapper = wrapper.Value.OneOf[0]
	}

	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithContent(openapi3.Content{
				"application/json": &openapi3.MediaType{Schema: wrapper},
			}),
	}, nil
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	codes := make([]string, 0, len(vs))
	for code := range vs {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for _, statusCode := range codes {
		desc := vs[statusCode].Desc

		var refs openapi3.SchemaRefs
		for _, body := range vs[statusCode].Bodies {
			schema, err := NewSchemaRefForValue(body)
			if err != nil {
				return nil, err
			}
			refs = append(refs, schema)
		}

		content := openapi3.Content{
			"application/json": &openapi3.MediaType{
				Schema: &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}},
			},
		}
		if len(refs) == 1 {
			content["application/json"].Schema = refs[0]
		}

		opts = append(opts, openapi3.WithName(statusCode, &openapi3.Response{
			Description: &desc,
			Content:     content,
		}))
	}

	return openapi3.NewResponses(opts...), nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the document at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	}

	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) error {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	if ep.Request != nil {
		body, err := NewRequest(ep.Request)
		if err != nil {
			return err
		}
		op.RequestBody = body
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
		}
	}
	if responses != nil {
		r, err := NewResponse(responses)
		if err != nil {
			return err
		}
		op.Responses = r
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
	return nil
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPost, operationID, ep)
}
