// Package api serves the preprocess transforms over HTTP.
//
// Every transform is exposed as POST /{group}/{command} with a JSON body and a
// {"result": ...} response. Request types declare their validation rules with
// [Field], and the same rules annotate the generated OpenAPI document:
//
//	func (r *ClipRequest) Rules() []*api.FieldRules {
//	    return []*api.FieldRules{
//	        api.Field(&r.Data, api.NotNil),
//	        api.Field(&r.MinVal, api.Default(0), api.By(r.checkRange, "Must not exceed max_val.")),
//	    }
//	}
//
// [NewServer] wires the routes together with /openapi.json, a Swagger UI
// under /swagger/ and Prometheus metrics under /metrics.
package api
