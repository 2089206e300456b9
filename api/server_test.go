package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(zerolog.Nop())
	require.NoError(t, err)
	return s
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	b, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, strings.TrimSpace(string(b))
}

func TestTransforms(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		path string
		body string
		want string
	}{
		{path: "/clean/remove-missing", body: `{"data":[10,null,20.5,"","text",30]}`, want: `{"result":[10,20.5,"text",30]}`},
		{path: "/clean/fill-missing", body: `{"data":[1,null,""]}`, want: `{"result":[1,0,0]}`},
		{path: "/clean/fill-missing", body: `{"data":[1,null],"fill_value":"x"}`, want: `{"result":[1,"x"]}`},
		{path: "/clean/fill-missing", body: `{"data":[1,""],"fill_value":null}`, want: `{"result":[1,null]}`},
		{path: "/clean/unique", body: `{"data":[1,"1",1,1.0,[1],[1]]}`, want: `{"result":[1,"1",1.0,[1]]}`},
		{path: "/numeric/normalize", body: `{"data":[10,20,30,40,50]}`, want: `{"result":[0.0,0.25,0.5,0.75,1.0]}`},
		{path: "/numeric/normalize", body: `{"data":[0,10],"new_min":-1,"new_max":1}`, want: `{"result":[-1.0,1.0]}`},
		{path: "/numeric/standardize", body: `{"data":[5,5,"a"]}`, want: `{"result":[0.0,0.0]}`},
		{path: "/numeric/clip", body: `{"data":[-1,0.5,2,"a"]}`, want: `{"result":[0.0,0.5,1.0]}`},
		{path: "/numeric/clip", body: `{"data":[5,15,25],"min_val":10,"max_val":20}`, want: `{"result":[10.0,15,20.0]}`},
		{path: "/numeric/to-integers", body: `{"data":["10.5","20","texto"]}`, want: `{"result":[10,20]}`},
		{path: "/numeric/log-transform", body: `{"data":[1,-5,0]}`, want: `{"result":[0.0]}`},
		{path: "/text/tokenize", body: `{"text":"Hola, mundo! 1 prueba."}`, want: `{"result":"hola mundo 1 prueba"}`},
		{path: "/text/remove-punctuation", body: `{"text":"Hi, there!"}`, want: `{"result":"Hi there"}`},
		{path: "/text/remove-stops", body: `{"text":"Este es UN texto","stop_words":["un"]}`, want: `{"result":"este es texto"}`},
		{path: "/struct/flatten", body: `{"data":[[1,2],[3,4],5]}`, want: `{"result":[1,2,3,4,5]}`},
		{path: "/struct/shuffle", body: `{"data":[7],"seed":1}`, want: `{"result":[7]}`},
		{path: "/clean/remove-missing", body: `{"data":[]}`, want: `{"result":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, body := do(t, h, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.want, body)
		})
	}
}

func TestShuffleSeedIsReproducible(t *testing.T) {
	h := newTestServer(t).Handler()
	body := `{"data":[1,2,3,4,5,6,7,8,9,10],"seed":42}`

	_, first := do(t, h, http.MethodPost, "/struct/shuffle", body)
	_, second := do(t, h, http.MethodPost, "/struct/shuffle", body)
	assert.Equal(t, first, second)

	_, unseeded := do(t, h, http.MethodPost, "/struct/shuffle", `{"data":[1,2,3]}`)
	for _, n := range []string{"1", "2", "3"} {
		assert.Contains(t, unseeded, n)
	}
}

func TestBadRequests(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{name: "malformed", path: "/clean/unique", body: `{"data":`, want: "invalid request body"},
		{name: "object element", path: "/clean/unique", body: `{"data":[{"a":1}]}`, want: "invalid request body"},
		{name: "missing data", path: "/clean/unique", body: `{}`, want: "data: is required."},
		{name: "null data", path: "/numeric/to-integers", body: `{"data":null}`, want: "data: is required."},
		{name: "inverted range", path: "/numeric/clip", body: `{"data":[1],"min_val":5,"max_val":1}`, want: "min_val: must be no greater than max_val (1)."},
		{name: "inverted default", path: "/numeric/clip", body: `{"data":[1],"min_val":2}`, want: "min_val: must be no greater than max_val (1)."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, h, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Contains(t, body, `"error":`)
			assert.Contains(t, body, tt.want)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	h := newTestServer(t).Handler()
	code, _ := do(t, h, http.MethodPost, "/numeric/unknown", `{}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, h, http.MethodGet, "/numeric/clip", "")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
}

func TestDocumentRoutes(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	code, body := do(t, h, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"/numeric/clip"`)
	assert.Contains(t, body, `"numericClip"`)
	assert.Equal(t, 13, s.Doc().Paths.Len())

	code, body = do(t, h, http.MethodGet, "/swagger/", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "swagger-ui")
	assert.Contains(t, body, `"/struct/flatten"`)

	code, body = do(t, h, http.MethodGet, "/swagger/docs.json", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"openapi":"3.0.3"`)
}

func TestMounted(t *testing.T) {
	r := chi.NewRouter()
	r.Mount("/v1", newTestServer(t).Handler())

	code, body := do(t, r, http.MethodPost, "/v1/clean/unique", `{"data":[1,1]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, `{"result":[1]}`, body)

	code, body = do(t, r, http.MethodGet, "/v1/swagger/", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "swagger-ui")

	code, _ = do(t, r, http.MethodGet, "/v1/swagger/missing.css", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMetricsRoute(t *testing.T) {
	h := newTestServer(t).Handler()

	do(t, h, http.MethodPost, "/numeric/to-integers", `{"data":["1","x","y"]}`)
	do(t, h, http.MethodPost, "/numeric/clip", `{"data":[1],"min_val":5}`)

	code, body := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `preprocess_requests_total{operation="numeric/to-integers",status="ok"} 1`)
	assert.Contains(t, body, `preprocess_requests_total{operation="numeric/clip",status="invalid"} 1`)
	assert.Contains(t, body, `preprocess_elements_dropped_total{operation="numeric/to-integers"} 2`)
	assert.Contains(t, body, `preprocess_request_duration_seconds_count{operation="numeric/clip"} 1`)
}

func TestOperationID(t *testing.T) {
	assert.Equal(t, "cleanRemoveMissing", operationID(operation{group: "clean", command: "remove-missing"}))
	assert.Equal(t, "structShuffle", operationID(operation{group: "struct", command: "shuffle"}))
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestListenAndServeBadAddr(t *testing.T) {
	s := newTestServer(t)
	require.Error(t, s.ListenAndServe(context.Background(), "127.0.0.1:-1"))
}
