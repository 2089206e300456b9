package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gobd/preprocess"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const (
	statusOK      = "ok"
	statusInvalid = "invalid"
	statusError   = "error"

	shutdownTimeout = 5 * time.Second
)

// Server exposes the transforms over HTTP.
type Server struct {
	log     zerolog.Logger
	metrics *Metrics
	doc     *openapi3.T
	router  chi.Router
}

// NewServer builds the router, the OpenAPI document and the Swagger UI.
func NewServer(log zerolog.Logger) (*Server, error) {
	s := &Server{
		log:     log.With().Str("component", "api").Logger(),
		metrics: NewMetrics(),
		doc:     DocBase("preprocess", "Stateless data preprocessing transforms", "1.0.0"),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	for _, op := range operations() {
		ep := op.endpoint
		ep.Responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
			"400": {Desc: "Invalid request", Bodies: []any{ErrorResponse{}}},
		}
		if err := Post(s.doc, op.path(), operationID(op), ep); err != nil {
			return nil, err
		}
		r.Post(op.path(), s.handle(op))
	}

	swagger, err := SwaggerHandler(s.doc)
	if err != nil {
		return nil, err
	}
	r.Handle("/swagger/*", swagger)
	r.Get("/openapi.json", s.serveDoc)
	r.Handle("/metrics", s.metrics.Handler())

	s.router = r
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Doc returns the OpenAPI document describing the routes.
func (s *Server) Doc() *openapi3.T {
	return s.doc
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info().Msg("stopped")
	return nil
}

func (s *Server) handle(op operation) http.HandlerFunc {
	name := op.name()
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		result, dropped, err := op.apply(r.Body)
		if err != nil {
			code, status := classify(err)
			s.metrics.Observe(name, status, 0, time.Since(start))
			writeJSON(w, code, ErrorResponse{Error: err.Error()})
			return
		}
		s.metrics.Observe(name, statusOK, dropped, time.Since(start))
		writeJSON(w, http.StatusOK, result)
	}
}

func (s *Server) serveDoc(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.doc)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// classify maps an apply error to an HTTP status code and a metrics label.
func classify(err error) (int, string) {
	var (
		decodeErr *DecodeError
		valErrs   ValidationErrors
	)
	switch {
	case errors.As(err, &decodeErr),
		errors.As(err, &valErrs),
		errors.Is(err, preprocess.ErrInvalidArgument):
		return http.StatusBadRequest, statusInvalid
	}
	return http.StatusInternalServerError, statusError
}

func operationID(op operation) string {
	parts := strings.Split(op.group+"-"+op.command, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
