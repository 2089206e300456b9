// Command example mounts the preprocess HTTP API under /v1 of a chi router
// next to an application route that calls the library directly.
//
// Run:
//
//	go run ./_example
//
// Then open http://localhost:8080/v1/swagger/ in your browser, or:
//
//	curl -d '{"data":[10,null,20.5,"","text",30]}' localhost:8080/v1/clean/remove-missing
package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/Gobd/preprocess"
	"github.com/Gobd/preprocess/api"
	"github.com/Gobd/preprocess/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Reading is a sensor sample as an application might receive it.
type Reading struct {
	Values []any `json:"values"`
}

func main() {
	log := logger.New(os.Stdout, os.Stderr, zerolog.InfoLevel)

	srv, err := api.NewServer(log)
	if err != nil {
		log.Fatal().Err(err).Msg("building API")
	}

	r := chi.NewRouter()
	r.Mount("/v1", srv.Handler())

	// Clean and rescale in one call: drop gaps, then map into [0, 100].
	r.Post("/readings/scaled", func(w http.ResponseWriter, r *http.Request) {
		var in Reading
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: err.Error()})
			return
		}
		s := preprocess.RemoveMissing(preprocess.SequenceOf(in.Values...))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.SequenceResponse{
			Result: preprocess.NormalizeMinMax(s, 0, 100),
		})
	})

	log.Info().Msg("Listening on http://localhost:8080 (Swagger UI at /v1/swagger/)")
	if err := http.ListenAndServe(":8080", r); err != nil {
		log.Fatal().Err(err).Msg("serving")
	}
}
