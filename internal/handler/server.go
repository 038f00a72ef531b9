// Package handler implements the HTTP handlers for the circle search API.
// All handlers are methods on Server. They are split into files by endpoint
// (health.go, data.go, photos.go) but share the same Server struct so they
// can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/domain"
)

// BoothServicer defines the directory operations the data handler depends on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the file system.
type BoothServicer interface {
	List(ctx context.Context) ([]domain.Booth, error)
}

// PhotoFetcher defines the Graph API passthrough the photos handler depends on.
type PhotoFetcher interface {
	Photos(ctx context.Context, accessToken, pageID string) (json.RawMessage, error)
}

// Server serves every API endpoint.
type Server struct {
	booths BoothServicer
	photos PhotoFetcher
	log    *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(booths BoothServicer, photos PhotoFetcher, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{booths: booths, photos: photos, log: log}
}

// Handler returns a chi router with every endpoint registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/data", s.GetData)
	r.Get("/get-facebook-photos", s.GetFacebookPhotos)
	return r
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.ErrorContext(r.Context(), "encode response", "path", r.URL.Path, "error", err)
	}
}
