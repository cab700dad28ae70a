// Package server exposes avatar rendering over HTTP.
//
// One endpoint does the work: GET /v1/avatar/{hash} renders the path
// segment into a PNG (or an animated GIF with format=gif). Because
// output is a pure function of the request parameters, responses carry
// long-lived immutable cache headers and a parameter-derived ETag, and
// rendered bytes are cached in-process.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/hashvatar/pkg/cache"
)

// Server holds the handler dependencies.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
}

// New creates a server. A nil logger falls back to log.Default; a nil
// cache disables response caching.
func New(logger *log.Logger, c cache.Cache) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if c == nil {
		c = cache.NewNull()
	}
	return &Server{logger: logger, cache: c}
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/avatar/{hash}", s.handleAvatar)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
