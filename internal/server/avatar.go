package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/hashvatar/pkg/cache"
	"github.com/matzehuels/hashvatar/pkg/hashvatar"
)

// Rendering limits for the HTTP surface. The library itself has no
// upper bound on size; the server does, to keep a single request from
// monopolizing the process.
const (
	maxSize   = 1024
	gifFrames = 48
	gifFPS    = 15
	cacheTTL  = 24 * time.Hour
)

const formatGIF = "gif"

// avatarRequest is the fully resolved set of render parameters for one
// request. Invalid query values degrade to defaults rather than
// erroring, mirroring the library's never-fail contract.
type avatarRequest struct {
	opts   hashvatar.Options
	format string
}

func parseAvatarRequest(r *http.Request) avatarRequest {
	q := r.URL.Query()

	opts := hashvatar.Options{
		Hash:  chi.URLParam(r, "hash"),
		Tones: q["tone"],
	}
	if v, err := strconv.Atoi(q.Get("size")); err == nil && v > 0 {
		opts.Size = min(v, maxSize)
	}
	if v, err := strconv.ParseFloat(q.Get("scale"), 64); err == nil && v > 0 {
		opts.PixelRatio = v
	}
	if v, err := strconv.Atoi(q.Get("dot")); err == nil && v > 0 {
		opts.DotScale = v
	}
	if m := hashvatar.Mode(q.Get("mode")); m.Valid() {
		opts.Mode = m
	}

	format := "png"
	if q.Get("format") == formatGIF {
		format = formatGIF
	}
	return avatarRequest{opts: opts, format: format}
}

func (s *Server) handleAvatar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := parseAvatarRequest(r)

	key := cache.Key("avatar",
		req.format, req.opts.Hash, string(req.opts.Mode), req.opts.Size,
		req.opts.PixelRatio, req.opts.DotScale, req.opts.Tones)
	etag := `"` + key + `"`

	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		s.writeImage(w, req.format, etag, data)
		return
	}

	data, err := s.renderAvatar(req)
	if err != nil {
		s.logger.Error("render failed", "hash", req.opts.Hash, "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	_ = s.cache.Set(r.Context(), key, data, cacheTTL)

	s.writeImage(w, req.format, etag, data)
	s.logger.Debug("rendered avatar",
		"hash", req.opts.Hash,
		"mode", req.opts.Mode,
		"format", req.format,
		"bytes", len(data),
		"duration", time.Since(start).Round(time.Millisecond))
}

func (s *Server) renderAvatar(req avatarRequest) ([]byte, error) {
	if req.format == formatGIF {
		return hashvatar.RenderGIF(req.opts, gifFrames, gifFPS)
	}
	av := hashvatar.New(req.opts)
	defer av.Destroy()
	return av.Canvas.PNG()
}

func (s *Server) writeImage(w http.ResponseWriter, format, etag string, data []byte) {
	contentType := "image/png"
	if format == formatGIF {
		contentType = "image/gif"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("ETag", etag)
	// Output is deterministic per parameter set, so it never changes.
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
