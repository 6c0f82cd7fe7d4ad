package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/backstage/internal/directory"
	"github.com/desertthunder/backstage/internal/models"
	"github.com/desertthunder/backstage/internal/shared"
)

// APIResponse is the uniform JSON envelope for every directory endpoint.
//
// Source names the storage tier that served a read (cache, merged, baseline)
// and is empty on errors and derived listings.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Source  string `json:"source,omitempty"`
}

// ArtistHandler serves the artist directory API. Implements the [Handler]
// interface for registration with a [Router].
type ArtistHandler struct {
	engine *directory.Engine
	logger *log.Logger
}

// NewArtistHandler creates an [ArtistHandler] backed by the given engine.
func NewArtistHandler(engine *directory.Engine, logger *log.Logger) *ArtistHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &ArtistHandler{engine: engine, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *ArtistHandler) Routes() []string {
	return []string{
		"GET /api/artists/{id}",
		"PATCH /api/artists/{id}",
		"GET /api/artists/{id}/stats",
		"GET /api/artists/{id}/catalog",
		"GET /api/artists/{id}/similar",
		"GET /api/charts/popular",
	}
}

// ServeHTTP dispatches to the endpoint implementations by path shape.
func (h *ArtistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/charts/popular") {
		h.popular(w, r)
		return
	}

	id := r.PathValue("id")
	switch {
	case strings.HasSuffix(r.URL.Path, "/stats"):
		h.stats(w, r, id)
	case strings.HasSuffix(r.URL.Path, "/catalog"):
		h.catalog(w, r, id)
	case strings.HasSuffix(r.URL.Path, "/similar"):
		h.similar(w, r, id)
	case r.Method == http.MethodPatch:
		h.update(w, r, id)
	default:
		h.profile(w, r, id)
	}
}

// profile handles GET /api/artists/{id}.
func (h *ArtistHandler) profile(w http.ResponseWriter, r *http.Request, id string) {
	artist, source, err := h.engine.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: artist, Source: string(source)})
}

// update handles PATCH /api/artists/{id}. The body is a JSON object of
// profile fields; unknown keys are dropped before merging.
func (h *ArtistHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.writeJSON(w, http.StatusBadRequest, APIResponse{Error: "request body must be a JSON object"})
		return
	}

	patch, dropped := models.PatchFromMap(fields)
	if len(dropped) > 0 {
		h.logger.Debug("dropped patch fields", "artist", id, "fields", dropped)
	}

	artist, err := h.engine.Update(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: artist})
}

// stats handles GET /api/artists/{id}/stats.
func (h *ArtistHandler) stats(w http.ResponseWriter, r *http.Request, id string) {
	stats, source, err := h.engine.Stats(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: stats, Source: string(source)})
}

// catalog handles GET /api/artists/{id}/catalog.
func (h *ArtistHandler) catalog(w http.ResponseWriter, r *http.Request, id string) {
	artist, source, err := h.engine.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	tracks := directory.GenerateCatalog(artist)
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: tracks, Source: string(source)})
}

// similar handles GET /api/artists/{id}/similar?top=N.
func (h *ArtistHandler) similar(w http.ResponseWriter, r *http.Request, id string) {
	top, ok := h.queryInt(w, r, "top")
	if !ok {
		return
	}

	results, err := h.engine.Similar(r.Context(), id, top)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: results})
}

// popular handles GET /api/charts/popular?limit=N.
func (h *ArtistHandler) popular(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.queryInt(w, r, "limit")
	if !ok {
		return
	}

	listing := h.engine.List(r.Context(), limit)
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: listing})
}

// queryInt parses an optional positive integer query parameter. Writes a 400
// and returns false when the value is present but malformed.
func (h *ArtistHandler) queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		h.writeJSON(w, http.StatusBadRequest, APIResponse{Error: name + " must be a positive integer"})
		return 0, false
	}
	return value, true
}

// writeError maps domain errors onto HTTP status codes inside the envelope.
func (h *ArtistHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, shared.ErrArtistNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shared.ErrEmptyPatch), errors.Is(err, shared.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	h.writeJSON(w, status, APIResponse{Error: err.Error()})
}

func (h *ArtistHandler) writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
