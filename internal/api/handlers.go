package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devconf/devconf/internal/result"
	"github.com/devconf/devconf/internal/store"
	"github.com/devconf/devconf/internal/tree"
)

// Handler serves the configuration endpoints.
type Handler struct {
	store *store.Store
}

// NewHandler creates an API handler over the given configuration store.
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// GetConfiguration returns the full configuration tree.
// GET /api/configuration
func (h *Handler) GetConfiguration(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.store.GetAll())
}

// GetByPath returns a single configuration value.
// GET /api/configuration/{path}
func (h *Handler) GetByPath(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "path")
	writeResult(w, h.store.GetByPath(path))
}

// UpdateValue sets a single configuration value. The body is a JSON string
// carrying the new value.
// PUT /api/configuration/{path}
func (h *Handler) UpdateValue(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "path")

	var value string
	if err := decodeJSON(r, &value); err != nil {
		writeResult(w, result.Fail[*tree.Item]("invalid request body: "+err.Error()))
		return
	}

	writeResult(w, h.store.Update(path, value))
}

// BulkUpdate applies a batch of configuration updates.
// PUT /api/configuration/bulk
func (h *Handler) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var updates []store.ConfigurationUpdate
	if err := decodeJSON(r, &updates); err != nil {
		writeResult(w, result.Fail[*store.BulkUpdateResult]("invalid request body: "+err.Error()))
		return
	}

	writeResult(w, h.store.BulkUpdate(updates))
}

// writeResult writes the Result envelope. Domain failures are carried inside
// the body; the transport always answers 200.
func writeResult[T any](w http.ResponseWriter, res result.Result[T]) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
