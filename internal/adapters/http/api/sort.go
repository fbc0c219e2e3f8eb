// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/adurand33/Performance/internal/domain/model"
)

// SortDependencies defines the interface for sort toggling.
type SortDependencies interface {
	ToggleSort(ctx context.Context, sessionID, column string) (model.SortKey, error)
}

// SortHandler handles sort toggle requests.
type SortHandler struct {
	deps SortDependencies
}

// NewSortHandler creates a new sort handler.
func NewSortHandler(deps SortDependencies) *SortHandler {
	return &SortHandler{deps: deps}
}

// HandlePostSort handles POST /sort requests. A click on the active
// column flips the direction; a new column resets to ascending.
func (h *SortHandler) HandlePostSort(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req sortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	key, err := h.deps.ToggleSort(r.Context(), sessionIDFrom(r.Context()), req.Column)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_column", err)
		return
	}
	writeJSON(w, http.StatusOK, key)
}
