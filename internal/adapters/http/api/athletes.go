// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// AthleteDependencies defines the interface for athlete listing.
type AthleteDependencies interface {
	Athletes(ctx context.Context) ([]string, error)
}

// AthletesHandler handles athlete listing requests.
type AthletesHandler struct {
	deps AthleteDependencies
}

// NewAthletesHandler creates a new athletes handler.
func NewAthletesHandler(deps AthleteDependencies) *AthletesHandler {
	return &AthletesHandler{deps: deps}
}

// HandleGetAthletes handles GET /athletes requests.
func (h *AthletesHandler) HandleGetAthletes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	athletes, err := h.deps.Athletes(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "store_unavailable", ErrStoreUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, athletesResponse{Athletes: athletes})
}
