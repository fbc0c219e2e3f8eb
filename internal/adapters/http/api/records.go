// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/adurand33/Performance/internal/adapters/repository"
	"github.com/adurand33/Performance/internal/app"
)

// RecordDependencies defines the interface for record table views.
type RecordDependencies interface {
	Records(ctx context.Context, sessionID, athlete string) (app.TableView, error)
}

// RecordsHandler handles record table requests.
type RecordsHandler struct {
	deps RecordDependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps RecordDependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// HandleGetRecords handles GET /records?athlete=NAME requests. The
// response is the athlete's table ordered by the session's sort key;
// a lexical-fallback sort surfaces as a warning field, not a failure.
func (h *RecordsHandler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	athlete := strings.TrimSpace(r.URL.Query().Get("athlete"))
	if athlete == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingAthlete)
		return
	}

	view, err := h.deps.Records(r.Context(), sessionIDFrom(r.Context()), athlete)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnknownAthlete):
			writeError(w, http.StatusNotFound, "not_found", err)
		case errors.Is(err, repository.ErrUnreadable):
			writeError(w, http.StatusServiceUnavailable, "store_unavailable", ErrStoreUnavailable)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, view)
}
