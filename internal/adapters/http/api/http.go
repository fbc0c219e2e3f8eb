// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/adurand33/Performance/internal/app"
	"github.com/adurand33/Performance/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the app implementation.
type Dependencies interface {
	// EnsureSession resolves a client session id, creating one if needed.
	EnsureSession(ctx context.Context, sessionID string) string

	// Athletes returns the known athlete names, sorted.
	Athletes(ctx context.Context) ([]string, error)

	// Records returns the session-ordered table view for one athlete.
	Records(ctx context.Context, sessionID, athlete string) (app.TableView, error)

	// ToggleSort applies a sort-button click for the session.
	ToggleSort(ctx context.Context, sessionID, column string) (model.SortKey, error)
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	athletesHandler  *AthletesHandler
	recordsHandler   *RecordsHandler
	sortHandler      *SortHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		athletesHandler:  NewAthletesHandler(deps),
		recordsHandler:   NewRecordsHandler(deps),
		sortHandler:      NewSortHandler(deps),
		dashboardHandler: newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux. Every business route runs
// behind the session cookie and metrics middlewares.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux, deps Dependencies) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/athletes", SessionMiddleware(deps, MetricsMiddleware(s.athletesHandler.HandleGetAthletes, "athletes")))
	mux.HandleFunc("/records", SessionMiddleware(deps, MetricsMiddleware(s.recordsHandler.HandleGetRecords, "records")))
	mux.HandleFunc("/sort", SessionMiddleware(deps, MetricsMiddleware(s.sortHandler.HandlePostSort, "sort")))
}

// sortRequest mirrors the OpenAPI schema for POST /sort.
type sortRequest struct {
	Column string `json:"column"`
}

type athletesResponse struct {
	Athletes []string `json:"athletes"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
