package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"keeper-service/internal/app/league"
	"keeper-service/internal/domain/keepers"
	"keeper-service/internal/logging"
	"keeper-service/internal/providers"
)

// Handler wires HTTP routes to the league service.
type Handler struct {
	svc    *league.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *league.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	case "/api/teams":
		h.Teams(w, r)
	case "/api/team_roster":
		h.TeamRoster(w, r)
	case "/api/check":
		h.Check(w, r)
	case "/api/check_keeper_selection":
		h.CheckSelection(w, r)
	case "/api/keeper_limits":
		h.KeeperLimits(w, r)
	default:
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.svc == nil {
		writeError(w, r, http.StatusServiceUnavailable, "league service not configured", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Teams returns the dropdown list of league teams.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"teams":       h.svc.Teams(r.Context()),
		"last_season": h.svc.Season(),
	}, h.logger)
}

// TeamRoster returns the final end-of-year roster for a team key.
func (h *Handler) TeamRoster(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	teamKey := strings.TrimSpace(r.URL.Query().Get("team"))
	if teamKey == "" {
		writeError(w, r, http.StatusBadRequest, "Missing ?team=<team_key>", h.logger)
		return
	}

	resp, err := h.svc.TeamRoster(r.Context(), teamKey)
	if err != nil {
		h.writeFetchFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

type checkRequest struct {
	Name   string `json:"name"`
	TeamID string `json:"team_id"`
}

// Check runs the final-roster and keeper eligibility checks for one player.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	name := strings.ToLower(strings.TrimSpace(req.Name))
	teamKey := strings.TrimSpace(req.TeamID)
	if name == "" || teamKey == "" {
		writeError(w, r, http.StatusBadRequest, "Missing player name or team selection.", h.logger)
		return
	}

	result, err := h.svc.Check(r.Context(), name, teamKey)
	if err != nil {
		h.writeFetchFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result, h.logger)
}

type selectionRequest struct {
	Name           string                `json:"name"`
	TeamID         string                `json:"team_id"`
	CurrentKeepers []keepers.KeeperEntry `json:"current_keepers"`
}

// CheckSelection decides whether a player can join the caller's tentative
// keeper selection.
func (h *Handler) CheckSelection(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}

	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	name := strings.ToLower(strings.TrimSpace(req.Name))
	teamKey := strings.TrimSpace(req.TeamID)
	if name == "" || teamKey == "" {
		writeError(w, r, http.StatusBadRequest, "Missing player name or team selection.", h.logger)
		return
	}

	result, err := h.svc.CheckSelection(r.Context(), name, teamKey, req.CurrentKeepers)
	switch {
	case errors.Is(err, league.ErrPlayerNotFound):
		writeError(w, r, http.StatusNotFound, "Player not found.", h.logger)
		return
	case errors.Is(err, league.ErrAmbiguousName):
		writeError(w, r, http.StatusNotFound, "Player name matches multiple players; selection requires an unambiguous name.", h.logger)
		return
	case err != nil:
		h.writeFetchFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result, h.logger)
}

// KeeperLimits describes the selection constraint set.
func (h *Handler) KeeperLimits(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Limits(), h.logger)
}

func (h *Handler) writeFetchFailure(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	logging.Warn(logger, "league fetch failed", "err", err)

	status := http.StatusBadGateway
	if errors.Is(err, providers.ErrProviderUnavailable) {
		status = http.StatusServiceUnavailable
	}
	writeError(w, r, status, "Failed to load league data: "+err.Error(), h.logger)
}
