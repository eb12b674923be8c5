package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"keeper-service/internal/logging"
	"keeper-service/internal/providers"
	"keeper-service/internal/snapshots"
)

// AdminHandler exposes operator-only endpoints (snapshot refresh).
type AdminHandler struct {
	writer   *snapshots.Writer
	provider providers.LeagueProvider
	season   int
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(writer *snapshots.Writer, provider providers.LeagueProvider, season int, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		writer:   writer,
		provider: provider,
		season:   season,
		token:    token,
		logger:   logger,
	}
}

// RefreshSnapshots captures the live league blob to disk for the requested
// season (defaults to the configured one). Guarded by ADMIN_TOKEN; returns
// 401 if missing/invalid.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized", slog.String(logging.FieldPath, r.URL.Path))
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.provider == nil || h.writer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)

	season := h.season
	if raw := strings.TrimSpace(r.URL.Query().Get("season")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			logging.Warn(logger, "admin snapshot invalid season", slog.String(logging.FieldSeason, raw))
			writeError(w, r, http.StatusBadRequest, "invalid season", logger)
			return
		}
		season = parsed
	}

	blob, err := h.provider.FetchLeague(r.Context(), season)
	if err != nil {
		logging.Warn(logger, "admin snapshot fetch failed", slog.Int(logging.FieldSeason, season), slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "league fetch failed", logger)
		return
	}
	if err := h.writer.WriteLeagueSnapshot(season, blob); err != nil {
		logging.Error(logger, "admin snapshot write failed", err, slog.Int(logging.FieldSeason, season))
		writeError(w, r, http.StatusInternalServerError, "snapshot write failed", logger)
		return
	}

	logging.Info(logger, "league snapshot refreshed", slog.Int(logging.FieldSeason, season))
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "season": season}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	auth := r.Header.Get("Authorization")
	if after, found := strings.CutPrefix(auth, "Bearer "); found {
		return after == h.token
	}
	return false
}
