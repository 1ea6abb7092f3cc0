package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"nfl-scores-service/internal/domain"
	"nfl-scores-service/internal/scores"
	"nfl-scores-service/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the scores service.
type Handler struct {
	svc    *scores.Service
	logger *slog.Logger
	now    nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *scores.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
		now:    time.Now,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/scores":
		h.Scores(w, r)
	case "/scores/stats":
		h.TeamStats(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Scores serves the listing query. The team parameter takes a team code, a
// selection sentinel, or the wildcard "*" for the split not-final/final
// reply pair; absent it lists everything.
func (h *Handler) Scores(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	date, ok := h.resolveDate(w, r)
	if !ok {
		return
	}

	team := strings.TrimSpace(r.URL.Query().Get("team"))
	var (
		resp domain.ScoreboardResponse
		err  error
	)
	if team == "*" {
		resp, err = h.svc.ScoreboardSplit(r.Context(), date)
	} else {
		criterion := domain.CriterionAll
		if team != "" {
			criterion = domain.NormalizeCriterion(team)
		}
		resp, err = h.svc.Scoreboard(r.Context(), criterion, date)
	}
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, "upstream feed unavailable", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// TeamStats serves the aggregate-stats query; the team parameter is
// mandatory.
func (h *Handler) TeamStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	team := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("team")))
	if team == "" || team == "*" {
		writeError(w, r, nethttp.StatusBadRequest, "missing team code", h.logger)
		return
	}

	date, ok := h.resolveDate(w, r)
	if !ok {
		return
	}

	resp, err := h.svc.TeamStats(r.Context(), team, date)
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, "upstream feed unavailable", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// resolveDate turns the optional date parameter into a compact date: empty
// stays empty (meaning today), day words resolve on the reference clock and
// anything else must be a valid YYYY-MM-DD. On bad input it writes a 400 and
// reports !ok.
func (h *Handler) resolveDate(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("date")))
	if raw == "" {
		return "", true
	}
	if resolved, ok := timeutil.ResolveDateWord(raw, h.now); ok {
		return resolved, true
	}
	resolved, err := timeutil.CheckDateInput(raw)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return "", false
	}
	return resolved, true
}
