package handler

import (
	"net/http"

	"github.com/acmecorp/admin-api/internal/pkg/logger"
	"github.com/acmecorp/admin-api/internal/service"
	"github.com/go-chi/chi/v5"
)

type StatsHandler struct {
	statsService *service.StatsService
	logger       *logger.Logger
}

func NewStatsHandler(statsService *service.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger.Component("handler/stats"),
	}
}

func (h *StatsHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Summary)
	return r
}

func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Summary(r.Context())
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats, h.logger)
}
