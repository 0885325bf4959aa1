package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Get(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrStatsNotFound) {
			writeError(w, http.StatusNotFound, "Not found", "Stats not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to retrieve stats")
		return
	}

	writeJSON(w, http.StatusOK, models.StatsResponse{
		Message: "Stats retrieved successfully",
		Stats:   stats,
	})
}

func (h *StatsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	req := models.NewStatsInput()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Invalid request body")
		return
	}

	stats, err := h.stats.Upsert(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to create/update stats")
		return
	}

	writeJSON(w, http.StatusOK, models.StatsResponse{
		Message: "Stats created/updated successfully",
		Stats:   stats,
	})
}
