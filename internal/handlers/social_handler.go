package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type SocialHandler struct {
	socials services.SocialStore
}

func NewSocialHandler(socials services.SocialStore) *SocialHandler {
	return &SocialHandler{socials: socials}
}

func (h *SocialHandler) List(w http.ResponseWriter, r *http.Request) {
	links, err := h.socials.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to retrieve social links")
		return
	}

	writeJSON(w, http.StatusOK, models.SocialsResponse{
		Message: "Social links retrieved successfully",
		Socials: links,
	})
}

// Update replaces the whole collection with the submitted list.
func (h *SocialHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Socials []models.SocialLink `json:"socials"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Invalid request body")
		return
	}

	if err := h.socials.ReplaceAll(r.Context(), req.Socials); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to update social links")
		return
	}

	writeJSON(w, http.StatusOK, models.SocialsResponse{
		Message: "Social links updated successfully",
		Socials: req.Socials,
	})
}
