package handlers

import (
	"errors"
	"net/http"

	"github.com/devfolio/backend/internal/services"
)

// GithubHandler proxies the contributions feed for the configured
// username straight through to the client.
type GithubHandler struct {
	contributions *services.ContributionsClient
}

func NewGithubHandler(contributions *services.ContributionsClient) *GithubHandler {
	return &GithubHandler{contributions: contributions}
}

func (h *GithubHandler) Contributions(w http.ResponseWriter, r *http.Request) {
	raw, err := h.contributions.Contributions(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoGithubUser) {
			writeError(w, http.StatusBadRequest, "Username is required", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch contributions", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}
