package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Invalid request body")
		return
	}

	resp, err := h.auth.SignUp(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			writeError(w, http.StatusBadRequest, "Email already exists", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error", "")
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Invalid request body")
		return
	}

	resp, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusUnauthorized, "Authentication failed", "User not found")
		case errors.Is(err, services.ErrIncorrectPassword):
			writeError(w, http.StatusUnauthorized, "Authentication failed", "Incorrect password")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to process request")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
