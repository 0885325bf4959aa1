package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/devfolio/backend/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, label, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: label, Message: message})
}
