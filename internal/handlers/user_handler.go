package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

// UserHandler exposes the profile-mutation endpoints. Each one
// targets a user by the :id path parameter and replaces exactly one
// field of the document.
type UserHandler struct {
	profiles        *services.ProfileService
	maxAvatarSizeMB int64
}

func NewUserHandler(profiles *services.ProfileService, maxAvatarSizeMB int64) *UserHandler {
	return &UserHandler{profiles: profiles, maxAvatarSizeMB: maxAvatarSizeMB}
}

func (h *UserHandler) UpdateSkills(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Skills []string `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Invalid request body")
		return
	}

	skills, err := h.profiles.UpdateSkills(r.Context(), chi.URLParam(r, "id"), req.Skills)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "Update failed", "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to update skills")
		return
	}

	writeJSON(w, http.StatusOK, models.SkillsResponse{
		Message: "Skills updated successfully",
		Skills:  skills,
	})
}

func (h *UserHandler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Experience []models.Experience `json:"experience"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Experience must be an array")
		return
	}

	experience, err := h.profiles.UpdateExperience(r.Context(), chi.URLParam(r, "id"), req.Experience)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExperienceFields):
			writeError(w, http.StatusBadRequest, "Bad request", "Position and company are required for each experience")
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "Update failed", "User not found")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to update experience")
		}
		return
	}

	writeJSON(w, http.StatusOK, models.ExperienceResponse{
		Message:    "Experience updated successfully",
		Experience: experience,
	})
}

func (h *UserHandler) UpdateProjects(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Projects []models.Project `json:"projects"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Invalid request body")
		return
	}

	projects, err := h.profiles.UpdateProjects(r.Context(), chi.URLParam(r, "id"), req.Projects)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "Update failed", "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to update projects")
		return
	}

	writeJSON(w, http.StatusOK, models.ProjectsResponse{
		Message:  "Projects updated successfully",
		Projects: projects,
	})
}

func (h *UserHandler) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Education []models.Education `json:"education"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Invalid request body")
		return
	}

	education, err := h.profiles.UpdateEducation(r.Context(), chi.URLParam(r, "id"), req.Education)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "Update failed", "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to update education")
		return
	}

	writeJSON(w, http.StatusOK, models.EducationResponse{
		Message:   "Education updated successfully",
		Education: education,
	})
}

func (h *UserHandler) UpdateFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FeaturedProjects []models.FeaturedProject `json:"featuredProjects"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Featured projects must be a non-empty array")
		return
	}

	projects, err := h.profiles.UpdateFeaturedProjects(r.Context(), chi.URLParam(r, "id"), req.FeaturedProjects)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFeaturedEmpty):
			writeError(w, http.StatusBadRequest, "Bad request", "Featured projects must be a non-empty array")
		case errors.Is(err, services.ErrFeaturedFields):
			writeError(w, http.StatusBadRequest, "Bad request", "Each project must have a title and description")
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "Update failed", "User not found")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to update featured projects")
		}
		return
	}

	writeJSON(w, http.StatusOK, models.FeaturedProjectsResponse{
		Message:          "Featured projects updated successfully",
		FeaturedProjects: projects,
	})
}

func (h *UserHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Invalid request body")
		return
	}

	description, err := h.profiles.UpdateDescription(r.Context(), chi.URLParam(r, "id"), req.Description)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDescriptionRequired):
			writeError(w, http.StatusBadRequest, "Bad request", "Description is required")
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "Update failed", "User not found")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to update description")
		}
		return
	}

	writeJSON(w, http.StatusOK, models.DescriptionResponse{
		Message:     "Description updated successfully",
		Description: description,
	})
}

func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.maxAvatarSizeMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "File too large or invalid form data")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Avatar file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	avatar, err := h.profiles.UpdateAvatar(r.Context(), chi.URLParam(r, "id"), file, header.Size, contentType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidImageType):
			writeError(w, http.StatusBadRequest, "Invalid file type", "Only JPEG, PNG, and GIF images are allowed")
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "Update failed", "User not found")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to process avatar update")
		}
		return
	}

	writeJSON(w, http.StatusOK, models.AvatarResponse{
		Message: "Avatar updated successfully",
		Avatar:  *avatar,
	})
}

func (h *UserHandler) UpdateOpenToOpportunities(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OpenToOpportunities bool `json:"openToOpportunities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Invalid request body")
		return
	}

	open, err := h.profiles.UpdateOpenToOpportunities(r.Context(), chi.URLParam(r, "id"), req.OpenToOpportunities)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "Update failed", "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to update open to opportunities status")
		return
	}

	writeJSON(w, http.StatusOK, models.OpenToOpportunitiesResponse{
		Message:             "Open to opportunities status updated successfully",
		OpenToOpportunities: open,
	})
}

// GetUserInfo resolves the portfolio owner from configuration, not
// from the request.
func (h *UserHandler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.profiles.GetUserInfo(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOwnerNotConfigured):
			writeError(w, http.StatusBadRequest, "User ID is required", "User ID not found in environment variables")
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "Not found", "User not found")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error", "Failed to retrieve user information")
		}
		return
	}

	writeJSON(w, http.StatusOK, models.UserInfoResponse{
		Message: "User information retrieved successfully",
		User:    *info,
	})
}
