package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devfolio/backend/internal/models"
)

var (
	ErrExperienceFields    = errors.New("position and company are required for each experience")
	ErrFeaturedEmpty       = errors.New("featured projects must be a non-empty array")
	ErrFeaturedFields      = errors.New("each project must have a title and description")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidImageType    = errors.New("only JPEG, PNG and GIF images are allowed")
	ErrOwnerNotConfigured  = errors.New("portfolio user id is not configured")
)

var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// ProfileService applies partial updates to the portfolio owner's
// sub-documents. Every operation replaces exactly one top-level
// field, last write wins; validation is per-field and shallow since
// this is a single-tenant site.
type ProfileService struct {
	users   UserStore
	avatars AvatarStorage
	ownerID string
	logger  *zap.Logger
}

// NewProfileService builds a ProfileService. ownerID is the
// process-wide identity GetUserInfo resolves, injected from
// configuration rather than read from requests.
func NewProfileService(users UserStore, avatars AvatarStorage, ownerID string, logger *zap.Logger) *ProfileService {
	return &ProfileService{users: users, avatars: avatars, ownerID: ownerID, logger: logger}
}

func (s *ProfileService) UpdateSkills(ctx context.Context, id string, skills []string) ([]string, error) {
	user, err := s.users.SetField(ctx, id, "skills", skills)
	if err != nil {
		return nil, err
	}
	return user.Skills, nil
}

// UpdateExperience validates that every entry names a position and a
// company, then persists the list sorted newest-first.
func (s *ProfileService) UpdateExperience(ctx context.Context, id string, experience []models.Experience) ([]models.Experience, error) {
	for _, exp := range experience {
		if exp.Position == "" || exp.Company == "" {
			return nil, ErrExperienceFields
		}
	}
	models.SortExperienceDesc(experience)

	user, err := s.users.SetField(ctx, id, "experience", experience)
	if err != nil {
		return nil, err
	}
	return user.Experience, nil
}

func (s *ProfileService) UpdateProjects(ctx context.Context, id string, projects []models.Project) ([]models.Project, error) {
	user, err := s.users.SetField(ctx, id, "projects", projects)
	if err != nil {
		return nil, err
	}
	return user.Projects, nil
}

func (s *ProfileService) UpdateEducation(ctx context.Context, id string, education []models.Education) ([]models.Education, error) {
	user, err := s.users.SetField(ctx, id, "education", education)
	if err != nil {
		return nil, err
	}
	return user.Education, nil
}

// UpdateFeaturedProjects rejects an empty list and any entry missing
// a title or description before the user is even looked up. The list
// is replaced in one write, so a rejection never leaves a partial
// state behind.
func (s *ProfileService) UpdateFeaturedProjects(ctx context.Context, id string, projects []models.FeaturedProject) ([]models.FeaturedProject, error) {
	if len(projects) == 0 {
		return nil, ErrFeaturedEmpty
	}
	for _, p := range projects {
		if p.Title == "" || p.Description == "" {
			return nil, ErrFeaturedFields
		}
	}

	user, err := s.users.SetField(ctx, id, "featuredProjects", projects)
	if err != nil {
		return nil, err
	}
	return user.FeaturedProjects, nil
}

func (s *ProfileService) UpdateDescription(ctx context.Context, id, description string) (string, error) {
	if description == "" {
		return "", ErrDescriptionRequired
	}
	user, err := s.users.SetField(ctx, id, "description", description)
	if err != nil {
		return "", err
	}
	return user.Description, nil
}

// UpdateAvatar uploads a validated image to object storage and points
// the user's avatar at the resulting URL. The MIME check happens
// before any upload attempt.
func (s *ProfileService) UpdateAvatar(ctx context.Context, id string, file io.Reader, size int64, contentType string) (*models.Avatar, error) {
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return nil, ErrInvalidImageType
	}

	key := "avatars/" + uuid.New().String() + ext
	if err := s.avatars.Put(ctx, key, file, size, contentType); err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	avatar := models.Avatar{PublicID: key, URL: s.avatars.URL(key)}
	user, err := s.users.SetField(ctx, id, "avatar", avatar)
	if err != nil {
		return nil, err
	}

	s.logger.Info("avatar updated", zap.String("user_id", id), zap.String("key", key))
	return &user.Avatar, nil
}

func (s *ProfileService) UpdateOpenToOpportunities(ctx context.Context, id string, open bool) (bool, error) {
	user, err := s.users.SetField(ctx, id, "openToOpportunities", open)
	if err != nil {
		return false, err
	}
	return user.OpenToOpportunities, nil
}

// GetUserInfo loads the configured owner's public profile. The
// experience list is re-sorted at read time with the same ordering
// the update path uses, so both paths return identical order.
func (s *ProfileService) GetUserInfo(ctx context.Context) (*models.UserInfo, error) {
	if s.ownerID == "" {
		return nil, ErrOwnerNotConfigured
	}

	user, err := s.users.FindByID(ctx, s.ownerID)
	if err != nil {
		return nil, err
	}

	models.SortExperienceDesc(user.Experience)
	info := user.InfoView()
	return &info, nil
}
