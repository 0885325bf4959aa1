package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/devfolio/backend/internal/models"
)

// AuthService orchestrates sign-up and sign-in: uniqueness check,
// password hashing, persistence and token issuance.
type AuthService struct {
	users  UserStore
	tokens *TokenIssuer
	logger *zap.Logger
}

func NewAuthService(users UserStore, tokens *TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// SignUp creates a new account. The password is hashed before the
// user document is ever persisted; an existing account with the same
// email rejects the attempt without touching the stored record.
func (s *AuthService) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.AuthResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:               req.Email,
		PasswordHash:        hash,
		Name:                req.Name,
		Phone:               req.Phone,
		LinkedinURL:         req.Linkedin,
		GithubURL:           req.GithubURL,
		OpenToOpportunities: true,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", zap.String("user_id", user.ID))
	return &models.AuthResponse{Token: token, User: user.AuthView()}, nil
}

// SignIn verifies credentials and issues a token. An unknown email
// and a wrong password are distinct errors; both map to the same
// status code at the boundary.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrIncorrectPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user.AuthView()}, nil
}
