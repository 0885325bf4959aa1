package services

import (
	"context"
	"errors"

	"github.com/devfolio/backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailExists       = errors.New("email already exists")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// UserStore is the credential store: it owns the user document and
// all its embedded sub-lists. Every profile mutation goes through
// SetField, which replaces exactly one top-level field (last write
// wins) and returns the updated document.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	SetField(ctx context.Context, id, field string, value interface{}) (*models.User, error)
}
