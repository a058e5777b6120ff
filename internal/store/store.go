// Package store provides persistence for user records. All reads and writes
// go through the UserStore interface; absent records are reported as a nil
// user with a nil error so callers can map them to 404 without sentinel
// error plumbing.
package store

import (
	"context"
	"errors"

	"github.com/oviedoj/userbase-be/internal/models"
)

// ErrDuplicateEmail is returned when a write would violate the unique index
// on the email field.
var ErrDuplicateEmail = errors.New("email already in use")

// UserUpdate carries the fields of a partial update. Nil fields are left
// untouched; the password, when present, must already be hashed.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// UserStore defines the persistence operations for user records.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateByID(ctx context.Context, id string, update UserUpdate) (*models.User, error)
	DeleteByID(ctx context.Context, id string) (*models.User, error)
}
