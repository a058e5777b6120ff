package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/oviedoj/userbase-be/internal/auth"
	"github.com/oviedoj/userbase-be/internal/models"
	"github.com/oviedoj/userbase-be/internal/store"
)

// ErrInvalidCredentials is returned by AuthenticateUser for an unknown email
// and for a wrong password alike, so the two cases are indistinguishable to
// the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Name assigned when a user record is created without one.
const defaultUserName = "User Name"

// UserUpdateInput carries the fields of a partial update. The password, when
// present, is plaintext and gets rehashed before persistence.
type UserUpdateInput struct {
	Name     *string
	Email    *string
	Password *string
}

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(ctx context.Context, name, email, password string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, input UserUpdateInput) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (*models.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (*models.User, error)
}

// UserService provides business logic for user management.
type UserService struct {
	store store.UserStore
}

// NewUserService creates a new UserService.
func NewUserService(st store.UserStore) *UserService {
	return &UserService{store: st}
}

// CreateUser creates a new user, hashing their password before persistence.
// New accounts default to the user role and active status.
func (s *UserService) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = defaultUserName
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
		IsActive: true,
	}
	return s.store.Create(ctx, user)
}

// ListUsers returns all user records.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.FindAll(ctx)
}

// GetUser retrieves a single user by id, nil if absent.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.store.FindByID(ctx, id)
}

// UpdateUser merges the provided fields into the record. A password in the
// input is always rehashed, whether or not its value changed.
func (s *UserService) UpdateUser(ctx context.Context, id string, input UserUpdateInput) (*models.User, error) {
	update := store.UserUpdate{
		Name:  input.Name,
		Email: input.Email,
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash new password: %w", err)
		}
		update.Password = &hash
	}
	return s.store.UpdateByID(ctx, id, update)
}

// DeleteUser removes a user and returns the deleted record, nil if absent.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*models.User, error) {
	return s.store.DeleteByID(ctx, id)
}

// AuthenticateUser verifies a user's credentials. The returned record still
// carries the password hash; the login handler shapes the response without it.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.ComparePassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
