package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/oviedoj/userbase-be/internal/api/envelope"
	"github.com/oviedoj/userbase-be/internal/auth"
	"github.com/oviedoj/userbase-be/internal/services"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenService
	log     zerolog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, tokens *auth.TokenService, log zerolog.Logger) *UserHandler {
	return &UserHandler{service: service, tokens: tokens, log: log}
}

// loginUser is the user shape returned on successful login. It never carries
// the password hash, unlike the other read paths.
type loginUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
	Token    string `json:"token"`
}

// Create handles new user registration.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateUserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		envelope.WriteError(w, http.StatusBadRequest, "Validation error", map[string][]string{
			"body": {"Invalid request body"},
		})
		return
	}
	if err := payload.Validate(); err != nil {
		envelope.WriteError(w, http.StatusBadRequest, "Validation error", fieldErrors(err))
		return
	}

	user, err := h.service.CreateUser(r.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		// Duplicate emails land here too and surface as the generic 500.
		h.log.Error().Err(err).Str("email", payload.Email).Msg("Error creating user")
		envelope.WriteGenericError(w)
		return
	}

	envelope.WriteSuccess(w, http.StatusCreated, "User created successfully", user)
}

// GetAll handles fetching all users. The route gates on the admin role.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Error fetching users")
		envelope.WriteGenericError(w)
		return
	}
	envelope.WriteSuccess(w, http.StatusOK, "Users fetched successfully", users)
}

// Get handles fetching a user by their ID.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		envelope.WriteError(w, http.StatusBadRequest, "Validation error", map[string][]string{
			"id": {"ID is required"},
		})
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", id).Msg("Error fetching user by ID")
		envelope.WriteGenericError(w)
		return
	}
	if user == nil {
		envelope.WriteError(w, http.StatusNotFound, "User not found", map[string]string{
			"userId": "User not found",
		})
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, "User fetched successfully", user)
}

// Update handles merging a partial update into a user record.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		envelope.WriteError(w, http.StatusBadRequest, "Validation error", map[string][]string{
			"id": {"ID is required"},
		})
		return
	}

	var payload UpdateUserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		envelope.WriteError(w, http.StatusBadRequest, "Validation error", map[string][]string{
			"body": {"Invalid request body"},
		})
		return
	}
	if err := payload.Validate(); err != nil {
		envelope.WriteError(w, http.StatusBadRequest, "Validation error", fieldErrors(err))
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, services.UserUpdateInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		h.log.Error().Err(err).Str("user_id", id).Msg("Error updating user")
		envelope.WriteGenericError(w)
		return
	}
	if user == nil {
		envelope.WriteError(w, http.StatusNotFound, "User not found", map[string]string{
			"userId": "User not found",
		})
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, "User updated successfully", user)
}

// Delete handles the permanent deletion of a user account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		envelope.WriteError(w, http.StatusBadRequest, "Validation error", map[string][]string{
			"id": {"ID is required"},
		})
		return
	}

	user, err := h.service.DeleteUser(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", id).Msg("Error deleting user")
		envelope.WriteGenericError(w)
		return
	}
	if user == nil {
		envelope.WriteError(w, http.StatusNotFound, "User not found", nil)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, "User deleted successfully", user)
}

// Login handles user authentication and token issuance. Unknown email and
// wrong password answer identically so the message leaks nothing.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		envelope.WriteError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	user, err := h.service.AuthenticateUser(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			envelope.WriteError(w, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		h.log.Error().Err(err).Str("email", payload.Email).Msg("Error in login handler")
		envelope.WriteGenericError(w)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("Error generating token")
		envelope.WriteGenericError(w)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, "Login successful", map[string]any{
		"user": loginUser{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     user.Role,
			IsActive: user.IsActive,
			Token:    token,
		},
	})
}

// Profile echoes the verified token claims of the authenticated caller.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		// Unreachable behind the auth gate; kept as the documented fallback.
		envelope.WriteError(w, http.StatusNotFound, "User not found", nil)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, "Profile fetched successfully", map[string]any{
		"user": claims,
	})
}
