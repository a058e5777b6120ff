package handlers

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// CreateUserPayload defines the structure for registration requests.
type CreateUserPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the registration payload.
func (p CreateUserPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name,
			validation.Required.Error("Name is required")),
		validation.Field(&p.Email,
			validation.Required.Error("Invalid email format"),
			is.Email.Error("Invalid email format")),
		validation.Field(&p.Password,
			validation.Required.Error("Password must be at least 6 characters long"),
			validation.Length(6, 0).Error("Password must be at least 6 characters long")),
	)
}

// UpdateUserPayload defines the structure for partial update requests.
// Pointer fields distinguish absent fields from present-but-empty ones.
type UpdateUserPayload struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate checks the update payload. Absent fields pass; present fields
// must satisfy the same rules as at registration.
func (p UpdateUserPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email,
			validation.NilOrNotEmpty.Error("Invalid email format"),
			is.Email.Error("Invalid email format")),
		validation.Field(&p.Password,
			validation.NilOrNotEmpty.Error("Password must be at least 6 characters long"),
			validation.Length(6, 0).Error("Password must be at least 6 characters long")),
	)
}

// LoginPayload defines the structure for login requests. Login takes the
// body fields as-is; credential checking is the only gate.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// fieldErrors flattens ozzo's per-field errors into the {field: [messages]}
// shape the API responds with.
func fieldErrors(err error) map[string][]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return map[string][]string{"body": {err.Error()}}
	}
	out := make(map[string][]string, len(verrs))
	for field, ferr := range verrs {
		out[field] = append(out[field], ferr.Error())
	}
	return out
}
