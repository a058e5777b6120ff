package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateUserPayloadValidate(t *testing.T) {
	tests := []struct {
		name       string
		payload    CreateUserPayload
		wantFields []string
	}{
		{
			name:    "Valid payload",
			payload: CreateUserPayload{Name: "A", Email: "a@x.com", Password: "secret1"},
		},
		{
			name:       "Missing name",
			payload:    CreateUserPayload{Email: "a@x.com", Password: "secret1"},
			wantFields: []string{"name"},
		},
		{
			name:       "Bad email",
			payload:    CreateUserPayload{Name: "A", Email: "not-an-email", Password: "secret1"},
			wantFields: []string{"email"},
		},
		{
			name:       "Short password",
			payload:    CreateUserPayload{Name: "A", Email: "a@x.com", Password: "short"},
			wantFields: []string{"password"},
		},
		{
			name:       "Everything wrong",
			payload:    CreateUserPayload{},
			wantFields: []string{"name", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			errs := fieldErrors(err)
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
				assert.NotEmpty(t, errs[field])
			}
		})
	}
}

func TestUpdateUserPayloadValidate(t *testing.T) {
	tests := []struct {
		name       string
		payload    UpdateUserPayload
		wantFields []string
	}{
		{
			name:    "Empty update",
			payload: UpdateUserPayload{},
		},
		{
			name:    "Name only",
			payload: UpdateUserPayload{Name: strPtr("Renamed")},
		},
		{
			name:    "Valid email and password",
			payload: UpdateUserPayload{Email: strPtr("a@x.com"), Password: strPtr("secret1")},
		},
		{
			name:       "Bad email",
			payload:    UpdateUserPayload{Email: strPtr("not-an-email")},
			wantFields: []string{"email"},
		},
		{
			name:       "Short password",
			payload:    UpdateUserPayload{Password: strPtr("short")},
			wantFields: []string{"password"},
		},
		{
			name:       "Present but empty password",
			payload:    UpdateUserPayload{Password: strPtr("")},
			wantFields: []string{"password"},
		},
		{
			name:       "Present but empty email",
			payload:    UpdateUserPayload{Email: strPtr("")},
			wantFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			errs := fieldErrors(err)
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestFieldErrorMessages(t *testing.T) {
	err := CreateUserPayload{Name: "A", Email: "a@x.com", Password: "short"}.Validate()
	require.Error(t, err)

	errs := fieldErrors(err)
	require.Contains(t, errs, "password")
	assert.Equal(t, []string{"Password must be at least 6 characters long"}, errs["password"])
}
