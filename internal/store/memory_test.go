package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oviedoj/userbase-be/internal/models"
	"github.com/oviedoj/userbase-be/internal/store"
)

func newUser(id, email string) *models.User {
	return &models.User{
		ID:       id,
		Name:     "Test User",
		Email:    email,
		Password: "$2a$10$fakehashfakehashfakehash",
		Role:     models.RoleUser,
		IsActive: true,
	}
}

func TestMemoryStoreCreate(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	created, err := st.Create(ctx, newUser("u1", "A@X.com"))
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", created.Email, "email is lowercased on write")
	assert.False(t, created.CreatedAt.IsZero(), "store assigns createdAt")
	assert.False(t, created.UpdatedAt.IsZero(), "store assigns updatedAt")
}

func TestMemoryStoreDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	_, err := st.Create(ctx, newUser("u1", "a@x.com"))
	require.NoError(t, err)

	// Same email in different case still collides.
	_, err = st.Create(ctx, newUser("u2", "A@x.COM"))
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)

	users, err := st.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "exactly one create succeeds")
}

func TestMemoryStoreFind(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	_, err := st.Create(ctx, newUser("u1", "a@x.com"))
	require.NoError(t, err)

	byID, err := st.FindByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "a@x.com", byID.Email)

	missing, err := st.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing, "absent id is nil, not an error")

	byEmail, err := st.FindByEmail(ctx, "A@X.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail, "email lookup is case-insensitive")
	assert.Equal(t, "u1", byEmail.ID)
	assert.NotEmpty(t, byEmail.Password, "email lookup includes the password hash")

	unknown, err := st.FindByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestMemoryStoreUpdateByID(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	created, err := st.Create(ctx, newUser("u1", "a@x.com"))
	require.NoError(t, err)

	name := "Renamed"
	updated, err := st.UpdateByID(ctx, "u1", store.UserUpdate{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "a@x.com", updated.Email, "untouched fields survive the merge")
	assert.Equal(t, created.Password, updated.Password)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	missing, err := st.UpdateByID(ctx, "nope", store.UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStoreUpdateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	_, err := st.Create(ctx, newUser("u1", "a@x.com"))
	require.NoError(t, err)
	_, err = st.Create(ctx, newUser("u2", "b@x.com"))
	require.NoError(t, err)

	taken := "A@X.com"
	_, err = st.UpdateByID(ctx, "u2", store.UserUpdate{Email: &taken})
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestMemoryStoreDeleteByID(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	_, err := st.Create(ctx, newUser("u1", "a@x.com"))
	require.NoError(t, err)

	deleted, err := st.DeleteByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, deleted, "delete returns the removed record")
	assert.Equal(t, "a@x.com", deleted.Email)

	again, err := st.DeleteByID(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, again)
}
