package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapaspot/tapaspot-backend/internal/models"
)

func TestSyncCreatesThenConverges(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	id := uuid.New()

	_, err := svc.Sync(id, "ana@example.com", "Ana", "https://cdn.example.com/a.png")
	require.NoError(t, err)

	// Repeated sync with the same payload changes nothing.
	for i := 0; i < 3; i++ {
		_, err = svc.Sync(id, "ana@example.com", "Ana", "https://cdn.example.com/a.png")
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := svc.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", stored.Email)
	assert.Equal(t, "Ana", stored.Name)

	// A new payload wins over the stored one.
	_, err = svc.Sync(id, "ana@example.com", "Ana María", "https://cdn.example.com/b.png")
	require.NoError(t, err)
	stored, err = svc.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", stored.Name)
	assert.Equal(t, "https://cdn.example.com/b.png", stored.AvatarURL)
}

func TestUpdatePartialFields(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	user := createUser(t, db)

	name := "New Name"
	got, err := svc.Update(user.ID, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)

	stored, err := svc.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", stored.Name)
	// Untouched fields survive a partial update.
	assert.Equal(t, user.Email, stored.Email)
}

func TestUpdateMissingUser(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	name := "Ghost"
	_, err := svc.Update(uuid.New(), &name, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindByIDNotFoundUser(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	_, err := svc.FindByID(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
