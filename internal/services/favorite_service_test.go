package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapaspot/tapaspot-backend/internal/models"
)

func TestFavoriteAddRemoveLifecycle(t *testing.T) {
	db := testDB(t)
	svc := NewFavoriteService(db)
	user := createUser(t, db)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	_, err := svc.Add(user.ID, restaurant.ID)
	require.NoError(t, err)

	deleted, err := svc.Remove(user.ID, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFavoriteAddDuplicateIsNoOp(t *testing.T) {
	db := testDB(t)
	svc := NewFavoriteService(db)
	user := createUser(t, db)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	first, err := svc.Add(user.ID, restaurant.ID)
	require.NoError(t, err)

	second, err := svc.Add(user.ID, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFavoriteAddCreatesUserOnFirstReference(t *testing.T) {
	db := testDB(t)
	svc := NewFavoriteService(db)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)
	userID := uuid.New()

	_, err := svc.Add(userID, restaurant.ID)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", userID).Error)
}

func TestFavoriteRemoveAbsentIsNoOp(t *testing.T) {
	db := testDB(t)
	svc := NewFavoriteService(db)
	user := createUser(t, db)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	deleted, err := svc.Remove(user.ID, restaurant.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestFavoriteListExpandsRestaurantAndVideos(t *testing.T) {
	db := testDB(t)
	svc := NewFavoriteService(db)
	user := createUser(t, db)
	other := models.User{ID: createUser(t, db).ID}
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	videoSvc := NewVideoService(db, false)
	_, err := videoSvc.Submit(restaurant.ID, models.SourceTikTok, "https://www.tiktok.com/@a/video/1", "", "")
	require.NoError(t, err)

	_, err = svc.Add(user.ID, restaurant.ID)
	require.NoError(t, err)

	got, err := svc.FindByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, restaurant.ID, got[0].Restaurant.ID)
	// Nested videos are unfiltered: the pending one is included.
	assert.Len(t, got[0].Restaurant.Videos, 1)

	// Another user sees nothing.
	empty, err := svc.FindByUser(other.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
