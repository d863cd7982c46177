package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapaspot/tapaspot-backend/internal/models"
	"github.com/tapaspot/tapaspot-backend/internal/workflow"
)

func TestSubmitStartsPending(t *testing.T) {
	db := testDB(t)
	svc := NewVideoService(db, false)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	video, err := svc.Submit(restaurant.ID, models.SourceTikTok, "https://www.tiktok.com/@a/video/1", "", "@a")
	require.NoError(t, err)
	assert.Equal(t, models.VideoPending, video.Status)

	// A fresh submission must not be publicly visible.
	visible, err := svc.FindApprovedByRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestFindApprovedByRestaurantFiltersStatus(t *testing.T) {
	db := testDB(t)
	svc := NewVideoService(db, false)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	pending, err := svc.Submit(restaurant.ID, models.SourceTikTok, "https://www.tiktok.com/@a/video/1", "", "")
	require.NoError(t, err)
	approved, err := svc.Submit(restaurant.ID, models.SourceTikTok, "https://www.tiktok.com/@b/video/2", "", "")
	require.NoError(t, err)
	rejected, err := svc.Submit(restaurant.ID, models.SourceOther, "", "https://example.com/v.mp4", "")
	require.NoError(t, err)

	_, err = svc.Approve(approved.ID)
	require.NoError(t, err)
	_, err = svc.Reject(rejected.ID)
	require.NoError(t, err)

	visible, err := svc.FindApprovedByRestaurant(restaurant.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, approved.ID, visible[0].ID)
	assert.NotEqual(t, pending.ID, visible[0].ID)
}

func TestModerationLastWriteWins(t *testing.T) {
	db := testDB(t)
	svc := NewVideoService(db, false)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	video, err := svc.Submit(restaurant.ID, models.SourceTikTok, "https://www.tiktok.com/@a/video/1", "", "")
	require.NoError(t, err)

	_, err = svc.Approve(video.ID)
	require.NoError(t, err)

	// Default mode: a second action on a terminal video silently flips it.
	_, err = svc.Reject(video.ID)
	require.NoError(t, err)

	var stored models.Video
	require.NoError(t, db.First(&stored, "id = ?", video.ID).Error)
	assert.Equal(t, models.VideoRejected, stored.Status)
}

func TestModerationStrictBlocksTerminalFlip(t *testing.T) {
	db := testDB(t)
	svc := NewVideoService(db, true)
	restaurant := createRestaurant(t, db, "Eslava", 37.38756, -5.99982)

	video, err := svc.Submit(restaurant.ID, models.SourceTikTok, "https://www.tiktok.com/@a/video/1", "", "")
	require.NoError(t, err)

	_, err = svc.Approve(video.ID)
	require.NoError(t, err)

	_, err = svc.Reject(video.ID)
	assert.ErrorIs(t, err, workflow.ErrIllegalTransition)

	var stored models.Video
	require.NoError(t, db.First(&stored, "id = ?", video.ID).Error)
	assert.Equal(t, models.VideoApproved, stored.Status)
}

func TestModerateUnknownVideo(t *testing.T) {
	db := testDB(t)
	svc := NewVideoService(db, false)

	_, err := svc.Approve(uuid.New())
	assert.ErrorIs(t, err, ErrVideoNotFound)
}
