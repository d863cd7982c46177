package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tapaspot/tapaspot-backend/internal/models"
	"github.com/tapaspot/tapaspot-backend/internal/workflow"
	"gorm.io/gorm"
)

type VideoService struct {
	db     *gorm.DB
	strict bool
}

func NewVideoService(db *gorm.DB, strictTransitions bool) *VideoService {
	return &VideoService{db: db, strict: strictTransitions}
}

// Submit creates a PENDING video. Any authenticated user may submit for
// any restaurant; whether the source-specific URL field is actually set
// is not checked here.
func (s *VideoService) Submit(restaurantID uuid.UUID, source models.VideoSource, tiktokURL, videoURL, creatorHandle string) (*models.Video, error) {
	video := models.Video{
		ID:            uuid.New(),
		RestaurantID:  restaurantID,
		Source:        source,
		TikTokURL:     tiktokURL,
		VideoURL:      videoURL,
		CreatorHandle: creatorHandle,
		Status:        models.VideoPending,
	}
	if err := s.db.Create(&video).Error; err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return &video, nil
}

// FindApprovedByRestaurant is the public read path: only APPROVED videos
// are ever returned here.
func (s *VideoService) FindApprovedByRestaurant(restaurantID uuid.UUID) ([]models.Video, error) {
	var videos []models.Video
	err := s.db.
		Where("restaurant_id = ? AND status = ?", restaurantID, models.VideoApproved).
		Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load videos: %w", err)
	}
	return videos, nil
}

func (s *VideoService) Approve(id uuid.UUID) (*models.Video, error) {
	return s.setStatus(id, models.VideoApproved)
}

func (s *VideoService) Reject(id uuid.UUID) (*models.Video, error) {
	return s.setStatus(id, models.VideoRejected)
}

func (s *VideoService) setStatus(id uuid.UUID, to models.VideoStatus) (*models.Video, error) {
	var video models.Video
	err := s.db.First(&video, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVideoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load video: %w", err)
	}

	if err := workflow.VideoTransition(video.Status, to, s.strict); err != nil {
		return nil, err
	}

	if err := s.db.Model(&video).Update("status", to).Error; err != nil {
		return nil, fmt.Errorf("failed to update video status: %w", err)
	}
	return &video, nil
}
