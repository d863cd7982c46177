package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tapaspot/tapaspot-backend/internal/models"
	"gorm.io/gorm"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// FindByUser returns the user's favorites with each restaurant and its
// videos expanded. The nested videos are unfiltered by status, same as
// the restaurant detail view.
func (s *FavoriteService) FindByUser(userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.
		Where("user_id = ?", userID).
		Preload("Restaurant").
		Preload("Restaurant.Videos").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return favorites, nil
}

// Add bookmarks a restaurant. The (user, restaurant) pair is unique at
// the schema level; a duplicate insert is treated as success and the
// existing row is returned.
func (s *FavoriteService) Add(userID, restaurantID uuid.UUID) (*models.Favorite, error) {
	if err := ensureUser(s.db, userID); err != nil {
		return nil, err
	}

	favorite := models.Favorite{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurantID,
	}
	err := s.db.Create(&favorite).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var existing models.Favorite
		if err := s.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to load existing favorite: %w", err)
		}
		return &existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	return &favorite, nil
}

// Remove deletes every row matching the pair. Removing a favorite that
// was never added affects zero rows and is still a success.
func (s *FavoriteService) Remove(userID, restaurantID uuid.UUID) (int64, error) {
	result := s.db.
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	return result.RowsAffected, nil
}
