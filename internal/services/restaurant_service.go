package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tapaspot/tapaspot-backend/internal/geo"
	"github.com/tapaspot/tapaspot-backend/internal/models"
	"gorm.io/gorm"
)

type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

// FindWithinRadius loads every restaurant and keeps those within radiusKm
// of the origin. Full scan, no spatial index, no distance ordering; the
// result order is whatever the store iterates.
func (s *RestaurantService) FindWithinRadius(lat, lng, radiusKm float64) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to load restaurants: %w", err)
	}

	result := make([]models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if geo.DistanceKm(lat, lng, r.Latitude, r.Longitude) <= radiusKm {
			result = append(result, r)
		}
	}
	return result, nil
}

// FindByID returns the restaurant with all its videos, approved or not.
// The public by-restaurant video listing filters by status; this detail
// view deliberately does not.
func (s *RestaurantService) FindByID(id uuid.UUID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.Preload("Videos").First(&restaurant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}
	return &restaurant, nil
}
