package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is immutable after creation in the current scope: there is no
// update endpoint, only seeding and reads.
type Restaurant struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Address       string    `gorm:"size:500;not null" json:"address"`
	Latitude      float64   `gorm:"not null" json:"latitude"`
	Longitude     float64   `gorm:"not null" json:"longitude"`
	GooglePlaceID *string   `gorm:"size:255;uniqueIndex" json:"google_place_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	Videos []Video `gorm:"foreignKey:RestaurantID" json:"videos,omitempty"`
}
