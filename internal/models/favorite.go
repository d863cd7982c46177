package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite bookmarks a restaurant for a user. The composite unique index
// makes concurrent duplicate adds a constraint violation instead of a
// second row; the service layer treats that violation as a no-op.
type Favorite struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_restaurant" json:"user_id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_restaurant" json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`

	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}
