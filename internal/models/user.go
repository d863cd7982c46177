package models

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors the identity provider's account. The ID is the provider's
// own identifier, never store-generated; rows are created on first sync or
// first reference and are never hard-deleted.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	Name      string    `gorm:"size:255" json:"name,omitempty"`
	AvatarURL string    `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
