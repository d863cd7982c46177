package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VideoSource identifies where a submitted clip comes from.
type VideoSource string

const (
	SourceTikTok VideoSource = "TIKTOK"
	SourceOther  VideoSource = "OTHER"
)

// ParseVideoSource validates an incoming source tag.
func ParseVideoSource(s string) (VideoSource, error) {
	switch VideoSource(s) {
	case SourceTikTok, SourceOther:
		return VideoSource(s), nil
	}
	return "", fmt.Errorf("unknown video source %q", s)
}

// VideoStatus is the moderation lifecycle of a user-submitted video.
type VideoStatus string

const (
	VideoPending  VideoStatus = "PENDING"
	VideoApproved VideoStatus = "APPROVED"
	VideoRejected VideoStatus = "REJECTED"
)

// Video is a user-submitted clip tied to a restaurant. Submissions start
// PENDING and are invisible on the public by-restaurant listing until
// approved.
type Video struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	RestaurantID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Source        VideoSource `gorm:"size:20;not null" json:"source"`
	TikTokURL     string      `gorm:"type:text" json:"tiktok_url,omitempty"`
	VideoURL      string      `gorm:"type:text" json:"video_url,omitempty"`
	CreatorHandle string      `gorm:"size:255" json:"creator_handle,omitempty"`
	Status        VideoStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
}
