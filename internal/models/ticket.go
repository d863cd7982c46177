package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TicketStatus is the processing lifecycle of an uploaded receipt.
type TicketStatus string

const (
	TicketPending   TicketStatus = "PENDING"
	TicketProcessed TicketStatus = "PROCESSED"
	TicketFailed    TicketStatus = "FAILED"
)

// ParseTicketStatus validates an incoming status tag.
func ParseTicketStatus(s string) (TicketStatus, error) {
	switch TicketStatus(s) {
	case TicketPending, TicketProcessed, TicketFailed:
		return TicketStatus(s), nil
	}
	return "", fmt.Errorf("unknown ticket status %q", s)
}

// Ticket is a user-uploaded receipt. It is created PENDING with only the
// image URL; the amount fields are filled in by an external OCR step
// through a single bulk update that also sets the final status.
type Ticket struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	RestaurantID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	ImageURL       string       `gorm:"type:text;not null" json:"image_url"`
	Status         TicketStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	TotalAmount    *float64     `json:"total_amount,omitempty"`
	PeopleCount    *int         `json:"people_count,omitempty"`
	PricePerPerson *float64     `json:"price_per_person,omitempty"`
	VisitedAt      *time.Time   `json:"visited_at,omitempty"`
	CreatedAt      time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}
