package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tapaspot/tapaspot-backend/internal/models"
	"github.com/tapaspot/tapaspot-backend/internal/workflow"
	"gorm.io/gorm"
)

type TicketService struct {
	db     *gorm.DB
	strict bool
}

func NewTicketService(db *gorm.DB, strictTransitions bool) *TicketService {
	return &TicketService{db: db, strict: strictTransitions}
}

// Create records an uploaded receipt as PENDING. The amount fields stay
// empty until the external processing step reports back.
func (s *TicketService) Create(userID, restaurantID uuid.UUID, imageURL string) (*models.Ticket, error) {
	if err := ensureUser(s.db, userID); err != nil {
		return nil, err
	}

	ticket := models.Ticket{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurantID,
		ImageURL:     imageURL,
		Status:       models.TicketPending,
	}
	if err := s.db.Create(&ticket).Error; err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return &ticket, nil
}

// FindByUser returns the user's tickets with their restaurants, newest
// first. Creation-time descending is the one ordering guarantee in the
// system.
func (s *TicketService) FindByUser(userID uuid.UUID) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := s.db.
		Where("user_id = ?", userID).
		Preload("Restaurant").
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}
	return tickets, nil
}

// ProcessingUpdate is the field set the external OCR step reports back.
type ProcessingUpdate struct {
	Status         models.TicketStatus
	TotalAmount    *float64
	PeopleCount    *int
	PricePerPerson *float64
	VisitedAt      *time.Time
}

// UpdateAfterProcessing applies the OCR results and the final status in
// one bulk update.
func (s *TicketService) UpdateAfterProcessing(id uuid.UUID, update ProcessingUpdate) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.db.First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}

	if err := workflow.TicketTransition(ticket.Status, update.Status, s.strict); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"status": update.Status}
	if update.TotalAmount != nil {
		fields["total_amount"] = *update.TotalAmount
	}
	if update.PeopleCount != nil {
		fields["people_count"] = *update.PeopleCount
	}
	if update.PricePerPerson != nil {
		fields["price_per_person"] = *update.PricePerPerson
	}
	if update.VisitedAt != nil {
		fields["visited_at"] = *update.VisitedAt
	}

	if err := s.db.Model(&ticket).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	return &ticket, nil
}
