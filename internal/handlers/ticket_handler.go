package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tapaspot/tapaspot-backend/internal/dto"
	"github.com/tapaspot/tapaspot-backend/internal/middleware"
	"github.com/tapaspot/tapaspot-backend/internal/models"
	"github.com/tapaspot/tapaspot-backend/internal/services"
	"github.com/tapaspot/tapaspot-backend/internal/workflow"
)

type TicketHandler struct {
	ticketService *services.TicketService
}

func NewTicketHandler(ticketService *services.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// List handles GET /tickets - the caller's tickets, newest first.
func (h *TicketHandler) List(c *fiber.Ctx) error {
	ident, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	tickets, err := h.ticketService.FindByUser(ident.ID)
	if err != nil {
		return internalError(c, "Failed to fetch tickets", err)
	}
	return c.JSON(tickets)
}

// Create handles POST /tickets - records a PENDING receipt.
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	ident, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return badRequest(c, "Invalid restaurant id")
	}
	if req.ImageURL == "" {
		return badRequest(c, "imageUrl is required")
	}

	ticket, err := h.ticketService.Create(ident.ID, restaurantID, req.ImageURL)
	if err != nil {
		return internalError(c, "Failed to create ticket", err)
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// Process handles PATCH /tickets/:id/processing - the bulk update sent by
// the external OCR step once the receipt has been read.
func (h *TicketHandler) Process(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid ticket id")
	}

	var req dto.ProcessTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	status, err := models.ParseTicketStatus(req.Status)
	if err != nil {
		return badRequest(c, "status must be PENDING, PROCESSED or FAILED")
	}

	update := services.ProcessingUpdate{
		Status:         status,
		TotalAmount:    req.TotalAmount,
		PeopleCount:    req.PeopleCount,
		PricePerPerson: req.PricePerPerson,
	}
	if req.VisitedAt != nil {
		visitedAt, err := time.Parse(time.RFC3339, *req.VisitedAt)
		if err != nil {
			return badRequest(c, "visitedAt must be an RFC3339 timestamp")
		}
		update.VisitedAt = &visitedAt
	}

	ticket, err := h.ticketService.UpdateAfterProcessing(id, update)
	if errors.Is(err, services.ErrTicketNotFound) {
		return notFound(c, "Ticket not found")
	}
	if errors.Is(err, workflow.ErrIllegalTransition) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	if err != nil {
		return internalError(c, "Failed to update ticket", err)
	}
	return c.JSON(ticket)
}
