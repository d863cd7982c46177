package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tapaspot/tapaspot-backend/internal/dto"
	"github.com/tapaspot/tapaspot-backend/internal/models"
	"github.com/tapaspot/tapaspot-backend/internal/services"
	"github.com/tapaspot/tapaspot-backend/internal/workflow"
)

type VideoHandler struct {
	videoService *services.VideoService
}

func NewVideoHandler(videoService *services.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// ListByRestaurant handles GET /videos/restaurant/:id - public,
// approved-only.
func (h *VideoHandler) ListByRestaurant(c *fiber.Ctx) error {
	restaurantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid restaurant id")
	}

	videos, err := h.videoService.FindApprovedByRestaurant(restaurantID)
	if err != nil {
		return internalError(c, "Failed to fetch videos", err)
	}
	return c.JSON(videos)
}

// Create handles POST /videos - submits a PENDING video. Any
// authenticated user may submit for any restaurant.
func (h *VideoHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return badRequest(c, "Invalid restaurant id")
	}

	source, err := models.ParseVideoSource(req.Source)
	if err != nil {
		return badRequest(c, "source must be TIKTOK or OTHER")
	}

	video, err := h.videoService.Submit(restaurantID, source, req.TikTokURL, req.VideoURL, req.CreatorHandle)
	if err != nil {
		return internalError(c, "Failed to create video", err)
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

// Approve handles PATCH /videos/:id/approve.
func (h *VideoHandler) Approve(c *fiber.Ctx) error {
	return h.moderate(c, h.videoService.Approve)
}

// Reject handles PATCH /videos/:id/reject.
func (h *VideoHandler) Reject(c *fiber.Ctx) error {
	return h.moderate(c, h.videoService.Reject)
}

func (h *VideoHandler) moderate(c *fiber.Ctx, action func(uuid.UUID) (*models.Video, error)) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid video id")
	}

	video, err := action(id)
	if errors.Is(err, services.ErrVideoNotFound) {
		return notFound(c, "Video not found")
	}
	if errors.Is(err, workflow.ErrIllegalTransition) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	if err != nil {
		return internalError(c, "Failed to update video", err)
	}
	return c.JSON(video)
}
