package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tapaspot/tapaspot-backend/internal/middleware"
	"github.com/tapaspot/tapaspot-backend/internal/services"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// List handles GET /favorites - the caller's favorites with nested
// restaurant and videos.
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	ident, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	favorites, err := h.favoriteService.FindByUser(ident.ID)
	if err != nil {
		return internalError(c, "Failed to fetch favorites", err)
	}
	return c.JSON(favorites)
}

// Add handles POST /favorites/:restaurantId. Adding an already-favorited
// restaurant succeeds and returns the existing row.
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	ident, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	restaurantID, err := uuid.Parse(c.Params("restaurantId"))
	if err != nil {
		return badRequest(c, "Invalid restaurant id")
	}

	favorite, err := h.favoriteService.Add(ident.ID, restaurantID)
	if err != nil {
		return internalError(c, "Failed to add favorite", err)
	}
	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// Remove handles DELETE /favorites/:restaurantId. Removing an absent
// favorite is a no-op success.
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	ident, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	restaurantID, err := uuid.Parse(c.Params("restaurantId"))
	if err != nil {
		return badRequest(c, "Invalid restaurant id")
	}

	deleted, err := h.favoriteService.Remove(ident.ID, restaurantID)
	if err != nil {
		return internalError(c, "Failed to remove favorite", err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
