package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tapaspot/tapaspot-backend/internal/dto"
	"github.com/tapaspot/tapaspot-backend/internal/middleware"
	"github.com/tapaspot/tapaspot-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	ident, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.userService.FindByID(ident.ID)
	if errors.Is(err, services.ErrUserNotFound) {
		return notFound(c, "User not found")
	}
	if err != nil {
		return internalError(c, "Failed to fetch user", err)
	}
	return c.JSON(user)
}

// UpdateMe handles PUT /users/me - partial edit of name and avatar.
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	ident, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.Update(ident.ID, req.Name, req.AvatarURL)
	if errors.Is(err, services.ErrUserNotFound) {
		return notFound(c, "User not found")
	}
	if err != nil {
		return internalError(c, "Failed to update user", err)
	}
	return c.JSON(user)
}

// Sync handles POST /users/sync - upserts the profile from the
// identity-provider payload. Public by design: the payload self-describes
// the account.
func (h *UserHandler) Sync(c *fiber.Ctx) error {
	var req dto.SyncUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	user, err := h.userService.Sync(id, req.Email, req.Name, req.AvatarURL)
	if err != nil {
		return internalError(c, "Failed to sync user", err)
	}
	return c.JSON(user)
}
