package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tapaspot/tapaspot-backend/internal/dto"
)

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

// internalError defers to the app error handler, which logs the detail
// and returns a generic message to the client.
func internalError(c *fiber.Ctx, msg string, err error) error {
	return fiber.NewError(fiber.StatusInternalServerError, msg+": "+err.Error())
}
