package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tapaspot/tapaspot-backend/internal/dto"
	"github.com/tapaspot/tapaspot-backend/internal/identity"
)

const identityKey = "identity"

// Protected gates a route behind bearer-token verification. A missing or
// malformed Authorization header is rejected without calling the
// verifier; otherwise the token is verified on every request (no
// caching) and the resolved identity is stored in locals.
func Protected(verifier identity.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearer(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return unauthorized(c)
		}

		ident, err := verifier.VerifyToken(token)
		if err != nil {
			slog.Error("token verification failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: "Identity provider unavailable",
			})
		}
		if ident == nil {
			return unauthorized(c)
		}

		c.Locals(identityKey, ident)
		return c.Next()
	}
}

// GetIdentity extracts the verified identity placed in locals by Protected.
func GetIdentity(c *fiber.Ctx) (*identity.Identity, error) {
	ident, ok := c.Locals(identityKey).(*identity.Identity)
	if !ok || ident == nil {
		return nil, errors.New("no identity in context")
	}
	return ident, nil
}

func extractBearer(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized: invalid or expired token",
	})
}
