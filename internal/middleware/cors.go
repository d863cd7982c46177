package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/tapaspot/tapaspot-backend/internal/config"
)

// CORS is wide open with credentials, matching the current development
// posture. Fiber refuses "*" together with credentials, so any-origin is
// expressed by reflecting the request origin.
func CORS(cfg *config.Config) fiber.Handler {
	c := cors.Config{
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
		AllowCredentials: true,
	}
	if cfg.CORSOrigins == "*" {
		c.AllowOriginsFunc = func(origin string) bool { return true }
	} else {
		c.AllowOrigins = cfg.CORSOrigins
	}
	return cors.New(c)
}
