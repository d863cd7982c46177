package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tapaspot/tapaspot-backend/internal/handlers"
	"github.com/tapaspot/tapaspot-backend/internal/identity"
	"github.com/tapaspot/tapaspot-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	verifier identity.Verifier,
	healthHandler *handlers.HealthHandler,
	restaurantHandler *handlers.RestaurantHandler,
	videoHandler *handlers.VideoHandler,
	favoriteHandler *handlers.FavoriteHandler,
	ticketHandler *handlers.TicketHandler,
	userHandler *handlers.UserHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	protected := middleware.Protected(verifier)

	api.Get("/health", healthHandler.Check)

	// Restaurants — public
	api.Get("/restaurants", restaurantHandler.List)
	api.Get("/restaurants/:id", restaurantHandler.Get)

	// Videos — public listing, authenticated submission and moderation
	api.Get("/videos/restaurant/:id", videoHandler.ListByRestaurant)
	api.Post("/videos", protected, videoHandler.Create)
	api.Patch("/videos/:id/approve", protected, videoHandler.Approve)
	api.Patch("/videos/:id/reject", protected, videoHandler.Reject)

	// Favorites — authenticated
	api.Get("/favorites", protected, favoriteHandler.List)
	api.Post("/favorites/:restaurantId", protected, favoriteHandler.Add)
	api.Delete("/favorites/:restaurantId", protected, favoriteHandler.Remove)

	// Tickets — authenticated
	api.Get("/tickets", protected, ticketHandler.List)
	api.Post("/tickets", protected, ticketHandler.Create)
	api.Patch("/tickets/:id/processing", protected, ticketHandler.Process)

	// Users — /sync is public, the payload self-describes the account
	api.Get("/users/me", protected, userHandler.Me)
	api.Put("/users/me", protected, userHandler.UpdateMe)
	api.Post("/users/sync", userHandler.Sync)
}
