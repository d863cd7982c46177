package handlers

import (
	"errors"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tapaspot/tapaspot-backend/internal/services"
)

const defaultRadiusKm = 5

type RestaurantHandler struct {
	restaurantService *services.RestaurantService
}

func NewRestaurantHandler(restaurantService *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// List handles GET /restaurants?lat&lng&radius - restaurants within the
// radius (default 5 km) of the given point.
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	lat, err := parseCoordinate(c.Query("lat"), -90, 90)
	if err != nil {
		return badRequest(c, "lat must be a number between -90 and 90")
	}
	lng, err := parseCoordinate(c.Query("lng"), -180, 180)
	if err != nil {
		return badRequest(c, "lng must be a number between -180 and 180")
	}

	radius := float64(defaultRadiusKm)
	if raw := c.Query("radius"); raw != "" {
		radius, err = parseCoordinate(raw, 0, math.MaxFloat64)
		if err != nil {
			return badRequest(c, "radius must be a non-negative number")
		}
	}

	restaurants, err := h.restaurantService.FindWithinRadius(lat, lng, radius)
	if err != nil {
		return internalError(c, "Failed to fetch restaurants", err)
	}
	return c.JSON(restaurants)
}

// Get handles GET /restaurants/:id - the restaurant with all its videos,
// approved or not.
func (h *RestaurantHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid restaurant id")
	}

	restaurant, err := h.restaurantService.FindByID(id)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		return notFound(c, "Restaurant not found")
	}
	if err != nil {
		return internalError(c, "Failed to fetch restaurant", err)
	}
	return c.JSON(restaurant)
}

// parseCoordinate parses a required numeric query parameter, rejecting
// NaN and infinities. strconv accepts "NaN" as a valid float, and a NaN
// origin would silently filter out every restaurant.
func parseCoordinate(raw string, min, max float64) (float64, error) {
	if raw == "" {
		return 0, errors.New("missing value")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < min || v > max {
		return 0, errors.New("value out of range")
	}
	return v, nil
}
