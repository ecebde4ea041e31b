package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all itinerary API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ItineraryHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to
// the versioned API group only. The health check stays unthrottled.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *ItineraryHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	itineraries := api.Group("/itineraries")
	itineraries.POST("/search", h.SearchItineraries)
	itineraries.GET("/seed", h.SeedItineraries)
	itineraries.POST("/price", h.PriceItinerary)
	itineraries.POST("/generate", h.GenerateItinerary)

	users := api.Group("/users/:userID")
	users.GET("/itineraries", h.ListUserItineraries)
	users.POST("/itineraries", h.PublishItinerary)
	users.DELETE("/itineraries/:id", h.DeleteUserItinerary)
}
