package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// Health writes a health check response. components describes optional
// dependencies (e.g. "generator": "disabled").
func Health(c echo.Context, components map[string]string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:     "ok",
		Components: components,
	})
}

// SearchResults writes a 200 OK response with search results.
func SearchResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}
