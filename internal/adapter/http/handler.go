// Package http provides the HTTP handler layer for the itinerary search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripweave/itinerary-search/internal/adapter/http/response"
	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/logger"
	"github.com/tripweave/itinerary-search/internal/usecase"
)

// UserIDHeader selects whose published itineraries join a search.
const UserIDHeader = "X-User-ID"

// maxSearchBody caps the search body read; larger bodies are truncated
// and then fail to decode, which means "no filter".
const maxSearchBody = 64 << 10

// ItineraryHandler handles HTTP requests for itinerary endpoints.
type ItineraryHandler struct {
	search  usecase.ItinerarySearchUseCase
	library usecase.ItineraryLibraryUseCase
	drafts  usecase.DraftUseCase
	seed    domain.ItinerarySource

	components map[string]string
}

// NewItineraryHandler creates a handler. seed serves the demo catalog
// endpoint and may be nil.
func NewItineraryHandler(
	search usecase.ItinerarySearchUseCase,
	library usecase.ItineraryLibraryUseCase,
	drafts usecase.DraftUseCase,
	seed domain.ItinerarySource,
) *ItineraryHandler {
	return &ItineraryHandler{
		search:  search,
		library: library,
		drafts:  drafts,
		seed:    seed,

		components: map[string]string{},
	}
}

// WithComponent records a static component status reported by Health,
// such as which store backend is in use.
func (h *ItineraryHandler) WithComponent(name, status string) *ItineraryHandler {
	h.components[name] = status
	return h
}

// SearchItineraries handles POST /api/v1/itineraries/search
//
// @Summary Search itineraries
// @Description Rank seed and published itineraries by relevance to the criteria. Malformed criteria are treated as unset.
// @Tags itineraries
// @Accept json
// @Produce json
// @Param X-User-ID header string false "User whose published itineraries are included"
// @Param userId query string false "Alternative to the X-User-ID header"
// @Param request body SearchItinerariesRequest false "Search criteria"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 503 {object} SwaggerErrorDetail "All sources unavailable"
// @Failure 504 {object} SwaggerErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries/search [post]
func (h *ItineraryHandler) SearchItineraries(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxSearchBody))
	if err != nil {
		body = nil
	}

	req, ok := ParseSearchRequest(body)
	if !ok {
		logger.FromContext(ctx).Debug().Int("body_bytes", len(body)).Msg("Ignoring malformed search criteria")
	}

	criteria := ToDomainCriteria(&req)

	result, err := h.search.Search(ctx, userIDFrom(c), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// SeedItineraries handles GET /api/v1/itineraries/seed
//
// @Summary List the seed catalog
// @Description Returns the built-in demo itineraries with resolved prices
// @Tags itineraries
// @Produce json
// @Success 200 {object} CatalogDTO
// @Failure 503 {object} SwaggerErrorDetail "Catalog unavailable"
// @Router /api/v1/itineraries/seed [get]
func (h *ItineraryHandler) SeedItineraries(c echo.Context) error {
	if h.seed == nil {
		return response.ServiceUnavailableWithMessage(c, "Seed catalog is not configured")
	}

	items, err := h.seed.Itineraries(c.Request().Context(), "")
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToCatalogDTO(items, h.seed.Origin()))
}

// PriceItinerary handles POST /api/v1/itineraries/price
//
// @Summary Price an itinerary
// @Description Computes the fare breakdown of an itinerary tree and checks it against its stored price
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body domain.Itinerary true "Itinerary tree"
// @Success 200 {object} domain.PriceCheck
// @Failure 400 {object} SwaggerErrorDetail "Malformed body"
// @Router /api/v1/itineraries/price [post]
func (h *ItineraryHandler) PriceItinerary(c echo.Context) error {
	var it domain.Itinerary
	if err := c.Bind(&it); err != nil {
		return response.InvalidRequestBody(c)
	}

	return response.OK(c, usecase.VerifyPrice(it))
}

// GenerateItinerary handles POST /api/v1/itineraries/generate
//
// @Summary Generate an itinerary draft
// @Description Asks the itinerary generator for a draft and prices it
// @Tags generator
// @Accept json
// @Produce json
// @Param request body GenerateItineraryRequest true "Trip brief"
// @Success 200 {object} DraftDTO
// @Failure 400 {object} SwaggerErrorDetail "Validation error"
// @Failure 503 {object} SwaggerErrorDetail "Generator unavailable"
// @Failure 504 {object} SwaggerErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries/generate [post]
func (h *ItineraryHandler) GenerateItinerary(c echo.Context) error {
	var req GenerateItineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	draft, err := h.drafts.Generate(c.Request().Context(), ToGenerateRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToDraftDTO(draft))
}

// ListUserItineraries handles GET /api/v1/users/{userID}/itineraries
//
// @Summary List published itineraries
// @Tags library
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} ItineraryListDTO
// @Failure 400 {object} SwaggerErrorDetail "Validation error"
// @Router /api/v1/users/{userID}/itineraries [get]
func (h *ItineraryHandler) ListUserItineraries(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("userID"))

	items, err := h.library.List(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	if items == nil {
		items = []domain.Itinerary{}
	}

	return response.OK(c, &ItineraryListDTO{
		UserID:      userID,
		Itineraries: items,
		Count:       len(items),
	})
}

// PublishItinerary handles POST /api/v1/users/{userID}/itineraries
//
// @Summary Publish an itinerary
// @Description Stores an itinerary in the user's library so it joins their searches
// @Tags library
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body PublishItineraryRequest true "Itinerary and metadata"
// @Success 201 {object} domain.Itinerary
// @Failure 400 {object} SwaggerErrorDetail "Validation error"
// @Router /api/v1/users/{userID}/itineraries [post]
func (h *ItineraryHandler) PublishItinerary(c echo.Context) error {
	var req PublishItineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	userID := strings.TrimSpace(c.Param("userID"))
	stored, err := h.library.Publish(c.Request().Context(), userID, *req.Itinerary, ToPublishMetadata(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, stored)
}

// DeleteUserItinerary handles DELETE /api/v1/users/{userID}/itineraries/{id}
//
// @Summary Delete a published itinerary
// @Tags library
// @Param userID path string true "User ID"
// @Param id path int true "Itinerary ID"
// @Success 204
// @Failure 400 {object} SwaggerErrorDetail "Validation error"
// @Failure 404 {object} SwaggerErrorDetail "Not found"
// @Router /api/v1/users/{userID}/itineraries/{id} [delete]
func (h *ItineraryHandler) DeleteUserItinerary(c echo.Context) error {
	id, err := parseItineraryID(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	userID := strings.TrimSpace(c.Param("userID"))
	if err := h.library.Delete(c.Request().Context(), userID, id); err != nil {
		return h.handleError(c, err)
	}

	return response.NoContent(c)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *ItineraryHandler) Health(c echo.Context) error {
	components := make(map[string]string, len(h.components)+1)
	for name, status := range h.components {
		components[name] = status
	}
	if h.seed == nil {
		components["seed"] = "disabled"
	} else {
		components["seed"] = "ok"
	}
	return response.Health(c, components)
}

// userIDFrom reads the optional searching user from the header, then the
// query string.
func userIDFrom(c echo.Context) string {
	if id := strings.TrimSpace(c.Request().Header.Get(UserIDHeader)); id != "" {
		return id
	}
	return strings.TrimSpace(c.QueryParam("userId"))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	var fieldErr *domain.ValidationError
	switch {
	case errors.As(err, &fieldErr):
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrItineraryNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrAllSourcesFailed):
		return response.ServiceUnavailable(c)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, domain.ErrSourceTimeout):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, domain.ErrGeneratorUnavailable):
		return response.ServiceUnavailableWithMessage(c, response.MsgGeneratorUnavailable)
	}

	var sourceErr *domain.SourceError
	if errors.As(err, &sourceErr) {
		return response.ServiceUnavailableWithMessage(c, "Itinerary source "+sourceErr.Source+" is unavailable")
	}

	logger.FromContext(c.Request().Context()).Error().Err(err).Msg("Unhandled request error")
	return response.InternalServerError(c)
}
