// Package integration provides helpers and integration tests for the itinerary search system.
// Integration tests verify that components work together correctly, including
// HTTP handlers, use cases, the seed catalog, the published store and mock sources.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/tripweave/itinerary-search/internal/adapter/http"
	"github.com/tripweave/itinerary-search/internal/adapter/http/middleware"
	"github.com/tripweave/itinerary-search/internal/adapter/source/published"
	"github.com/tripweave/itinerary-search/internal/adapter/source/seed"
	"github.com/tripweave/itinerary-search/internal/adapter/store/memory"
	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/logger"
	"github.com/tripweave/itinerary-search/internal/infrastructure/timeutil"
	"github.com/tripweave/itinerary-search/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ItineraryHandler
	Store   *memory.Store
}

// NewTestServer creates a test server around the given search use case.
// Publishing goes to a fresh in-memory store and the generator is disabled.
func NewTestServer(uc usecase.ItinerarySearchUseCase) *TestServer {
	store := memory.NewStore(timeutil.NewMockClockFromString("2025-01-15T10:00:00Z"))
	return newServer(uc, store, nil)
}

// NewCatalogServer creates a test server wired the way the binary wires it:
// the embedded seed catalog plus the caller's published itineraries.
func NewCatalogServer() *TestServer {
	store := memory.NewStore(timeutil.NewMockClockFromString("2025-01-15T10:00:00Z"))
	seedSource := seed.NewAdapter("")

	uc := CreateUseCase([]domain.ItinerarySource{seedSource, published.NewAdapter(store)})
	return newServer(uc, store, seedSource)
}

func newServer(uc usecase.ItinerarySearchUseCase, store *memory.Store, seedSource domain.ItinerarySource) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.Nop().Logger)

	handler := httpAdapter.NewItineraryHandler(
		uc,
		usecase.NewItineraryLibraryUseCase(store),
		usecase.NewDraftUseCase(nil),
		seedSource,
	)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Store:   store,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	UserID  string
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
// A string body is sent verbatim; anything else is JSON encoded.
func (ts *TestServer) Do(req Request) Response {
	var body []byte
	switch b := req.Body.(type) {
	case nil:
	case string:
		body = []byte(b)
	default:
		body, _ = json.Marshal(b)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.UserID != "" {
		httpReq.Header.Set(httpAdapter.UserIDHeader, req.UserID)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search body, optionally on behalf of a user.
func (ts *TestServer) SearchRequest(body interface{}, userID string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/search",
		Body:   body,
		UserID: userID,
	})
}

// SeedRequest lists the seed catalog.
func (ts *TestServer) SeedRequest() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/itineraries/seed"})
}

// PublishRequest publishes an itinerary for userID.
func (ts *TestServer) PublishRequest(userID string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/api/v1/users/%s/itineraries", userID),
		Body:   body,
	})
}

// ListRequest lists userID's published itineraries.
func (ts *TestServer) ListRequest(userID string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/api/v1/users/%s/itineraries", userID),
	})
}

// DeleteRequest removes one of userID's published itineraries.
func (ts *TestServer) DeleteRequest(userID string, id int) Response {
	return ts.Do(Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/api/v1/users/%s/itineraries/%d", userID, id),
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a search response.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseItinerary parses the response body as a single itinerary.
func (r *Response) ParseItinerary() (*domain.Itinerary, error) {
	var it domain.Itinerary
	if err := json.Unmarshal(r.Body, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// ParseList parses the response body as a user's itinerary list.
func (r *Response) ParseList() (*httpAdapter.ItineraryListDTO, error) {
	var list httpAdapter.ItineraryListDTO
	if err := json.Unmarshal(r.Body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// ResultIDs returns the itinerary ids of a search response in ranked order.
func ResultIDs(resp *httpAdapter.SearchResponseDTO) []int {
	ids := make([]int, len(resp.Results))
	for i, r := range resp.Results {
		ids[i] = r.ID
	}
	return ids
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Destination string                 `json:"destination,omitempty"`
	StartDate   string                 `json:"startDate,omitempty"`
	EndDate     string                 `json:"endDate,omitempty"`
	Budget      map[string]interface{} `json:"budget,omitempty"`
	Vibe        string                 `json:"vibe,omitempty"`
}

// GoaSearchRequest returns a body that matches only the Goa seed itinerary.
func GoaSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Destination: "Goa",
		StartDate:   "2025-03-08",
		EndDate:     "2025-03-16",
		Budget:      map[string]interface{}{"min": 15000, "max": 25000},
		Vibe:        "beaches",
	}
}

// PublishBody builds a publish request for a priced, dated itinerary.
func PublishBody(name, destination string, price float64) map[string]interface{} {
	return map[string]interface{}{
		"itinerary": map[string]interface{}{
			"name":        name,
			"destination": destination,
			"startDate":   "2025-03-09",
			"endDate":     "2025-03-12",
			"vibe":        "Nightlife",
			"price":       price,
		},
	}
}

// CreateUseCase creates a use case with the given sources and default configuration.
func CreateUseCase(sources []domain.ItinerarySource) usecase.ItinerarySearchUseCase {
	return usecase.NewItinerarySearchUseCase(sources, nil)
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(sources []domain.ItinerarySource, config *usecase.Config) usecase.ItinerarySearchUseCase {
	return usecase.NewItinerarySearchUseCase(sources, config)
}
