package integration

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/usecase"
	"github.com/tripweave/itinerary-search/test/mock"
)

// TestHandler_SearchCatalog_Success tests a full-criteria search against the seed catalog.
func TestHandler_SearchCatalog_Success(t *testing.T) {
	ts := NewCatalogServer()

	resp := ts.SearchRequest(GoaSearchRequest(), "")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Headers.Get(echo.HeaderXRequestID))

	searchResp, err := resp.ParseSearchResponse()
	require.NoError(t, err)

	assert.Equal(t, []int{1}, ResultIDs(searchResp))
	assert.False(t, searchResp.Metadata.Fallback)
	assert.Equal(t, 8, searchResp.Metadata.CandidateCount)

	top := searchResp.Results[0]
	assert.Equal(t, "Goa, India", top.Destination)
	assert.Equal(t, string(domain.OriginSeed), top.Origin)
	assert.Equal(t, 95, top.RelevanceScore)
	assert.Equal(t, 18300.0, top.TotalPrice)
	assert.Equal(t, 25.0, top.ScoreBreakdown.Destination)
	assert.Equal(t, 20.0, top.ScoreBreakdown.Dates)
	assert.Equal(t, 25.0, top.ScoreBreakdown.Budget)
	assert.Equal(t, 25.0, top.ScoreBreakdown.Vibe)

	assert.Equal(t, "Goa", searchResp.Criteria.Destination)
	assert.Equal(t, "2025-03-08", searchResp.Criteria.StartDate)
}

// TestHandler_SearchCatalog_Ranking tests filtering and ordering over the seed catalog.
func TestHandler_SearchCatalog_Ranking(t *testing.T) {
	tests := []struct {
		name         string
		body         interface{}
		wantIDs      []int
		wantFallback bool
		wantScore    int
	}{
		{
			name:      "empty criteria returns the catalog in order",
			body:      SearchRequestBody{},
			wantIDs:   []int{1, 2, 3, 4, 5, 6, 7, 8},
			wantScore: 100,
		},
		{
			name:      "region matches two cities",
			body:      SearchRequestBody{Destination: "Rajasthan"},
			wantIDs:   []int{4, 8},
			wantScore: 95,
		},
		{
			name:         "unknown destination falls back to every candidate",
			body:         SearchRequestBody{Destination: "Paris"},
			wantIDs:      []int{1, 2, 3, 4, 5, 6, 7, 8},
			wantFallback: true,
			wantScore:    75,
		},
		{
			name:      "malformed body is treated as no filter",
			body:      "not json at all",
			wantIDs:   []int{1, 2, 3, 4, 5, 6, 7, 8},
			wantScore: 100,
		},
		{
			name:      "wrongly typed fields are ignored",
			body:      `{"destination": 42, "budget": "cheap", "vibe": ["beaches"]}`,
			wantIDs:   []int{1, 2, 3, 4, 5, 6, 7, 8},
			wantScore: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewCatalogServer()

			resp := ts.SearchRequest(tt.body, "")
			require.Equal(t, http.StatusOK, resp.Code)

			searchResp, err := resp.ParseSearchResponse()
			require.NoError(t, err)

			assert.Equal(t, tt.wantIDs, ResultIDs(searchResp))
			assert.Equal(t, tt.wantFallback, searchResp.Metadata.Fallback)
			assert.Equal(t, len(tt.wantIDs), searchResp.Metadata.TotalResults)
			for _, r := range searchResp.Results {
				assert.Equal(t, tt.wantScore, r.RelevanceScore, "itinerary %d", r.ID)
			}
		})
	}
}

// TestHandler_SearchCatalog_ScoresAreSorted tests that a partial match ranks
// below closer ones.
func TestHandler_SearchCatalog_ScoresAreSorted(t *testing.T) {
	ts := NewCatalogServer()

	resp := ts.SearchRequest(SearchRequestBody{Vibe: "adventure"}, "")
	require.Equal(t, http.StatusOK, resp.Code)

	searchResp, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	require.Len(t, searchResp.Results, 8)

	for i := 1; i < len(searchResp.Results); i++ {
		assert.GreaterOrEqual(t,
			searchResp.Results[i-1].RelevanceScore,
			searchResp.Results[i].RelevanceScore,
			"results should be sorted by relevance")
	}

	// Manali and Leh are adventure trips and Havelock carries the tag.
	assert.Equal(t, []int{3, 6, 7}, ResultIDs(searchResp)[:3])
}

// TestHandler_PublishedItineraryFlow tests publishing, searching, listing and
// deleting a user's itinerary through the HTTP surface.
func TestHandler_PublishedItineraryFlow(t *testing.T) {
	ts := NewCatalogServer()

	// Publish
	resp := ts.PublishRequest("alice", PublishBody("Alice's Goa Week", "Goa, India", 20000))
	require.Equal(t, http.StatusCreated, resp.Code)

	stored, err := resp.ParseItinerary()
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ID)
	assert.NotNil(t, stored.PublishedAt)
	assert.Equal(t, 1, ts.Store.Len("alice"))

	// The owner sees the seed Goa trip first, then their own.
	resp = ts.SearchRequest(SearchRequestBody{Destination: "Goa"}, "alice")
	require.Equal(t, http.StatusOK, resp.Code)
	searchResp, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	require.Len(t, searchResp.Results, 2)
	assert.Equal(t, string(domain.OriginSeed), searchResp.Results[0].Origin)
	assert.Equal(t, string(domain.OriginPublished), searchResp.Results[1].Origin)
	assert.Equal(t, "Alice's Goa Week", searchResp.Results[1].Name)
	assert.Equal(t, 20000.0, searchResp.Results[1].TotalPrice)

	// Other users and anonymous callers do not.
	for _, user := range []string{"", "bob"} {
		resp = ts.SearchRequest(SearchRequestBody{Destination: "Goa"}, user)
		searchResp, err = resp.ParseSearchResponse()
		require.NoError(t, err)
		assert.Equal(t, []int{1}, ResultIDs(searchResp), "user %q", user)
	}

	// List
	resp = ts.ListRequest("alice")
	require.Equal(t, http.StatusOK, resp.Code)
	list, err := resp.ParseList()
	require.NoError(t, err)
	assert.Equal(t, "alice", list.UserID)
	assert.Equal(t, 1, list.Count)

	// Delete, then delete again
	resp = ts.DeleteRequest("alice", stored.ID)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = ts.DeleteRequest("alice", stored.ID)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = ts.ListRequest("alice")
	list, err = resp.ParseList()
	require.NoError(t, err)
	assert.Equal(t, 0, list.Count)
	assert.NotNil(t, list.Itineraries)
}

// TestHandler_ValidationErrors tests the 400 responses of the write endpoints.
func TestHandler_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		request   Request
		wantCode  string
		wantField string
	}{
		{
			name:      "publish without itinerary",
			request:   Request{Method: http.MethodPost, Path: "/api/v1/users/alice/itineraries", Body: map[string]interface{}{}},
			wantCode:  "validation_error",
			wantField: "itinerary",
		},
		{
			name: "publish without name",
			request: Request{Method: http.MethodPost, Path: "/api/v1/users/alice/itineraries", Body: map[string]interface{}{
				"itinerary": map[string]interface{}{"destination": "Goa"},
			}},
			wantCode:  "validation_error",
			wantField: "name",
		},
		{
			name: "publish with reversed dates",
			request: Request{Method: http.MethodPost, Path: "/api/v1/users/alice/itineraries", Body: map[string]interface{}{
				"itinerary": map[string]interface{}{
					"name": "Backwards", "destination": "Goa", "startDate": "2025-03-12", "endDate": "2025-03-10",
				},
			}},
			wantCode:  "validation_error",
			wantField: "endDate",
		},
		{
			name:      "delete with non-numeric id",
			request:   Request{Method: http.MethodDelete, Path: "/api/v1/users/alice/itineraries/abc"},
			wantCode:  "validation_error",
			wantField: "id",
		},
		{
			name:     "publish with malformed JSON",
			request:  Request{Method: http.MethodPost, Path: "/api/v1/users/alice/itineraries", Body: `{"itinerary": `},
			wantCode: "invalid_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewCatalogServer()

			resp := ts.Do(tt.request)
			assert.Equal(t, http.StatusBadRequest, resp.Code)

			errResp, err := resp.ParseError()
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, errResp["code"])

			if tt.wantField != "" {
				details, ok := errResp["details"].(map[string]interface{})
				require.True(t, ok, "details should be present")
				assert.Contains(t, details, tt.wantField)
			}
		})
	}
}

// TestHandler_SeedCatalog tests the seed listing endpoint.
func TestHandler_SeedCatalog(t *testing.T) {
	ts := NewCatalogServer()

	resp := ts.SeedRequest()
	require.Equal(t, http.StatusOK, resp.Code)

	var catalog struct {
		Count       int `json:"count"`
		Itineraries []struct {
			ID         int     `json:"id"`
			Origin     string  `json:"origin"`
			TotalPrice float64 `json:"totalPrice"`
		} `json:"itineraries"`
	}
	require.NoError(t, json.Unmarshal(resp.Body, &catalog))

	assert.Equal(t, 8, catalog.Count)
	require.Len(t, catalog.Itineraries, 8)
	assert.Equal(t, "seed", catalog.Itineraries[0].Origin)
	assert.Equal(t, 18300.0, catalog.Itineraries[0].TotalPrice)
}

// TestHandler_SeedCatalog_Disabled tests the seed endpoint without a seed source.
func TestHandler_SeedCatalog_Disabled(t *testing.T) {
	ts := NewTestServer(CreateUseCase([]domain.ItinerarySource{mock.NewSource("seed_catalog")}))

	resp := ts.SeedRequest()
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

// TestHandler_ServiceUnavailable tests 503 response when all sources fail.
func TestHandler_ServiceUnavailable(t *testing.T) {
	source := mock.NewSource("seed_catalog").WithError(domain.ErrSourceUnavailable)
	ts := NewTestServer(CreateUseCase([]domain.ItinerarySource{source}))

	resp := ts.SearchRequest(SearchRequestBody{}, "")

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "service_unavailable", errResp["code"])
}

// TestHandler_AllSourcesTimeOut tests that sources timing out together are
// reported as unavailable rather than as a gateway timeout.
func TestHandler_AllSourcesTimeOut(t *testing.T) {
	source := mock.NewSource("seed_catalog").
		WithDelay(200 * time.Millisecond).
		WithItineraries(mock.SampleItineraries("slow", 2))

	uc := CreateUseCaseWithConfig([]domain.ItinerarySource{source}, &usecase.Config{
		GlobalTimeout: time.Second,
		SourceTimeout: 20 * time.Millisecond,
	})
	ts := NewTestServer(uc)

	resp := ts.SearchRequest(SearchRequestBody{}, "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

// TestHandler_HealthCheck tests the health endpoint.
func TestHandler_HealthCheck(t *testing.T) {
	ts := NewCatalogServer()

	resp := ts.HealthRequest()

	assert.Equal(t, http.StatusOK, resp.Code)
	health, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "ok", health["status"])

	components, ok := health["components"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ok", components["seed"])
}

// TestHandler_GenerateDisabled tests that drafting fails cleanly without a generator.
func TestHandler_GenerateDisabled(t *testing.T) {
	ts := NewCatalogServer()

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/generate",
		Body:   map[string]interface{}{"destination": "Goa"},
	})

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

// TestHandler_PriceItinerary tests price verification of a fare tree.
func TestHandler_PriceItinerary(t *testing.T) {
	ts := NewCatalogServer()

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/price",
		Body: map[string]interface{}{
			"name":        "Fare only",
			"destination": "Goa",
			"price":       2000,
			"days": []map[string]interface{}{
				{"events": []map[string]interface{}{
					{
						"details":   map[string]interface{}{"text": "Dinner"},
						"fare":      []map[string]interface{}{{"type": "meal", "amount": 1500}},
						"mandatory": true,
					},
					{
						"details": map[string]interface{}{"text": "Sunset cruise"},
						"travel":  []map[string]interface{}{{"mode": "cab", "cost": 600}},
						"fare":    []map[string]interface{}{{"type": "ticket", "amount": 500}},
					},
				}},
			},
		},
	})

	require.Equal(t, http.StatusOK, resp.Code)

	var check domain.PriceCheck
	require.NoError(t, json.Unmarshal(resp.Body, &check))

	assert.Equal(t, 2000.0, check.Breakdown.Total)
	assert.Equal(t, 1500.0, check.Breakdown.Mandatory)
	assert.Equal(t, 500.0, check.Breakdown.Optional)
	assert.Equal(t, 600.0, check.Breakdown.Travel)
	assert.Equal(t, 2, check.Breakdown.FareCount)
	assert.Equal(t, 2000.0, check.ResolvedPrice)
	assert.True(t, check.Consistent)
}
