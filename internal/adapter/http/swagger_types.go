// Package http provides swagger type definitions for API documentation.
// These types flatten the embedded domain types so swag renders complete schemas.
package http

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description Ranked itineraries with the echoed criteria and search metadata
type SwaggerSearchResponse struct {
	// Criteria echoes the normalized criteria that were applied
	Criteria CriteriaDTO `json:"criteria"`

	// Metadata contains information about the search execution
	Metadata SwaggerSearchMetadata `json:"metadata"`

	// Results is ordered by relevance score, best first
	Results []SwaggerScoredItinerary `json:"results"`
}

// SwaggerSearchMetadata contains metadata about the search execution.
// @Description Metadata about the search execution
type SwaggerSearchMetadata struct {
	// TotalResults is the number of itineraries returned
	TotalResults int `json:"totalResults" example:"3"`

	// CandidateCount is the number of itineraries considered before filtering
	CandidateCount int `json:"candidateCount" example:"9"`

	// Fallback is true when no itinerary passed the filters and all candidates were ranked instead
	Fallback bool `json:"fallback" example:"false"`

	// SourcesQueried lists the candidate sources consulted
	SourcesQueried []string `json:"sourcesQueried" example:"seed_catalog,published"`

	// SourcesFailed lists the sources that failed or timed out
	SourcesFailed []string `json:"sourcesFailed" example:""`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs" example:"4"`
}

// SwaggerScoredItinerary represents one ranked itinerary.
// @Description An itinerary with its relevance annotations
type SwaggerScoredItinerary struct {
	ID          int          `json:"id" example:"1"`
	Name        string       `json:"name" example:"Goa Beach Escape"`
	Destination string       `json:"destination" example:"Goa, India"`
	StartDate   string       `json:"startDate,omitempty" example:"2025-03-10"`
	EndDate     string       `json:"endDate,omitempty" example:"2025-03-14"`
	Vibe        string       `json:"vibe,omitempty" example:"beaches"`
	Tags        []string     `json:"tags,omitempty" example:"nightlife,food"`
	GroupSize   string       `json:"groupSize,omitempty" example:"2-6 people"`
	Description string       `json:"description,omitempty"`
	Price       *float64     `json:"price,omitempty" example:"18300"`
	Days        []SwaggerDay `json:"days"`

	// Origin is "seed" or "published"
	Origin string `json:"origin" example:"seed"`

	// RelevanceScore is the 0-100 match score
	RelevanceScore int `json:"relevanceScore" example:"100"`

	// TotalPrice is the stored price, or the sum of all fares when none is stored
	TotalPrice float64 `json:"totalPrice" example:"18300"`

	// ScoreBreakdown holds the weighted sub-scores
	ScoreBreakdown ScoreBreakdownDTO `json:"scoreBreakdown"`
}

// SwaggerDay represents one day of an itinerary.
// @Description One itinerary day
type SwaggerDay struct {
	Date   string         `json:"date,omitempty" example:"2025-03-10"`
	Events []SwaggerEvent `json:"events"`
}

// SwaggerEvent represents an activity within a day.
// @Description One itinerary event with its fares
type SwaggerEvent struct {
	Travel    []SwaggerTravel `json:"travel,omitempty"`
	Details   SwaggerDetails  `json:"details"`
	Fare      []SwaggerFare   `json:"fare"`
	Mandatory bool            `json:"mandatory" example:"true"`
}

// SwaggerTravel is one transport leg.
type SwaggerTravel struct {
	Mode string  `json:"mode" example:"cab"`
	Cost float64 `json:"cost" example:"800"`
}

// SwaggerDetails describes an event.
type SwaggerDetails struct {
	Text            string `json:"text" example:"Baga beach sunset"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty" example:"120"`
}

// SwaggerFare is one priced component.
type SwaggerFare struct {
	Type   string  `json:"type" example:"stay"`
	Amount float64 `json:"amount" example:"4500"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error response from the API
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
