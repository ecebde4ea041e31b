package http

import "github.com/tripweave/itinerary-search/internal/domain"

// SearchResponseDTO is the wire form of a search response.
type SearchResponseDTO struct {
	Criteria CriteriaDTO          `json:"criteria"`
	Metadata MetadataDTO          `json:"metadata"`
	Results  []ScoredItineraryDTO `json:"results"`
}

// CriteriaDTO echoes the normalized criteria with dates as YYYY-MM-DD.
type CriteriaDTO struct {
	Destination string          `json:"destination,omitempty"`
	StartDate   string          `json:"startDate,omitempty"`
	EndDate     string          `json:"endDate,omitempty"`
	Budget      *BudgetRangeDTO `json:"budget,omitempty"`
	Vibe        string          `json:"vibe,omitempty"`
}

// BudgetRangeDTO is an echoed budget range.
type BudgetRangeDTO struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults   int      `json:"totalResults"`
	CandidateCount int      `json:"candidateCount"`
	Fallback       bool     `json:"fallback"`
	SourcesQueried []string `json:"sourcesQueried"`
	SourcesFailed  []string `json:"sourcesFailed"`
	SearchTimeMs   int64    `json:"searchTimeMs"`
}

// ScoredItineraryDTO is an itinerary with its search annotations.
type ScoredItineraryDTO struct {
	domain.Itinerary
	Origin         string            `json:"origin"`
	RelevanceScore int               `json:"relevanceScore"`
	TotalPrice     float64           `json:"totalPrice"`
	ScoreBreakdown ScoreBreakdownDTO `json:"scoreBreakdown"`
}

// ScoreBreakdownDTO holds the sub-scores rounded to two decimals.
type ScoreBreakdownDTO struct {
	Destination float64 `json:"destination"`
	Dates       float64 `json:"dates"`
	Budget      float64 `json:"budget"`
	Vibe        float64 `json:"vibe"`
}

// PricedItineraryDTO is an itinerary with its resolved price.
type PricedItineraryDTO struct {
	domain.Itinerary
	Origin     string  `json:"origin"`
	TotalPrice float64 `json:"totalPrice"`
}

// CatalogDTO lists itineraries of a single origin.
type CatalogDTO struct {
	Itineraries []PricedItineraryDTO `json:"itineraries"`
	Count       int                  `json:"count"`
}

// ItineraryListDTO lists a user's published itineraries.
type ItineraryListDTO struct {
	UserID      string             `json:"userId"`
	Itineraries []domain.Itinerary `json:"itineraries"`
	Count       int                `json:"count"`
}

// DraftDTO is a generated itinerary with its price breakdown.
type DraftDTO struct {
	Itinerary           domain.Itinerary            `json:"itinerary"`
	Origin              string                      `json:"origin"`
	HotelStays          []domain.HotelStay          `json:"hotelStays"`
	CancellationPenalty *domain.CancellationPenalty `json:"cancellationPenalty,omitempty"`
	Pricing             domain.PriceBreakdown       `json:"pricing"`
}
