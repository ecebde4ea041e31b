package domain

//go:generate mockgen -source=generator.go -destination=mock_generator.go -package=domain

import "context"

// GenerateRequest is the trip brief sent to the itinerary generator.
type GenerateRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	Vibe        string   `json:"vibe,omitempty"`
	GroupSize   string   `json:"groupSize,omitempty"`
	Interests   []string `json:"interests,omitempty"`
}

// HotelStay is an accommodation block proposed by the generator.
type HotelStay struct {
	Name         string  `json:"name"`
	Location     string  `json:"location,omitempty"`
	CheckIn      string  `json:"checkIn,omitempty"`
	CheckOut     string  `json:"checkOut,omitempty"`
	Nights       int     `json:"nights"`
	CostPerNight float64 `json:"costPerNight"`
}

// CancellationPenalty describes what cancelling a generated trip costs.
type CancellationPenalty struct {
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
	Deadline   string  `json:"deadline,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

// GeneratedItinerary is a draft produced by the itinerary generator.
type GeneratedItinerary struct {
	Itinerary           Itinerary            `json:"itinerary"`
	HotelStays          []HotelStay          `json:"hotelStays"`
	CancellationPenalty *CancellationPenalty `json:"cancellationPenalty,omitempty"`
}

// Draft is a generated itinerary together with its computed pricing.
type Draft struct {
	GeneratedItinerary
	Pricing PriceBreakdown `json:"pricing"`
}

// ItineraryGenerator produces itinerary drafts from a trip brief.
type ItineraryGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GeneratedItinerary, error)
}
