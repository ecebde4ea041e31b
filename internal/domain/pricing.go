package domain

// PriceBreakdown splits an itinerary's cost by event kind.
// Total always equals Mandatory + Optional. Travel is informational and
// is not part of Total.
type PriceBreakdown struct {
	Total     float64 `json:"total"`
	Mandatory float64 `json:"mandatory"`
	Optional  float64 `json:"optional"`
	Travel    float64 `json:"travel"`
	FareCount int     `json:"fareCount"`
}

// PriceCheck compares an itinerary's stored price with its fare tree.
type PriceCheck struct {
	Breakdown PriceBreakdown `json:"breakdown"`

	// StoredPrice is the itinerary's precomputed price, if any
	StoredPrice *float64 `json:"storedPrice,omitempty"`

	// ResolvedPrice is the price used for filtering and scoring
	ResolvedPrice float64 `json:"resolvedPrice"`

	// Consistent is false when a stored price disagrees with the fare tree
	Consistent bool `json:"consistent"`

	// Difference is StoredPrice minus the computed total (0 without a stored price)
	Difference float64 `json:"difference"`
}
