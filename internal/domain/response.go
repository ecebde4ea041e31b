package domain

// ScoredItinerary is an itinerary annotated for one search.
// It is transient and never persisted.
type ScoredItinerary struct {
	Itinerary

	// Origin identifies the source collection the itinerary came from
	Origin Origin `json:"origin"`

	// RelevanceScore is the 0-100 match score against the query
	RelevanceScore int `json:"relevanceScore"`

	// TotalPrice is the resolved total cost (stored price or fare sum)
	TotalPrice float64 `json:"totalPrice"`

	// ScoreBreakdown exposes the four sub-scores behind RelevanceScore
	ScoreBreakdown ScoreBreakdown `json:"scoreBreakdown"`
}

// ScoreBreakdown holds the weighted sub-scores of a relevance score.
type ScoreBreakdown struct {
	Destination float64 `json:"destination"`
	Dates       float64 `json:"dates"`
	Budget      float64 `json:"budget"`
	Vibe        float64 `json:"vibe"`
}

// Total returns the unrounded sum of the sub-scores.
func (b ScoreBreakdown) Total() float64 {
	return b.Destination + b.Dates + b.Budget + b.Vibe
}

// Candidate is an itinerary tagged with its origin, as gathered from a source.
type Candidate struct {
	Itinerary Itinerary
	Origin    Origin
}

// SearchResponse represents the result of an itinerary search.
type SearchResponse struct {
	// Criteria echoes the normalized search criteria
	Criteria SearchCriteria `json:"criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Results is the ranked list of itineraries
	Results []ScoredItinerary `json:"results"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of itineraries returned
	TotalResults int `json:"totalResults"`

	// CandidateCount is the size of the unfiltered candidate snapshot
	CandidateCount int `json:"candidateCount"`

	// Fallback is true when hard filters matched nothing and the full
	// candidate set was returned instead
	Fallback bool `json:"fallback"`

	// SourcesQueried lists the sources consulted for candidates
	SourcesQueried []string `json:"sourcesQueried"`

	// SourcesFailed lists the sources that failed or timed out
	SourcesFailed []string `json:"sourcesFailed"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}

// SourceResult represents the result from a single source query.
// This is used internally for gathering candidates.
type SourceResult struct {
	// Source is the name of the source
	Source string

	// Origin is the origin tag applied to every itinerary of the source
	Origin Origin

	// Itineraries contains the snapshot returned by this source
	Itineraries []Itinerary

	// Error is set if the source query failed
	Error error
}

// IsSuccess returns true if the source query succeeded.
func (sr *SourceResult) IsSuccess() bool {
	return sr.Error == nil
}
