package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweave/itinerary-search/internal/domain"
)

func TestScoreCandidates(t *testing.T) {
	criteria := &domain.SearchCriteria{Destination: "Goa"}

	scored := ScoreCandidates(candidates(), criteria)

	require.Len(t, scored, 3)
	assert.Equal(t, 1, scored[0].ID)
	assert.Equal(t, domain.OriginSeed, scored[0].Origin)
	assert.Equal(t, 18300.0, scored[0].TotalPrice)
	assert.Equal(t, 95, scored[0].RelevanceScore)
	assert.Equal(t, 12500.0, scored[2].TotalPrice, "price resolved from fares")
	assert.Equal(t, domain.OriginPublished, scored[2].Origin)
}

func TestSortByRelevance(t *testing.T) {
	input := []domain.ScoredItinerary{
		{Itinerary: domain.Itinerary{ID: 1}, Origin: domain.OriginSeed, RelevanceScore: 50},
		{Itinerary: domain.Itinerary{ID: 2}, Origin: domain.OriginSeed, RelevanceScore: 90},
		{Itinerary: domain.Itinerary{ID: 1}, Origin: domain.OriginPublished, RelevanceScore: 90},
		{Itinerary: domain.Itinerary{ID: 3}, Origin: domain.OriginPublished, RelevanceScore: 70},
	}

	sorted := SortByRelevance(input)

	require.Len(t, sorted, 4)
	assert.Equal(t, 2, sorted[0].ID)
	assert.Equal(t, domain.OriginSeed, sorted[0].Origin)
	assert.Equal(t, 1, sorted[1].ID)
	assert.Equal(t, domain.OriginPublished, sorted[1].Origin, "ties keep input order")
	assert.Equal(t, 3, sorted[2].ID)
	assert.Equal(t, 1, sorted[3].ID)

	assert.Equal(t, 50, input[0].RelevanceScore, "input must not be mutated")
}

func TestSortByRelevance_Empty(t *testing.T) {
	sorted := SortByRelevance(nil)
	assert.NotNil(t, sorted)
	assert.Empty(t, sorted)
}

func TestRank(t *testing.T) {
	criteria := &domain.SearchCriteria{Vibe: "adventure"}

	ranked := Rank(candidates(), criteria)

	require.Len(t, ranked, 3)
	assert.Equal(t, 3, ranked[0].ID, "exact vibe match ranks first")
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].RelevanceScore, ranked[i].RelevanceScore)
	}
}
