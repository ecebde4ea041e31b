package usecase

import (
	"sort"

	"github.com/tripweave/itinerary-search/internal/domain"
)

// ScoreCandidates resolves the price and relevance of each candidate.
// The output has the same order as the input.
func ScoreCandidates(candidates []domain.Candidate, criteria *domain.SearchCriteria) []domain.ScoredItinerary {
	result := make([]domain.ScoredItinerary, len(candidates))
	for i, c := range candidates {
		price := ResolvePrice(c.Itinerary)
		score, breakdown := ScoreItinerary(c.Itinerary, criteria, price)

		result[i] = domain.ScoredItinerary{
			Itinerary:      c.Itinerary,
			Origin:         c.Origin,
			RelevanceScore: score,
			TotalPrice:     price,
			ScoreBreakdown: breakdown,
		}
	}
	return result
}

// SortByRelevance orders results by score, highest first.
// Equal scores keep their input order. The input slice is not mutated.
func SortByRelevance(results []domain.ScoredItinerary) []domain.ScoredItinerary {
	sorted := make([]domain.ScoredItinerary, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RelevanceScore > sorted[j].RelevanceScore
	})
	return sorted
}

// Rank scores the candidates and sorts them by relevance.
func Rank(candidates []domain.Candidate, criteria *domain.SearchCriteria) []domain.ScoredItinerary {
	return SortByRelevance(ScoreCandidates(candidates, criteria))
}
