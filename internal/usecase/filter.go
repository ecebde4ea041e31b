package usecase

import "github.com/tripweave/itinerary-search/internal/domain"

// ApplyFilters returns the candidates that pass every hard filter of the
// criteria, preserving their order.
//
// Filters, in order:
//   - destination: case-insensitive containment
//   - dates: interval intersection, only when both bounds are set
//   - budget: resolved price within [min, max]
//
// Vibe never filters; it only affects the score. A nil or empty criteria
// returns the input unchanged. The input slice is never mutated.
func ApplyFilters(candidates []domain.Candidate, criteria *domain.SearchCriteria) []domain.Candidate {
	if criteria.IsEmpty() {
		return candidates
	}

	result := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if criteria.MatchesCriteria(c.Itinerary, ResolvePrice(c.Itinerary)) {
			result = append(result, c)
		}
	}
	return result
}
