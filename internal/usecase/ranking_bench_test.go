package usecase

import (
	"fmt"
	"testing"

	"github.com/tripweave/itinerary-search/internal/domain"
)

// BenchmarkSearchPipeline measures filter, score and sort over a
// catalog-sized candidate set.
func BenchmarkSearchPipeline(b *testing.B) {
	destinations := []string{"Goa, India", "Kerala, India", "Manali, Himachal Pradesh", "Jaipur, Rajasthan", "Ladakh, India"}
	vibes := []string{"beaches", "wellness", "adventure", "cultural", "nature"}

	cands := make([]domain.Candidate, 500)
	for i := range cands {
		it := manaliItinerary()
		it.ID = i + 1
		it.Name = fmt.Sprintf("Trip %d", i)
		it.Destination = destinations[i%len(destinations)]
		it.Vibe = vibes[i%len(vibes)]
		cands[i] = domain.Candidate{Itinerary: it, Origin: domain.OriginSeed}
	}

	b.Run("no_criteria", func(b *testing.B) {
		criteria := &domain.SearchCriteria{}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Rank(ApplyFilters(cands, criteria), criteria)
		}
	})

	b.Run("all_criteria", func(b *testing.B) {
		criteria := &domain.SearchCriteria{
			Destination: "India",
			StartDate:   at("2025-05-01"),
			EndDate:     at("2025-06-01"),
			Budget:      budget(ptr(5000), ptr(20000)),
			Vibe:        "wellness",
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Rank(ApplyFilters(cands, criteria), criteria)
		}
	})
}
