package usecase

import (
	"time"

	"github.com/tripweave/itinerary-search/internal/domain"
)

func goaItinerary() domain.Itinerary {
	return domain.Itinerary{
		ID:          1,
		Name:        "Goa Beach Escape",
		Destination: "Goa, India",
		StartDate:   "2025-03-10",
		EndDate:     "2025-03-15",
		Vibe:        "beaches",
		Tags:        []string{"nightlife", "food"},
		Price:       domain.Float64Ptr(18300),
	}
}

func keralaItinerary() domain.Itinerary {
	return domain.Itinerary{
		ID:          2,
		Name:        "Kerala Backwaters",
		Destination: "Kerala, India",
		StartDate:   "2025-04-01",
		EndDate:     "2025-04-06",
		Vibe:        "wellness",
		Tags:        []string{"nature"},
		Price:       domain.Float64Ptr(35000),
	}
}

func manaliItinerary() domain.Itinerary {
	return domain.Itinerary{
		ID:          3,
		Name:        "Manali Trek",
		Destination: "Manali, Himachal Pradesh",
		StartDate:   "2025-05-20",
		EndDate:     "2025-05-26",
		Vibe:        "adventure",
		Days: []domain.Day{
			{Events: []domain.Event{
				{Mandatory: true, Fare: []domain.Fare{{Type: "stay", Amount: 9000}}},
				{Fare: []domain.Fare{{Type: "activity", Amount: 3500}}},
			}},
		},
	}
}

func at(value string) *time.Time {
	t, ok := domain.ParseDate(value)
	if !ok {
		panic("bad test date " + value)
	}
	return &t
}

func budget(lo, hi *float64) *domain.BudgetRange {
	return &domain.BudgetRange{Min: lo, Max: hi}
}

func ptr(v float64) *float64 {
	return &v
}
