package usecase

import (
	"math"

	"github.com/tripweave/itinerary-search/internal/domain"
)

// priceTolerance absorbs floating point noise when comparing prices.
const priceTolerance = 0.005

// CalculateTotalPrice sums every fare amount of every event of every day.
// Missing days, events or fares contribute 0. The input is never mutated.
func CalculateTotalPrice(it domain.Itinerary) float64 {
	var total float64
	for _, day := range it.Days {
		for _, event := range day.Events {
			for _, fare := range event.Fare {
				total += fare.Amount
			}
		}
	}
	return total
}

// ResolvePrice returns the itinerary's stored price when present and the
// computed fare total otherwise.
func ResolvePrice(it domain.Itinerary) float64 {
	if it.Price != nil {
		return *it.Price
	}
	return CalculateTotalPrice(it)
}

// CalculatePriceBreakdown splits the fare total into mandatory and
// optional events and reports travel costs separately.
func CalculatePriceBreakdown(it domain.Itinerary) domain.PriceBreakdown {
	var b domain.PriceBreakdown
	for _, day := range it.Days {
		for _, event := range day.Events {
			var eventTotal float64
			for _, fare := range event.Fare {
				eventTotal += fare.Amount
				b.FareCount++
			}
			if event.Mandatory {
				b.Mandatory += eventTotal
			} else {
				b.Optional += eventTotal
			}
			for _, leg := range event.Travel {
				b.Travel += leg.Cost
			}
		}
	}
	b.Total = b.Mandatory + b.Optional
	return b
}

// VerifyPrice compares the stored price, if any, with the fare tree.
func VerifyPrice(it domain.Itinerary) domain.PriceCheck {
	check := domain.PriceCheck{
		Breakdown:     CalculatePriceBreakdown(it),
		ResolvedPrice: ResolvePrice(it),
		Consistent:    true,
	}

	if it.Price != nil {
		stored := *it.Price
		check.StoredPrice = &stored
		check.Difference = stored - check.Breakdown.Total
		check.Consistent = math.Abs(check.Difference) < priceTolerance
	}

	return check
}
