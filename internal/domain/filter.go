package domain

import (
	"strings"
	"time"
)

// MatchesDestination checks whether the itinerary destination contains the
// query (case-insensitive). An empty query matches everything.
func MatchesDestination(it Itinerary, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Destination), q)
}

// OverlapsDates checks whether the itinerary's travel interval intersects
// [start, end] (both inclusive). Itineraries without dates never overlap.
func OverlapsDates(it Itinerary, start, end time.Time) bool {
	itStart, itEnd, ok := it.DateRange()
	if !ok {
		return false
	}
	if end.Before(start) {
		start, end = end, start
	}
	return !itStart.After(end) && !itEnd.Before(start)
}

// MatchesCriteria applies every hard filter set on the criteria to one
// itinerary whose total price is already resolved.
//
// Filters, in order:
//   - destination: case-insensitive containment of the query
//   - dates: interval intersection, only when both bounds are set
//   - budget: resolved price within [min, max], when either bound is set
func (s *SearchCriteria) MatchesCriteria(it Itinerary, totalPrice float64) bool {
	if s == nil {
		return true
	}

	if s.HasDestination() && !MatchesDestination(it, s.Destination) {
		return false
	}

	if s.HasDateRange() && !OverlapsDates(it, *s.StartDate, *s.EndDate) {
		return false
	}

	if s.Budget.IsSet() && !s.Budget.Contains(totalPrice) {
		return false
	}

	return true
}
