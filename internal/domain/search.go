package domain

import (
	"strings"
	"time"
)

// SearchCriteria defines the parameters for an itinerary search.
// Every field is optional; a zero SearchCriteria means "no filter".
type SearchCriteria struct {
	// Destination is free text matched against itinerary destinations
	Destination string `json:"destination,omitempty"`

	// StartDate is the beginning of the desired travel window
	StartDate *time.Time `json:"startDate,omitempty"`

	// EndDate is the end of the desired travel window
	EndDate *time.Time `json:"endDate,omitempty"`

	// Budget bounds the itinerary total price
	Budget *BudgetRange `json:"budget,omitempty"`

	// Vibe is the desired travel style
	Vibe string `json:"vibe,omitempty"`
}

// BudgetRange bounds a price. Either bound may be absent.
type BudgetRange struct {
	// Min is the lowest acceptable price (absent = 0)
	Min *float64 `json:"min,omitempty"`

	// Max is the highest acceptable price (absent = unbounded)
	Max *float64 `json:"max,omitempty"`
}

// IsSet reports whether at least one bound is present.
func (b *BudgetRange) IsSet() bool {
	return b != nil && (b.Min != nil || b.Max != nil)
}

// Contains checks whether a price falls within the range.
// A nil or empty range contains every price. min > max contains nothing.
func (b *BudgetRange) Contains(price float64) bool {
	if b == nil {
		return true
	}
	if b.Min != nil && price < *b.Min {
		return false
	}
	if b.Max != nil && price > *b.Max {
		return false
	}
	return true
}

// HasDestination reports whether a destination query is present.
func (s *SearchCriteria) HasDestination() bool {
	return strings.TrimSpace(s.Destination) != ""
}

// HasAnyDate reports whether at least one date bound is present.
func (s *SearchCriteria) HasAnyDate() bool {
	return s.StartDate != nil || s.EndDate != nil
}

// HasDateRange reports whether both date bounds are present.
func (s *SearchCriteria) HasDateRange() bool {
	return s.StartDate != nil && s.EndDate != nil
}

// HasVibe reports whether a vibe is requested.
func (s *SearchCriteria) HasVibe() bool {
	return strings.TrimSpace(s.Vibe) != ""
}

// IsEmpty reports whether no filterable attribute is set.
func (s *SearchCriteria) IsEmpty() bool {
	if s == nil {
		return true
	}
	return !s.HasDestination() && !s.HasAnyDate() && !s.Budget.IsSet() && !s.HasVibe()
}

// DateWindow returns the query's travel window. A single supplied bound is
// used for both ends. ok is false when no date is set.
func (s *SearchCriteria) DateWindow() (start, end time.Time, ok bool) {
	switch {
	case s.StartDate != nil && s.EndDate != nil:
		start, end = *s.StartDate, *s.EndDate
		if end.Before(start) {
			start, end = end, start
		}
		return start, end, true
	case s.StartDate != nil:
		return *s.StartDate, *s.StartDate, true
	case s.EndDate != nil:
		return *s.EndDate, *s.EndDate, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
