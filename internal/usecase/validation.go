package usecase

import (
	"fmt"
	"strings"

	"github.com/tripweave/itinerary-search/internal/domain"
)

// ValidateItinerary checks a user-supplied itinerary tree before it is
// stored. It returns the first problem found as a *domain.ValidationError.
func ValidateItinerary(it domain.Itinerary) error {
	if strings.TrimSpace(it.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(it.Destination) == "" {
		return domain.NewValidationError("destination", "is required")
	}

	start, hasStart := domain.ParseDate(it.StartDate)
	if it.StartDate != "" && !hasStart {
		return domain.NewValidationError("startDate", "must be a date in YYYY-MM-DD format")
	}
	end, hasEnd := domain.ParseDate(it.EndDate)
	if it.EndDate != "" && !hasEnd {
		return domain.NewValidationError("endDate", "must be a date in YYYY-MM-DD format")
	}
	if hasStart && hasEnd && end.Before(start) {
		return domain.NewValidationError("endDate", "must not be before startDate")
	}

	if it.Price != nil && *it.Price < 0 {
		return domain.NewValidationError("price", "must not be negative")
	}

	for i, day := range it.Days {
		for j, event := range day.Events {
			for k, fare := range event.Fare {
				if fare.Amount < 0 {
					return domain.NewValidationError(
						fmt.Sprintf("days[%d].events[%d].fare[%d].amount", i, j, k), "must not be negative")
				}
			}
			for k, leg := range event.Travel {
				if leg.Cost < 0 {
					return domain.NewValidationError(
						fmt.Sprintf("days[%d].events[%d].travel[%d].cost", i, j, k), "must not be negative")
				}
			}
		}
	}

	return nil
}

// validateUserID rejects blank user identifiers.
func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.NewValidationError("userId", "is required")
	}
	return nil
}
