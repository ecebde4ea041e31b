package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweave/itinerary-search/internal/domain"
)

func TestValidateItinerary(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(it *domain.Itinerary)
		wantField string
	}{
		{name: "valid", modify: func(it *domain.Itinerary) {}},
		{name: "valid without dates", modify: func(it *domain.Itinerary) { it.StartDate, it.EndDate = "", "" }},
		{name: "missing name", modify: func(it *domain.Itinerary) { it.Name = " " }, wantField: "name"},
		{name: "missing destination", modify: func(it *domain.Itinerary) { it.Destination = "" }, wantField: "destination"},
		{name: "bad start date", modify: func(it *domain.Itinerary) { it.StartDate = "someday" }, wantField: "startDate"},
		{name: "bad end date", modify: func(it *domain.Itinerary) { it.EndDate = "2025-13-40" }, wantField: "endDate"},
		{name: "end before start", modify: func(it *domain.Itinerary) { it.EndDate = "2025-05-01" }, wantField: "endDate"},
		{name: "negative price", modify: func(it *domain.Itinerary) { it.Price = ptr(-5) }, wantField: "price"},
		{
			name:      "negative fare",
			modify:    func(it *domain.Itinerary) { it.Days[0].Events[1].Fare[0].Amount = -1 },
			wantField: "days[0].events[1].fare[0].amount",
		},
		{
			name: "negative travel cost",
			modify: func(it *domain.Itinerary) {
				it.Days[0].Events[0].Travel = []domain.TravelDetail{{Mode: "bus", Cost: -20}}
			},
			wantField: "days[0].events[0].travel[0].cost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := manaliItinerary()
			tt.modify(&it)

			err := ValidateItinerary(it)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.True(t, domain.IsInvalidRequest(err))
		})
	}
}
