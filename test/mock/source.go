// Package mock provides test doubles for the itinerary search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tripweave/itinerary-search/internal/domain"
)

// Source is a configurable mock implementation of domain.ItinerarySource.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and partial failures.
type Source struct {
	name        string
	origin      domain.Origin
	itineraries []domain.Itinerary
	perUser     map[string][]domain.Itinerary
	err         error
	delay       time.Duration

	mu        sync.Mutex
	callCount int
	users     []string
}

// NewSource creates a new mock source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{
		name:   name,
		origin: domain.OriginSeed,
	}
}

// WithOrigin sets the origin tag reported by the source.
func (s *Source) WithOrigin(origin domain.Origin) *Source {
	s.origin = origin
	return s
}

// WithItineraries configures the source to return the given itineraries to every user.
func (s *Source) WithItineraries(items []domain.Itinerary) *Source {
	s.itineraries = items
	return s
}

// WithUserItineraries configures itineraries returned only to userID.
func (s *Source) WithUserItineraries(userID string, items []domain.Itinerary) *Source {
	if s.perUser == nil {
		s.perUser = make(map[string][]domain.Itinerary)
	}
	s.perUser[userID] = items
	return s
}

// WithError configures the source to return the given error.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Name returns the source's unique identifier.
func (s *Source) Name() string {
	return s.name
}

// Origin returns the configured origin tag.
func (s *Source) Origin() domain.Origin {
	return s.origin
}

// Itineraries implements domain.ItinerarySource.Itineraries.
// It respects context cancellation, applies the configured delay,
// and returns a copy of the configured itineraries or the error.
func (s *Source) Itineraries(ctx context.Context, userID string) ([]domain.Itinerary, error) {
	s.mu.Lock()
	s.callCount++
	s.users = append(s.users, userID)
	s.mu.Unlock()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.err != nil {
		return nil, s.err
	}

	if items, ok := s.perUser[userID]; ok {
		return domain.CloneAll(items), nil
	}
	return domain.CloneAll(s.itineraries), nil
}

// CallCount returns the number of times Itineraries was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Users returns the user ids passed to Itineraries, in call order.
func (s *Source) Users() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.users...)
}

// Reset resets the call history.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
	s.users = nil
}

// Ensure Source implements domain.ItinerarySource at compile time.
var _ domain.ItinerarySource = (*Source)(nil)

// sampleTrips are destinations used by SampleItineraries, cycled in order.
var sampleTrips = []struct {
	destination string
	vibe        string
}{
	{"Goa, India", "beaches"},
	{"Manali, India", "adventure"},
	{"Kerala, India", "wellness"},
	{"Jaipur, India", "culture"},
}

// SampleItineraries returns count itineraries with ids starting at 1.
// Each has two days, one mandatory and one optional event, and no stored
// price so the total is derived from fares: 1000*(i+1) + 500.
func SampleItineraries(prefix string, count int) []domain.Itinerary {
	items := make([]domain.Itinerary, count)
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		trip := sampleTrips[i%len(sampleTrips)]
		first := start.AddDate(0, 0, i*7)
		second := first.AddDate(0, 0, 1)

		items[i] = domain.Itinerary{
			ID:          i + 1,
			Name:        fmt.Sprintf("%s trip %d", prefix, i+1),
			Destination: trip.destination,
			StartDate:   first.Format(domain.DateLayout),
			EndDate:     second.Format(domain.DateLayout),
			Vibe:        trip.vibe,
			GroupSize:   "2-4 people",
			Days: []domain.Day{
				{
					Date: first.Format(domain.DateLayout),
					Events: []domain.Event{{
						Details:   domain.EventDetails{Text: "Check in", DurationMinutes: 60},
						Travel:    []domain.TravelDetail{{Mode: "cab", Cost: 300}},
						Fare:      []domain.Fare{{Type: "stay", Amount: float64(1000 * (i + 1))}},
						Mandatory: true,
					}},
				},
				{
					Date: second.Format(domain.DateLayout),
					Events: []domain.Event{{
						Details: domain.EventDetails{Text: "Guided walk", DurationMinutes: 120},
						Fare:    []domain.Fare{{Type: "tour", Amount: 500}},
					}},
				},
			},
		}
	}

	return items
}
