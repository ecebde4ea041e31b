// Package memory keeps published itineraries in process memory.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/timeutil"
)

// Store is an in-memory ItineraryStore. Ids are assigned per user
// starting at 1 and are never reused.
type Store struct {
	clock timeutil.Clock

	mu     sync.RWMutex
	items  map[string][]domain.Itinerary
	nextID map[string]int
}

// NewStore creates an empty store. A nil clock uses the real clock.
func NewStore(clock timeutil.Clock) *Store {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Store{
		clock:  clock,
		items:  make(map[string][]domain.Itinerary),
		nextID: make(map[string]int),
	}
}

// ListPublished returns a copy of the user's itineraries in publish order.
func (s *Store) ListPublished(ctx context.Context, userID string) ([]domain.Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := domain.CloneAll(s.items[userKey(userID)])
	if items == nil {
		items = []domain.Itinerary{}
	}
	return items, nil
}

// Publish stores a copy of it with metadata applied and a fresh id.
func (s *Store) Publish(ctx context.Context, userID string, it domain.Itinerary, meta domain.PublishMetadata) (domain.Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return domain.Itinerary{}, err
	}

	record := it.Clone()
	meta.Apply(&record)
	record.Normalize()
	now := s.clock.Now()
	record.PublishedAt = &now

	key := userKey(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID[key]++
	record.ID = s.nextID[key]
	s.items[key] = append(s.items[key], record)

	return record.Clone(), nil
}

// Delete removes the itinerary with the given id from the user's list.
func (s *Store) Delete(ctx context.Context, userID string, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	key := userKey(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items[key]
	for i := range items {
		if items[i].ID == id {
			s.items[key] = append(items[:i:i], items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Len returns the number of itineraries the user has published.
func (s *Store) Len(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items[userKey(userID)])
}

func userKey(userID string) string {
	return strings.TrimSpace(userID)
}
