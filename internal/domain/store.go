package domain

//go:generate mockgen -source=store.go -destination=mock_store.go -package=domain

import "context"

// PublishMetadata carries the user-supplied details attached when an
// itinerary is published. Empty fields leave the itinerary untouched.
type PublishMetadata struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	GroupSize   string   `json:"groupSize,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Apply copies the non-empty metadata fields onto the itinerary.
func (m PublishMetadata) Apply(it *Itinerary) {
	if m.Name != "" {
		it.Name = m.Name
	}
	if m.Description != "" {
		it.Description = m.Description
	}
	if m.GroupSize != "" {
		it.GroupSize = m.GroupSize
	}
	if len(m.Tags) > 0 {
		it.Tags = append([]string(nil), m.Tags...)
	}
}

// ItineraryStore persists the itineraries a user has published.
type ItineraryStore interface {
	// ListPublished returns a snapshot of the user's published itineraries
	// in publish order.
	ListPublished(ctx context.Context, userID string) ([]Itinerary, error)

	// Publish stores the itinerary for the user, assigning a new id and
	// publish timestamp, and returns the stored record.
	Publish(ctx context.Context, userID string, it Itinerary, meta PublishMetadata) (Itinerary, error)

	// Delete removes one published itinerary. It reports false when the
	// itinerary did not exist.
	Delete(ctx context.Context, userID string, id int) (bool, error)
}
