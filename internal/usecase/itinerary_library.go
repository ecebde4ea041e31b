package usecase

import (
	"context"
	"fmt"

	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/logger"
)

// ItineraryLibraryUseCase manages the itineraries a user has published.
type ItineraryLibraryUseCase interface {
	// List returns the user's published itineraries in publish order.
	List(ctx context.Context, userID string) ([]domain.Itinerary, error)

	// Publish validates and stores an itinerary for the user.
	Publish(ctx context.Context, userID string, it domain.Itinerary, meta domain.PublishMetadata) (domain.Itinerary, error)

	// Delete removes a published itinerary. It returns
	// domain.ErrItineraryNotFound when the id is unknown for the user.
	Delete(ctx context.Context, userID string, id int) error
}

type itineraryLibraryUseCase struct {
	store domain.ItineraryStore
}

// NewItineraryLibraryUseCase creates a library use case backed by store.
func NewItineraryLibraryUseCase(store domain.ItineraryStore) ItineraryLibraryUseCase {
	return &itineraryLibraryUseCase{store: store}
}

func (uc *itineraryLibraryUseCase) List(ctx context.Context, userID string) ([]domain.Itinerary, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	items, err := uc.store.ListPublished(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list published itineraries: %w", err)
	}
	if items == nil {
		items = []domain.Itinerary{}
	}
	return items, nil
}

func (uc *itineraryLibraryUseCase) Publish(ctx context.Context, userID string, it domain.Itinerary, meta domain.PublishMetadata) (domain.Itinerary, error) {
	if err := validateUserID(userID); err != nil {
		return domain.Itinerary{}, err
	}

	draft := it.Clone()
	meta.Apply(&draft)
	if err := ValidateItinerary(draft); err != nil {
		return domain.Itinerary{}, err
	}
	draft.Normalize()

	stored, err := uc.store.Publish(ctx, userID, draft, meta)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("publish itinerary: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("user_id", userID).
		Int("itinerary_id", stored.ID).
		Str("destination", stored.Destination).
		Msg("Itinerary published")

	return stored, nil
}

func (uc *itineraryLibraryUseCase) Delete(ctx context.Context, userID string, id int) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}

	deleted, err := uc.store.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete itinerary: %w", err)
	}
	if !deleted {
		return fmt.Errorf("itinerary %d: %w", id, domain.ErrItineraryNotFound)
	}
	return nil
}

var _ ItineraryLibraryUseCase = (*itineraryLibraryUseCase)(nil)
