package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tripweave/itinerary-search/internal/domain"
)

// DraftUseCase turns a trip brief into a priced itinerary draft.
type DraftUseCase interface {
	Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Draft, error)
}

type draftUseCase struct {
	generator domain.ItineraryGenerator
}

// NewDraftUseCase creates a draft use case. A nil generator makes every
// call fail with domain.ErrGeneratorUnavailable.
func NewDraftUseCase(generator domain.ItineraryGenerator) DraftUseCase {
	return &draftUseCase{generator: generator}
}

func (uc *draftUseCase) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Draft, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, domain.NewValidationError("destination", "is required")
	}
	if req.Budget != nil && *req.Budget < 0 {
		return nil, domain.NewValidationError("budget", "must not be negative")
	}
	if uc.generator == nil {
		return nil, domain.ErrGeneratorUnavailable
	}

	generated, err := uc.generator.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrGeneratorUnavailable) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrGeneratorUnavailable, err)
	}
	if generated == nil {
		return nil, fmt.Errorf("%w: empty draft", domain.ErrGeneratorUnavailable)
	}

	draft := &domain.Draft{GeneratedItinerary: *generated}
	draft.Itinerary = generated.Itinerary.Clone()
	draft.Itinerary.Normalize()
	if draft.Itinerary.Destination == "" {
		draft.Itinerary.Destination = req.Destination
	}
	if draft.HotelStays == nil {
		draft.HotelStays = []domain.HotelStay{}
	}
	draft.Pricing = CalculatePriceBreakdown(draft.Itinerary)

	return draft, nil
}

var _ DraftUseCase = (*draftUseCase)(nil)
