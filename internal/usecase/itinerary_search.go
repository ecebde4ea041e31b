package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/logger"
)

// ItinerarySearchUseCase defines the interface for itinerary search operations.
type ItinerarySearchUseCase interface {
	// Search gathers candidates from every source, applies the hard filters,
	// scores and sorts the survivors. When the filters remove every
	// candidate the full snapshot is returned instead.
	Search(ctx context.Context, userID string, criteria domain.SearchCriteria) (*domain.SearchResponse, error)
}

type itinerarySearchUseCase struct {
	sources       []domain.ItinerarySource
	globalTimeout time.Duration
	sourceTimeout time.Duration
}

// NewItinerarySearchUseCase creates a search use case over the given
// sources. Source order is the tie-break order of equal scores.
// If config is nil, default timeout values are used.
func NewItinerarySearchUseCase(sources []domain.ItinerarySource, config *Config) ItinerarySearchUseCase {
	cfg := config.merge()

	return &itinerarySearchUseCase{
		sources:       sources,
		globalTimeout: cfg.GlobalTimeout,
		sourceTimeout: cfg.SourceTimeout,
	}
}

// Search implements ItinerarySearchUseCase.Search.
func (uc *itinerarySearchUseCase) Search(ctx context.Context, userID string, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	startTime := time.Now()
	log := logger.FromContext(ctx)

	if len(uc.sources) == 0 {
		return nil, domain.ErrAllSourcesFailed
	}

	snapshotCtx, cancel := context.WithTimeout(ctx, uc.globalTimeout)
	defer cancel()

	results := uc.snapshot(snapshotCtx, userID)

	queried := make([]string, 0, len(results))
	failed := make([]string, 0)
	var errs []error
	var candidates []domain.Candidate

	for _, r := range results {
		queried = append(queried, r.Source)
		if !r.IsSuccess() {
			failed = append(failed, r.Source)
			errs = append(errs, r.Error)
			log.Warn().Err(r.Error).Str("source", r.Source).Msg("Itinerary source failed")
			continue
		}
		for _, it := range r.Itineraries {
			candidates = append(candidates, domain.Candidate{Itinerary: it, Origin: r.Origin})
		}
	}

	if len(failed) == len(results) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrAllSourcesFailed, errors.Join(errs...))
	}

	filtered := ApplyFilters(candidates, &criteria)
	fallback := false
	if len(filtered) == 0 && len(candidates) > 0 {
		filtered = candidates
		fallback = true
		log.Debug().Int("candidates", len(candidates)).Msg("No itinerary matched the filters, returning all candidates")
	}

	ranked := Rank(filtered, &criteria)

	log.Debug().
		Int("candidates", len(candidates)).
		Int("results", len(ranked)).
		Bool("fallback", fallback).
		Msg("Itinerary search completed")

	return &domain.SearchResponse{
		Criteria: criteria,
		Results:  ranked,
		Metadata: domain.SearchMetadata{
			TotalResults:   len(ranked),
			CandidateCount: len(candidates),
			Fallback:       fallback,
			SourcesQueried: queried,
			SourcesFailed:  failed,
			SearchTimeMs:   time.Since(startTime).Milliseconds(),
		},
	}, nil
}

// snapshot queries every source concurrently. Results are indexed by
// source position so the combined order does not depend on timing.
func (uc *itinerarySearchUseCase) snapshot(ctx context.Context, userID string) []domain.SourceResult {
	results := make([]domain.SourceResult, len(uc.sources))

	var g errgroup.Group
	for i, source := range uc.sources {
		g.Go(func() error {
			results[i] = uc.querySource(ctx, source, userID)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

type sourceOutcome struct {
	itineraries []domain.Itinerary
	err         error
}

// querySource queries a single source with timeout and panic recovery.
// A source that ignores cancellation is abandoned once the timeout fires.
func (uc *itinerarySearchUseCase) querySource(ctx context.Context, source domain.ItinerarySource, userID string) domain.SourceResult {
	ctx, cancel := context.WithTimeout(ctx, uc.sourceTimeout)
	defer cancel()

	name := source.Name()
	result := domain.SourceResult{Source: name, Origin: source.Origin()}

	done := make(chan sourceOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- sourceOutcome{err: fmt.Errorf("source panic: %v", r)}
			}
		}()
		items, err := source.Itineraries(ctx, userID)
		done <- sourceOutcome{itineraries: items, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			if errors.Is(out.err, context.DeadlineExceeded) {
				result.Error = domain.NewSourceTimeoutError(name)
			} else {
				result.Error = domain.NewSourceError(name, out.err)
			}
			return result
		}
		result.Itineraries = out.itineraries
	case <-ctx.Done():
		result.Error = domain.NewSourceTimeoutError(name)
	}

	return result
}

var _ ItinerarySearchUseCase = (*itinerarySearchUseCase)(nil)
