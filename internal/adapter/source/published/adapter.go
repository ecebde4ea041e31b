// Package published exposes a user's published itineraries as a search source.
package published

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/logger"
	"github.com/tripweave/itinerary-search/internal/infrastructure/retry"
)

// SourceName is the unique identifier for the published itinerary source.
const SourceName = "published"

// Adapter reads the requesting user's itineraries from an ItineraryStore.
type Adapter struct {
	store domain.ItineraryStore
	retry retry.Config
}

// NewAdapter creates a published source backed by store. Transient store
// failures are retried with retry.SourceConfig.
func NewAdapter(store domain.ItineraryStore) *Adapter {
	return &Adapter{store: store, retry: retry.SourceConfig()}
}

// WithRetry replaces the retry policy for store reads.
func (a *Adapter) WithRetry(cfg retry.Config) *Adapter {
	a.retry = cfg
	return a
}

// Name returns the source identifier.
func (a *Adapter) Name() string {
	return SourceName
}

// Origin returns the origin tag of published itineraries.
func (a *Adapter) Origin() domain.Origin {
	return domain.OriginPublished
}

// Itineraries returns the user's published itineraries. Anonymous searches
// have nothing published and get an empty list.
func (a *Adapter) Itineraries(ctx context.Context, userID string) ([]domain.Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceError(SourceName, err)
	}
	if strings.TrimSpace(userID) == "" {
		return []domain.Itinerary{}, nil
	}
	if a.store == nil {
		return nil, domain.NewSourceUnavailableError(SourceName)
	}

	cfg := a.retry
	cfg.RetryIf = retryable
	cfg.OnRetry = func(attempt int, err error, wait time.Duration) {
		logger.FromContext(ctx).Debug().
			Err(err).
			Str("source", SourceName).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("retrying published itinerary read")
	}

	items, err := retry.DoWithResult(ctx, func() ([]domain.Itinerary, error) {
		return a.store.ListPublished(ctx, userID)
	}, cfg)
	if err != nil {
		if errors.Is(err, context.Canceled) || retry.IsPermanent(err) {
			return nil, domain.NewSourceError(SourceName, err)
		}
		return nil, domain.NewRetryableSourceError(SourceName, err)
	}
	if items == nil {
		items = []domain.Itinerary{}
	}
	return items, nil
}

// retryable reports whether a store error is worth another read. Context
// errors mean the search or its source deadline is over.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !retry.IsPermanent(err)
}
