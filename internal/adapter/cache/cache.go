// Package cache puts a Redis read-through cache in front of an ItineraryStore.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/logger"
)

// DefaultTTL is used when a non-positive TTL is configured.
const DefaultTTL = 5 * time.Minute

const (
	keyPrefix = "itineraries:published:"
	genPrefix = "itineraries:published:gen:"
)

// Cache stores per-user itinerary lists in Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with the given TTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Key returns the Redis key holding the user's published list.
func Key(userID string) string {
	return keyPrefix + strings.TrimSpace(userID)
}

// GenKey returns the Redis key holding the user's invalidation counter.
func GenKey(userID string) string {
	return genPrefix + strings.TrimSpace(userID)
}

// Generation returns the user's invalidation counter, zero if it was never
// bumped.
func (c *Cache) Generation(ctx context.Context, userID string) (int64, error) {
	gen, err := c.client.Get(ctx, GenKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("cache generation for user %s: %w", userID, err)
	}
	return gen, nil
}

// Get returns the cached list. It returns nil, nil on a cache miss.
func (c *Cache) Get(ctx context.Context, userID string) ([]domain.Itinerary, error) {
	val, err := c.client.Get(ctx, Key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for user %s: %w", userID, err)
	}

	items := []domain.Itinerary{}
	if err := json.Unmarshal(val, &items); err != nil {
		return nil, fmt.Errorf("unmarshaling cached itineraries for user %s: %w", userID, err)
	}
	return items, nil
}

// Set stores the list with the configured TTL.
func (c *Cache) Set(ctx context.Context, userID string, items []domain.Itinerary) error {
	b, err := marshal(userID, items)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, Key(userID), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for user %s: %w", userID, err)
	}
	return nil
}

// SetIfGeneration stores the list only while the user's counter still equals
// gen. A list read before an invalidation is dropped instead of cached. It
// reports whether the list was stored.
func (c *Cache) SetIfGeneration(ctx context.Context, userID string, gen int64, items []domain.Itinerary) (bool, error) {
	b, err := marshal(userID, items)
	if err != nil {
		return false, err
	}

	genKey := GenKey(userID)
	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, Key(userID), b, c.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, genKey)

	switch {
	case errors.Is(err, redis.TxFailedErr):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("cache set for user %s: %w", userID, err)
	}
	return stored, nil
}

// Invalidate bumps the user's counter and drops the cached list in one
// transaction.
func (c *Cache) Invalidate(ctx context.Context, userID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenKey(userID))
		pipe.Del(ctx, Key(userID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache invalidate for user %s: %w", userID, err)
	}
	return nil
}

func marshal(userID string, items []domain.Itinerary) ([]byte, error) {
	if items == nil {
		items = []domain.Itinerary{}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshaling itineraries for user %s: %w", userID, err)
	}
	return b, nil
}

// Store decorates an ItineraryStore with the cache. Cache failures are
// logged and the underlying store is used directly.
type Store struct {
	next  domain.ItineraryStore
	cache *Cache
}

// NewStore wraps next with cache.
func NewStore(next domain.ItineraryStore, cache *Cache) *Store {
	return &Store{next: next, cache: cache}
}

// ListPublished serves the list from Redis, filling it from the
// underlying store on a miss. The fill is skipped when a publish or delete
// invalidated the user's list while the store was being read.
func (s *Store) ListPublished(ctx context.Context, userID string) ([]domain.Itinerary, error) {
	log := logger.FromContext(ctx)

	items, err := s.cache.Get(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("itinerary cache read failed")
	}
	if items != nil {
		return items, nil
	}

	gen, genErr := s.cache.Generation(ctx, userID)
	if genErr != nil {
		log.Warn().Err(genErr).Str("user_id", userID).Msg("itinerary cache read failed")
	}

	items, err = s.next.ListPublished(ctx, userID)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		return items, nil
	}

	stored, err := s.cache.SetIfGeneration(ctx, userID, gen, items)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("user_id", userID).Msg("itinerary cache write failed")
	case !stored:
		log.Debug().Str("user_id", userID).Msg("itinerary list changed during read, cache fill skipped")
	}
	return items, nil
}

// Publish writes through to the underlying store and drops the cached list.
func (s *Store) Publish(ctx context.Context, userID string, it domain.Itinerary, meta domain.PublishMetadata) (domain.Itinerary, error) {
	out, err := s.next.Publish(ctx, userID, it, meta)
	if err != nil {
		return domain.Itinerary{}, err
	}
	s.invalidate(ctx, userID)
	return out, nil
}

// Delete deletes in the underlying store and drops the cached list.
func (s *Store) Delete(ctx context.Context, userID string, id int) (bool, error) {
	ok, err := s.next.Delete(ctx, userID, id)
	if err != nil {
		return false, err
	}
	if ok {
		s.invalidate(ctx, userID)
	}
	return ok, nil
}

func (s *Store) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("itinerary cache invalidation failed")
	}
}
