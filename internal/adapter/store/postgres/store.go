// Package postgres persists published itineraries in PostgreSQL.
// The itinerary tree is stored as a JSONB document; the user id, the
// per-user id and the publish time live in their own columns.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/timeutil"
)

// Querier abstracts the subset of pgxpool.Pool used by Store.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store is a PostgreSQL ItineraryStore.
type Store struct {
	q     Querier
	clock timeutil.Clock
}

// NewStore constructs a Store backed by the given pool.
func NewStore(pool *pgxpool.Pool, clock timeutil.Clock) *Store {
	return NewStoreWithQuerier(pool, clock)
}

// NewStoreWithQuerier constructs a Store with a custom Querier (for tests).
func NewStoreWithQuerier(q Querier, clock timeutil.Clock) *Store {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Store{q: q, clock: clock}
}

// ListPublished returns the user's itineraries ordered by id, which is
// also publish order.
func (s *Store) ListPublished(ctx context.Context, userID string) ([]domain.Itinerary, error) {
	const q = `
		SELECT id, body, published_at
		FROM published_itineraries
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := s.q.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("querying published itineraries for user %s: %w", userID, err)
	}
	defer rows.Close()

	results := []domain.Itinerary{}
	for rows.Next() {
		var (
			id          int
			body        []byte
			publishedAt time.Time
		)
		if err := rows.Scan(&id, &body, &publishedAt); err != nil {
			return nil, fmt.Errorf("scanning published itinerary row: %w", err)
		}

		var it domain.Itinerary
		if err := json.Unmarshal(body, &it); err != nil {
			return nil, fmt.Errorf("unmarshaling itinerary %d for user %s: %w", id, userID, err)
		}
		it.ID = id
		at := publishedAt.UTC()
		it.PublishedAt = &at
		it.Normalize()

		results = append(results, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating published itinerary rows: %w", err)
	}

	return results, nil
}

// Publish inserts the itinerary under the next id of the user's counter.
// The counter only grows, so deleted ids are never handed out again.
func (s *Store) Publish(ctx context.Context, userID string, it domain.Itinerary, meta domain.PublishMetadata) (domain.Itinerary, error) {
	record := it.Clone()
	meta.Apply(&record)
	record.Normalize()
	record.ID = 0
	record.PublishedAt = nil

	body, err := json.Marshal(record)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("marshaling itinerary for user %s: %w", userID, err)
	}

	const q = `
		WITH next AS (
			INSERT INTO itinerary_id_counters (user_id, last_id)
			VALUES ($1, 1)
			ON CONFLICT (user_id) DO UPDATE
			SET last_id = itinerary_id_counters.last_id + 1
			RETURNING last_id
		)
		INSERT INTO published_itineraries (user_id, id, body, published_at)
		SELECT $1, last_id, $2, $3 FROM next
		RETURNING id
	`

	publishedAt := s.clock.Now().UTC()
	var id int
	if err := s.q.QueryRow(ctx, q, userID, body, publishedAt).Scan(&id); err != nil {
		return domain.Itinerary{}, fmt.Errorf("inserting itinerary for user %s: %w", userID, err)
	}

	record.ID = id
	record.PublishedAt = &publishedAt
	return record, nil
}

// Delete removes one itinerary. It reports false when no row matched.
func (s *Store) Delete(ctx context.Context, userID string, id int) (bool, error) {
	const q = `DELETE FROM published_itineraries WHERE user_id = $1 AND id = $2`

	tag, err := s.q.Exec(ctx, q, userID, id)
	if err != nil {
		return false, fmt.Errorf("deleting itinerary %d for user %s: %w", id, userID, err)
	}
	return tag.RowsAffected() > 0, nil
}
