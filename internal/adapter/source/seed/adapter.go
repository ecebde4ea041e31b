// Package seed serves the immutable seed catalog as an itinerary source.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tripweave/itinerary-search/internal/domain"
)

// SourceName is the unique identifier for the seed catalog source.
const SourceName = "seed_catalog"

//go:embed catalog.json
var embeddedCatalog []byte

// Adapter loads the seed catalog once and hands out copies.
type Adapter struct {
	path string

	mu     sync.Mutex
	items  []domain.Itinerary
	loaded bool
}

// NewAdapter creates a seed source. An empty path uses the catalog
// compiled into the binary.
func NewAdapter(path string) *Adapter {
	return &Adapter{path: path}
}

// Name returns the source identifier.
func (a *Adapter) Name() string {
	return SourceName
}

// Origin returns the origin tag of seed itineraries.
func (a *Adapter) Origin() domain.Origin {
	return domain.OriginSeed
}

// Itineraries returns a copy of the catalog. The seed catalog is the same
// for every user.
func (a *Adapter) Itineraries(ctx context.Context, _ string) ([]domain.Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceError(SourceName, err)
	}

	items, err := a.load()
	if err != nil {
		return nil, err
	}
	return domain.CloneAll(items), nil
}

// Load decodes the catalog eagerly so startup fails fast on a bad file.
// It returns the number of itineraries loaded.
func (a *Adapter) Load() (int, error) {
	items, err := a.load()
	return len(items), err
}

// load decodes the catalog on first use. Failures are not cached so a
// missing file can be fixed without a restart.
func (a *Adapter) load() ([]domain.Itinerary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loaded {
		return a.items, nil
	}

	data := embeddedCatalog
	if a.path != "" {
		b, err := os.ReadFile(a.path)
		if err != nil {
			return nil, domain.NewRetryableSourceError(SourceName, fmt.Errorf("read catalog: %w", err))
		}
		data = b
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, domain.NewSourceError(SourceName, fmt.Errorf("decode catalog: %w", err))
	}

	items, skipped := normalize(file.Itineraries)
	for _, err := range skipped {
		log.Warn().Err(err).Str("source", SourceName).Msg("skipping seed catalog entry")
	}

	a.items = items
	a.loaded = true
	return a.items, nil
}
