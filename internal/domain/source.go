package domain

//go:generate mockgen -source=source.go -destination=mock_source.go -package=domain

import (
	"context"
	"sync"
)

// ItinerarySource supplies search candidates.
// Implementations must return a snapshot: callers may keep the slice while
// the underlying collection changes.
type ItinerarySource interface {
	// Name returns the unique identifier of the source.
	Name() string

	// Origin returns the origin tag applied to every itinerary of the source.
	Origin() Origin

	// Itineraries returns the candidates visible to the given user.
	// userID may be empty for anonymous searches.
	Itineraries(ctx context.Context, userID string) ([]Itinerary, error)
}

// SourceRegistry keeps sources in registration order.
// Registration order is the tie-break order of search results.
type SourceRegistry struct {
	mu      sync.RWMutex
	sources []ItinerarySource
	index   map[string]int
}

// NewSourceRegistry creates an empty registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{index: make(map[string]int)}
}

// Register adds a source. A source with an existing name replaces the
// previous one in place. Nil sources are ignored.
func (r *SourceRegistry) Register(s ItinerarySource) {
	if s == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[s.Name()]; ok {
		r.sources[i] = s
		return
	}
	r.index[s.Name()] = len(r.sources)
	r.sources = append(r.sources, s)
}

// Get returns the source with the given name, or nil.
func (r *SourceRegistry) Get(name string) ItinerarySource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.index[name]; ok {
		return r.sources[i]
	}
	return nil
}

// GetAll returns all sources in registration order.
func (r *SourceRegistry) GetAll() []ItinerarySource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ItinerarySource, len(r.sources))
	copy(out, r.sources)
	return out
}

// Names returns the source names in registration order.
func (r *SourceRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.sources))
	for i, s := range r.sources {
		names[i] = s.Name()
	}
	return names
}
