package seed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/timeutil"
)

var (
	errMissingID          = errors.New("id must be positive")
	errMissingTitle       = errors.New("title is required")
	errMissingDestination = errors.New("destination is required")
)

// normalize converts catalog entries to domain itineraries.
// Entries that cannot be normalized and duplicate ids are skipped; the
// returned list keeps catalog order.
func normalize(entries []catalogEntry) ([]domain.Itinerary, []error) {
	result := make([]domain.Itinerary, 0, len(entries))
	seen := make(map[int]struct{}, len(entries))
	var skipped []error

	for i, e := range entries {
		it, err := normalizeEntry(e)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		if _, dup := seen[it.ID]; dup {
			skipped = append(skipped, fmt.Errorf("entry %d: duplicate id %d", i, it.ID))
			continue
		}
		seen[it.ID] = struct{}{}
		result = append(result, it)
	}

	return result, skipped
}

// normalizeEntry converts a single catalog entry.
func normalizeEntry(e catalogEntry) (domain.Itinerary, error) {
	if e.ID <= 0 {
		return domain.Itinerary{}, errMissingID
	}
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return domain.Itinerary{}, errMissingTitle
	}
	destination := strings.TrimSpace(e.Destination)
	if destination == "" {
		return domain.Itinerary{}, errMissingDestination
	}

	it := domain.Itinerary{
		ID:          e.ID,
		Name:        title,
		Destination: destination,
		StartDate:   normalizeDate(e.Dates.Start),
		EndDate:     normalizeDate(e.Dates.End),
		Vibe:        strings.ToLower(strings.TrimSpace(e.Vibe)),
		Tags:        normalizeTags(e.Tags),
		GroupSize:   strings.TrimSpace(e.GroupSize),
		Description: strings.TrimSpace(e.Summary),
		Days:        make([]domain.Day, 0, len(e.Days)),
	}

	// A negative catalog price is treated as absent so the fare tree decides.
	if e.Price != nil && *e.Price >= 0 {
		it.Price = domain.Float64Ptr(*e.Price)
	}

	for _, d := range e.Days {
		it.Days = append(it.Days, normalizeDay(d))
	}

	return it, nil
}

func normalizeDay(d catalogDay) domain.Day {
	day := domain.Day{
		Date:   normalizeDate(d.Date),
		Events: make([]domain.Event, 0, len(d.Events)),
	}

	for _, e := range d.Events {
		ev := domain.Event{
			Details: domain.EventDetails{
				Text:            strings.TrimSpace(e.Title),
				Description:     strings.TrimSpace(e.Description),
				DurationMinutes: e.DurationMinutes,
			},
			Mandatory: e.Mandatory,
			Fare:      make([]domain.Fare, 0, len(e.Fare)),
		}
		for _, t := range e.Travel {
			ev.Travel = append(ev.Travel, domain.TravelDetail{Mode: strings.ToLower(t.Mode), Cost: t.Cost})
		}
		for _, f := range e.Fare {
			ev.Fare = append(ev.Fare, domain.Fare{Type: strings.ToLower(f.Type), Amount: f.Amount})
		}
		day.Events = append(day.Events, ev)
	}

	return day
}

// normalizeDate rewrites any accepted date format as YYYY-MM-DD.
// Unparseable dates are dropped, which leaves the itinerary undated.
func normalizeDate(s string) string {
	t, ok := domain.ParseDate(s)
	if !ok {
		return ""
	}
	return timeutil.FormatDate(t)
}

// normalizeTags lowercases tags and removes blanks and duplicates.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
