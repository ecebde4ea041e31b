// Package domain contains the core business entities and rules for the itinerary search system.
// These entities are source-agnostic: seed catalog entries, published itineraries and
// generator drafts all share the same shape.
package domain

import "time"

// Origin identifies which candidate source an itinerary came from.
// Ids are only unique within one origin.
type Origin string

// Known origins.
const (
	// OriginSeed marks itineraries from the immutable seed catalog
	OriginSeed Origin = "seed"

	// OriginPublished marks itineraries published by a user
	OriginPublished Origin = "published"

	// OriginGenerated marks drafts returned by the itinerary generator
	OriginGenerated Origin = "generated"
)

// Itinerary represents a multi-day travel package.
// Nested slices may be nil; a nil slice is equivalent to an empty one.
type Itinerary struct {
	// ID identifies the itinerary within its source collection
	ID int `json:"id"`

	// Name is the display title of the trip
	Name string `json:"name"`

	// Destination is a free-text place description (e.g., "Goa, India")
	Destination string `json:"destination"`

	// StartDate is the first travel day in YYYY-MM-DD format (optional)
	StartDate string `json:"startDate,omitempty"`

	// EndDate is the last travel day in YYYY-MM-DD format (optional)
	EndDate string `json:"endDate,omitempty"`

	// Vibe is the travel-style tag (e.g., "beaches", "adventure")
	Vibe string `json:"vibe,omitempty"`

	// Tags are additional style tags used for vibe matching
	Tags []string `json:"tags,omitempty"`

	// GroupSize is a human-readable group descriptor (e.g., "4-8 people")
	GroupSize string `json:"groupSize,omitempty"`

	// Description is a free-text summary of the trip
	Description string `json:"description,omitempty"`

	// Price is the precomputed total price. Nil means it must be derived from the fare tree.
	Price *float64 `json:"price,omitempty"`

	// Days is the ordered day-by-day schedule
	Days []Day `json:"days"`

	// PublishedAt is set by the itinerary store when the itinerary is published
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// Day is one day of an itinerary.
type Day struct {
	// Date is the calendar date of the day in YYYY-MM-DD format (optional)
	Date string `json:"date,omitempty"`

	// Events is the ordered list of activities for the day
	Events []Event `json:"events"`
}

// Event is a single activity within a day.
type Event struct {
	// Travel lists how the traveller gets to the event
	Travel []TravelDetail `json:"travel,omitempty"`

	// Details describes the activity
	Details EventDetails `json:"details"`

	// Fare lists the priced components of the event
	Fare []Fare `json:"fare"`

	// Mandatory is true when the event's cost is part of the base price
	Mandatory bool `json:"mandatory"`
}

// TravelDetail describes one leg of transport to an event.
type TravelDetail struct {
	// Mode is the transport mode (e.g., "flight", "cab")
	Mode string `json:"mode"`

	// Cost is the informational cost of the leg
	Cost float64 `json:"cost"`
}

// EventDetails contains the descriptive part of an event.
type EventDetails struct {
	Text            string `json:"text"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

// Fare is a single priced component of an event.
type Fare struct {
	// Type classifies the fare (e.g., "ticket", "stay", "meal")
	Type string `json:"type"`

	// Amount is the price in the catalog's implicit currency unit
	Amount float64 `json:"amount"`
}

// DateRange returns the itinerary's travel interval.
// A missing end date collapses the range to the start date and vice versa.
// ok is false when neither date can be parsed.
func (it *Itinerary) DateRange() (start, end time.Time, ok bool) {
	start, hasStart := ParseDate(it.StartDate)
	end, hasEnd := ParseDate(it.EndDate)

	switch {
	case hasStart && hasEnd:
		if end.Before(start) {
			start, end = end, start
		}
		return start, end, true
	case hasStart:
		return start, start, true
	case hasEnd:
		return end, end, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Clone returns a deep copy of the itinerary so callers can hand out
// snapshots without sharing nested slices.
func (it Itinerary) Clone() Itinerary {
	out := it

	if it.Price != nil {
		price := *it.Price
		out.Price = &price
	}
	if it.PublishedAt != nil {
		at := *it.PublishedAt
		out.PublishedAt = &at
	}
	if it.Tags != nil {
		out.Tags = append([]string(nil), it.Tags...)
	}
	if it.Days != nil {
		out.Days = make([]Day, len(it.Days))
		for i, d := range it.Days {
			out.Days[i] = d.clone()
		}
	}

	return out
}

func (d Day) clone() Day {
	out := d
	if d.Events != nil {
		out.Events = make([]Event, len(d.Events))
		for i, e := range d.Events {
			ev := e
			if e.Travel != nil {
				ev.Travel = append([]TravelDetail(nil), e.Travel...)
			}
			if e.Fare != nil {
				ev.Fare = append([]Fare(nil), e.Fare...)
			}
			out.Events[i] = ev
		}
	}
	return out
}

// Normalize replaces nil nested slices with empty ones so the tree
// serializes as arrays rather than nulls.
func (it *Itinerary) Normalize() {
	if it.Days == nil {
		it.Days = []Day{}
	}
	for i := range it.Days {
		if it.Days[i].Events == nil {
			it.Days[i].Events = []Event{}
		}
		for j := range it.Days[i].Events {
			if it.Days[i].Events[j].Fare == nil {
				it.Days[i].Events[j].Fare = []Fare{}
			}
		}
	}
}

// CloneAll deep-copies a list of itineraries.
func CloneAll(items []Itinerary) []Itinerary {
	if items == nil {
		return nil
	}
	out := make([]Itinerary, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// Float64Ptr returns a pointer to the given price value.
func Float64Ptr(v float64) *float64 {
	return &v
}
