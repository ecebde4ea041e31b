package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := ParseDate(s)
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func TestMatchesDestination(t *testing.T) {
	goa := Itinerary{Destination: "Goa, India"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query matches", query: "", want: true},
		{name: "whitespace query matches", query: "   ", want: true},
		{name: "exact match", query: "Goa, India", want: true},
		{name: "substring match", query: "goa", want: true},
		{name: "case-insensitive match", query: "INDIA", want: true},
		{name: "no match", query: "Kerala", want: false},
		{name: "query longer than destination", query: "Goa, India and beyond", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesDestination(goa, tt.query))
		})
	}
}

func TestOverlapsDates(t *testing.T) {
	it := Itinerary{StartDate: "2025-03-10", EndDate: "2025-03-15"}

	tests := []struct {
		name       string
		itinerary  Itinerary
		start, end string
		want       bool
	}{
		{name: "fully inside", itinerary: it, start: "2025-03-11", end: "2025-03-12", want: true},
		{name: "touches start boundary", itinerary: it, start: "2025-03-01", end: "2025-03-10", want: true},
		{name: "touches end boundary", itinerary: it, start: "2025-03-15", end: "2025-03-20", want: true},
		{name: "before", itinerary: it, start: "2025-02-01", end: "2025-03-09", want: false},
		{name: "after", itinerary: it, start: "2025-03-16", end: "2025-03-20", want: false},
		{name: "reversed query range", itinerary: it, start: "2025-03-12", end: "2025-03-08", want: true},
		{name: "itinerary without dates", itinerary: Itinerary{}, start: "2025-03-11", end: "2025-03-12", want: false},
		{name: "itinerary with start only", itinerary: Itinerary{StartDate: "2025-03-11"}, start: "2025-03-11", end: "2025-03-12", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapsDates(tt.itinerary, date(tt.start), date(tt.end)))
		})
	}
}

func TestBudgetRange_Contains(t *testing.T) {
	tests := []struct {
		name   string
		budget *BudgetRange
		price  float64
		want   bool
	}{
		{name: "nil range contains all", budget: nil, price: 99999, want: true},
		{name: "within range", budget: &BudgetRange{Min: Float64Ptr(15000), Max: Float64Ptr(20000)}, price: 18300, want: true},
		{name: "on min boundary", budget: &BudgetRange{Min: Float64Ptr(15000)}, price: 15000, want: true},
		{name: "on max boundary", budget: &BudgetRange{Max: Float64Ptr(20000)}, price: 20000, want: true},
		{name: "below min", budget: &BudgetRange{Min: Float64Ptr(15000)}, price: 14999, want: false},
		{name: "above max", budget: &BudgetRange{Max: Float64Ptr(20000)}, price: 35000, want: false},
		{name: "min greater than max contains nothing", budget: &BudgetRange{Min: Float64Ptr(30000), Max: Float64Ptr(10000)}, price: 20000, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.budget.Contains(tt.price))
		})
	}
}

func TestSearchCriteria_MatchesCriteria(t *testing.T) {
	goa := Itinerary{Destination: "Goa, India", StartDate: "2025-03-10", EndDate: "2025-03-15"}

	tests := []struct {
		name     string
		criteria *SearchCriteria
		price    float64
		want     bool
	}{
		{name: "nil criteria matches", criteria: nil, price: 18300, want: true},
		{name: "empty criteria matches", criteria: &SearchCriteria{}, price: 18300, want: true},
		{name: "destination matches", criteria: &SearchCriteria{Destination: "goa"}, price: 18300, want: true},
		{name: "destination mismatch", criteria: &SearchCriteria{Destination: "kerala"}, price: 18300, want: false},
		{
			name:     "date range overlaps",
			criteria: &SearchCriteria{StartDate: datePtr("2025-03-12"), EndDate: datePtr("2025-03-20")},
			price:    18300,
			want:     true,
		},
		{
			name:     "date range disjoint",
			criteria: &SearchCriteria{StartDate: datePtr("2025-06-01"), EndDate: datePtr("2025-06-05")},
			price:    18300,
			want:     false,
		},
		{
			name:     "single date bound does not filter",
			criteria: &SearchCriteria{StartDate: datePtr("2025-06-01")},
			price:    18300,
			want:     true,
		},
		{
			name:     "budget in range",
			criteria: &SearchCriteria{Budget: &BudgetRange{Min: Float64Ptr(15000), Max: Float64Ptr(20000)}},
			price:    18300,
			want:     true,
		},
		{
			name:     "budget exceeded",
			criteria: &SearchCriteria{Budget: &BudgetRange{Max: Float64Ptr(10000)}},
			price:    18300,
			want:     false,
		},
		{
			name:     "vibe never filters",
			criteria: &SearchCriteria{Vibe: "nightlife"},
			price:    18300,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.MatchesCriteria(goa, tt.price))
		})
	}
}
