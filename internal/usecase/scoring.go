package usecase

import (
	"math"
	"strings"
	"unicode"

	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/timeutil"
)

// Relevance weights. They always sum to MaxScore, so a criterion that is
// absent from the query still contributes its full weight.
const (
	WeightDestination = 30.0
	WeightDates       = 20.0
	WeightBudget      = 25.0
	WeightVibe        = 25.0

	// MaxScore is the fixed denominator of the relevance scale.
	MaxScore = 100
)

// Destination tiers.
const (
	destinationContains    = 25.0
	destinationOverlapBase = 5.0
	destinationOverlapSpan = 15.0
	destinationFloor       = 5.0

	// minQueryWordLen skips short words such as "in" or "of".
	minQueryWordLen = 3
)

// Date tiers.
const (
	dateGapHorizonDays = 30
	dateGapFloor       = 2.0
	undatedItinerary   = WeightDates / 2
)

// Budget and vibe tiers.
const (
	budgetBelowMinFloor = 5.0
	relatedVibe         = 12.0
)

// relatedVibes lists the travel styles considered close to each vibe.
var relatedVibes = map[string][]string{
	"adventure": {"nature", "wildlife", "trekking"},
	"beaches":   {"nature", "wellness", "luxury", "nightlife"},
	"cultural":  {"heritage", "food", "spiritual"},
	"family":    {"nature", "beaches", "cultural"},
	"food":      {"cultural", "nightlife"},
	"heritage":  {"cultural", "spiritual"},
	"luxury":    {"wellness", "romantic", "beaches"},
	"nature":    {"adventure", "wellness", "wildlife", "beaches"},
	"nightlife": {"beaches", "food"},
	"romantic":  {"luxury", "beaches", "wellness"},
	"spiritual": {"wellness", "cultural", "heritage"},
	"trekking":  {"adventure", "nature"},
	"wellness":  {"nature", "spiritual", "luxury", "beaches"},
	"wildlife":  {"nature", "adventure"},
}

// ScoreItinerary computes the 0-100 relevance of an itinerary for the
// criteria, given its resolved total price.
//
//	Score = round(Destination + Dates + Budget + Vibe), clamped to [0, 100]
//
// Each component ranges from 0 to its weight. A nil or empty criteria
// scores every itinerary 100. The function is pure: the same inputs
// always give the same score.
func ScoreItinerary(it domain.Itinerary, criteria *domain.SearchCriteria, totalPrice float64) (int, domain.ScoreBreakdown) {
	if criteria == nil {
		criteria = &domain.SearchCriteria{}
	}

	breakdown := domain.ScoreBreakdown{
		Destination: scoreDestination(it.Destination, criteria.Destination),
		Dates:       scoreDates(it, criteria),
		Budget:      scoreBudget(totalPrice, criteria.Budget),
		Vibe:        scoreVibe(it, criteria.Vibe),
	}

	score := int(math.Round(breakdown.Total()))
	switch {
	case score < 0:
		score = 0
	case score > MaxScore:
		score = MaxScore
	}

	return score, breakdown
}

// scoreDestination grades textual closeness of destination and query.
//
//   - exact match (case-insensitive, trimmed): 30
//   - either string contains the other: 25
//   - word overlap: 5 + 15 × matched/queryWords, only words of 3+ letters
//   - otherwise: 5
func scoreDestination(destination, query string) float64 {
	q := normalizeText(query)
	if q == "" {
		return WeightDestination
	}

	d := normalizeText(destination)
	if d == "" {
		return destinationFloor
	}
	if d == q {
		return WeightDestination
	}
	if strings.Contains(d, q) || strings.Contains(q, d) {
		return destinationContains
	}

	words := make([]string, 0, 4)
	for _, w := range splitWords(q) {
		if len([]rune(w)) >= minQueryWordLen {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return destinationFloor
	}

	destWords := make(map[string]struct{})
	for _, w := range splitWords(d) {
		destWords[w] = struct{}{}
	}

	matched := 0
	for _, w := range words {
		if _, ok := destWords[w]; ok {
			matched++
		}
	}
	if matched == 0 {
		return destinationFloor
	}

	return destinationOverlapBase + destinationOverlapSpan*float64(matched)/float64(len(words))
}

// scoreDates grades how close the itinerary's dates are to the query window.
// The score decays linearly with the gap in days and reaches 0 after 30 days.
func scoreDates(it domain.Itinerary, criteria *domain.SearchCriteria) float64 {
	qStart, qEnd, ok := criteria.DateWindow()
	if !ok {
		return WeightDates
	}

	itStart, itEnd, ok := it.DateRange()
	if !ok {
		return undatedItinerary
	}

	gap := timeutil.GapDays(itStart, itEnd, qStart, qEnd)
	switch {
	case gap <= 0:
		return WeightDates
	case gap > dateGapHorizonDays:
		return 0
	default:
		return math.Max(dateGapFloor, WeightDates*(1-float64(gap)/dateGapHorizonDays))
	}
}

// scoreBudget grades the price against [min, max].
// Prices under min keep a floor of 5; prices over max decay to 0 when
// they reach twice the max.
func scoreBudget(price float64, budget *domain.BudgetRange) float64 {
	if !budget.IsSet() {
		return WeightBudget
	}

	if budget.Max != nil && price > *budget.Max {
		ceiling := *budget.Max
		if ceiling <= 0 {
			return 0
		}
		return math.Max(0, WeightBudget*(1-(price-ceiling)/ceiling))
	}

	if budget.Min != nil && price < *budget.Min {
		floor := *budget.Min
		if floor <= 0 || price <= 0 {
			return budgetBelowMinFloor
		}
		return math.Max(budgetBelowMinFloor, WeightBudget*price/floor)
	}

	return WeightBudget
}

// scoreVibe matches the requested vibe against the itinerary vibe and tags.
func scoreVibe(it domain.Itinerary, vibe string) float64 {
	want := normalizeText(vibe)
	if want == "" {
		return WeightVibe
	}

	styles := make([]string, 0, len(it.Tags)+1)
	if v := normalizeText(it.Vibe); v != "" {
		styles = append(styles, v)
	}
	for _, tag := range it.Tags {
		if t := normalizeText(tag); t != "" {
			styles = append(styles, t)
		}
	}

	for _, s := range styles {
		if s == want {
			return WeightVibe
		}
	}

	for _, related := range relatedVibes[want] {
		for _, s := range styles {
			if s == related {
				return relatedVibe
			}
		}
	}

	return 0
}

// RelatedVibes returns the vibes considered close to the given one.
func RelatedVibes(vibe string) []string {
	related := relatedVibes[normalizeText(vibe)]
	return append([]string(nil), related...)
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
