package http

import (
	"math"
	"strings"

	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/timeutil"
	"github.com/tripweave/itinerary-search/internal/usecase"
)

// ToDomainCriteria converts a search request to domain.SearchCriteria.
// Unparseable dates are dropped rather than rejected.
func ToDomainCriteria(req *SearchItinerariesRequest) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Destination: strings.TrimSpace(string(req.Destination)),
		Vibe:        strings.TrimSpace(string(req.Vibe)),
	}

	if t, ok := domain.ParseDate(string(req.StartDate)); ok {
		criteria.StartDate = &t
	}
	if t, ok := domain.ParseDate(string(req.EndDate)); ok {
		criteria.EndDate = &t
	}

	if req.Budget != nil && (req.Budget.Min.Value != nil || req.Budget.Max.Value != nil) {
		criteria.Budget = &domain.BudgetRange{
			Min: req.Budget.Min.Value,
			Max: req.Budget.Max.Value,
		}
	}

	return criteria
}

// ToGenerateRequest converts a validated generate request.
func ToGenerateRequest(req *GenerateItineraryRequest) domain.GenerateRequest {
	return domain.GenerateRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Vibe:        req.Vibe,
		GroupSize:   strings.TrimSpace(req.GroupSize),
		Interests:   req.Interests,
	}
}

// ToPublishMetadata extracts the metadata part of a publish request.
func ToPublishMetadata(req *PublishItineraryRequest) domain.PublishMetadata {
	return domain.PublishMetadata{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		GroupSize:   strings.TrimSpace(req.GroupSize),
		Tags:        req.Tags,
	}
}

// ToSearchResponseDTO converts a domain SearchResponse to its wire form.
func ToSearchResponseDTO(resp *domain.SearchResponse) *SearchResponseDTO {
	if resp == nil {
		return nil
	}

	dto := &SearchResponseDTO{
		Criteria: toCriteriaDTO(resp.Criteria),
		Metadata: MetadataDTO{
			TotalResults:   resp.Metadata.TotalResults,
			CandidateCount: resp.Metadata.CandidateCount,
			Fallback:       resp.Metadata.Fallback,
			SourcesQueried: nonNilStrings(resp.Metadata.SourcesQueried),
			SourcesFailed:  nonNilStrings(resp.Metadata.SourcesFailed),
			SearchTimeMs:   resp.Metadata.SearchTimeMs,
		},
		Results: make([]ScoredItineraryDTO, len(resp.Results)),
	}

	for i, r := range resp.Results {
		dto.Results[i] = ToScoredItineraryDTO(r)
	}

	return dto
}

// ToScoredItineraryDTO converts one ranked result.
func ToScoredItineraryDTO(r domain.ScoredItinerary) ScoredItineraryDTO {
	it := r.Itinerary.Clone()
	it.Normalize()

	return ScoredItineraryDTO{
		Itinerary:      it,
		Origin:         string(r.Origin),
		RelevanceScore: r.RelevanceScore,
		TotalPrice:     roundMoney(r.TotalPrice),
		ScoreBreakdown: ScoreBreakdownDTO{
			Destination: roundScore(r.ScoreBreakdown.Destination),
			Dates:       roundScore(r.ScoreBreakdown.Dates),
			Budget:      roundScore(r.ScoreBreakdown.Budget),
			Vibe:        roundScore(r.ScoreBreakdown.Vibe),
		},
	}
}

// ToCatalogDTO converts a list of itineraries of one origin, resolving
// each price.
func ToCatalogDTO(items []domain.Itinerary, origin domain.Origin) *CatalogDTO {
	dto := &CatalogDTO{
		Itineraries: make([]PricedItineraryDTO, len(items)),
		Count:       len(items),
	}
	for i, item := range items {
		it := item.Clone()
		it.Normalize()
		dto.Itineraries[i] = PricedItineraryDTO{
			Itinerary:  it,
			Origin:     string(origin),
			TotalPrice: roundMoney(usecase.ResolvePrice(it)),
		}
	}
	return dto
}

// ToDraftDTO converts a generated draft.
func ToDraftDTO(d *domain.Draft) *DraftDTO {
	if d == nil {
		return nil
	}
	return &DraftDTO{
		Itinerary:           d.Itinerary,
		Origin:              string(domain.OriginGenerated),
		HotelStays:          d.HotelStays,
		CancellationPenalty: d.CancellationPenalty,
		Pricing:             d.Pricing,
	}
}

func toCriteriaDTO(c domain.SearchCriteria) CriteriaDTO {
	dto := CriteriaDTO{
		Destination: c.Destination,
		StartDate:   timeutil.FormatDatePtr(c.StartDate),
		EndDate:     timeutil.FormatDatePtr(c.EndDate),
		Vibe:        c.Vibe,
	}
	if c.Budget.IsSet() {
		dto.Budget = &BudgetRangeDTO{Min: c.Budget.Min, Max: c.Budget.Max}
	}
	return dto
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// roundMoney rounds to two decimals for display.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
