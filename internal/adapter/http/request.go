package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tripweave/itinerary-search/internal/domain"
)

// SearchItinerariesRequest is the body of POST /api/v1/itineraries/search.
// Every field is optional. Values of the wrong type are treated as unset.
type SearchItinerariesRequest struct {
	// Destination is free text matched against itinerary destinations
	Destination LooseString `json:"destination,omitempty" swaggertype:"string" example:"Goa"`

	// StartDate is the beginning of the travel window (YYYY-MM-DD)
	StartDate LooseString `json:"startDate,omitempty" swaggertype:"string" example:"2025-03-08"`

	// EndDate is the end of the travel window (YYYY-MM-DD)
	EndDate LooseString `json:"endDate,omitempty" swaggertype:"string" example:"2025-03-16"`

	// Budget bounds the resolved itinerary price
	Budget *BudgetDTO `json:"budget,omitempty"`

	// Vibe is the desired travel style
	Vibe LooseString `json:"vibe,omitempty" swaggertype:"string" example:"beaches"`
}

// BudgetDTO is a price range. Either bound may be omitted.
// Example: {"min": 15000, "max": 25000}
type BudgetDTO struct {
	Min LooseNumber `json:"min,omitempty" swaggertype:"number" example:"15000"`
	Max LooseNumber `json:"max,omitempty" swaggertype:"number" example:"25000"`
}

// LooseString decodes JSON strings and ignores every other JSON type.
type LooseString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = LooseString(strings.TrimSpace(v))
	return nil
}

// LooseNumber decodes JSON numbers and numeric strings. Anything else,
// including NaN and infinities, leaves it unset.
type LooseNumber struct {
	Value *float64
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	n.Value = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.Value = &f
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !isNaNOrInf(parsed) {
			n.Value = &parsed
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n LooseNumber) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

func isNaNOrInf(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// UnmarshalJSON accepts only JSON objects; other shapes leave the budget empty.
func (b *BudgetDTO) UnmarshalJSON(data []byte) error {
	*b = BudgetDTO{}
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil
	}

	type plain BudgetDTO
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*b = BudgetDTO(v)
	return nil
}

// ParseSearchRequest decodes a search body. Empty, undecodable and
// non-object bodies yield an empty request, which means "no filter".
// ok reports whether the body was understood.
func ParseSearchRequest(body []byte) (req SearchItinerariesRequest, ok bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return SearchItinerariesRequest{}, true
	}
	if trimmed[0] != '{' {
		return SearchItinerariesRequest{}, false
	}
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return SearchItinerariesRequest{}, false
	}
	return req, true
}

// GenerateItineraryRequest is the body of POST /api/v1/itineraries/generate.
type GenerateItineraryRequest struct {
	// Destination is where the trip goes (required)
	Destination string `json:"destination" example:"Goa, India"`

	// StartDate is the first travel day (YYYY-MM-DD, optional)
	StartDate string `json:"startDate,omitempty" example:"2025-03-10"`

	// EndDate is the last travel day (YYYY-MM-DD, optional)
	EndDate string `json:"endDate,omitempty" example:"2025-03-14"`

	// Budget is the total trip budget (optional)
	Budget *float64 `json:"budget,omitempty" example:"20000"`

	// Vibe is the desired travel style (optional)
	Vibe string `json:"vibe,omitempty" example:"beaches"`

	// GroupSize describes the travelling party (optional)
	GroupSize string `json:"groupSize,omitempty" example:"4 people"`

	// Interests are free-form activity preferences (optional)
	Interests []string `json:"interests,omitempty" example:"food,nightlife"`
}

// PublishItineraryRequest is the body of POST /api/v1/users/{userID}/itineraries.
type PublishItineraryRequest struct {
	// Itinerary is the itinerary tree to publish (required)
	Itinerary *domain.Itinerary `json:"itinerary"`

	// Name overrides the itinerary name
	Name string `json:"name,omitempty" example:"Our Goa Trip"`

	// Description overrides the itinerary description
	Description string `json:"description,omitempty"`

	// GroupSize overrides the group size descriptor
	GroupSize string `json:"groupSize,omitempty" example:"4-8 people"`

	// Tags replace the itinerary tags
	Tags []string `json:"tags,omitempty" example:"food,nightlife"`
}

// Validation limits.
const (
	maxInterests = 10
	maxTags      = 20
	maxTagLength = 40
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the generate request and normalizes its text fields.
func (r *GenerateItineraryRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Destination = strings.TrimSpace(r.Destination)
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
	}

	start, hasStart := validateDate(errs, "startDate", r.StartDate)
	end, hasEnd := validateDate(errs, "endDate", r.EndDate)
	if hasStart && hasEnd && end.Before(start) {
		errs.Add("endDate", "endDate must not be before startDate")
	}

	if r.Budget != nil && *r.Budget < 0 {
		errs.Add("budget", "budget must not be negative")
	}

	if len(r.Interests) > maxInterests {
		errs.Add("interests", fmt.Sprintf("at most %d interests are allowed", maxInterests))
	}

	r.Vibe = strings.ToLower(strings.TrimSpace(r.Vibe))

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the publish request. The itinerary tree itself is
// validated by the library use case.
func (r *PublishItineraryRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Itinerary == nil {
		errs.Add("itinerary", "itinerary is required")
	}

	if len(r.Tags) > maxTags {
		errs.Add("tags", fmt.Sprintf("at most %d tags are allowed", maxTags))
	}
	for i, tag := range r.Tags {
		tag = strings.TrimSpace(tag)
		switch {
		case tag == "":
			errs.Add(fmt.Sprintf("tags[%d]", i), "tag must not be blank")
		case len(tag) > maxTagLength:
			errs.Add(fmt.Sprintf("tags[%d]", i), fmt.Sprintf("tag must be at most %d characters", maxTagLength))
		}
		r.Tags[i] = strings.ToLower(tag)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateDate checks an optional YYYY-MM-DD field.
func validateDate(errs *ValidationErrors, field, value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}, false
	}
	return t, true
}

// parseItineraryID parses the :id path parameter.
func parseItineraryID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
