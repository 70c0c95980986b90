package domain

import (
	"regexp"
	"strings"
	"time"
)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// SearchQuery defines the normalized parameters for a flight offers search.
type SearchQuery struct {
	// Origin is the IATA code of the departure airport (e.g., "GRU")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "EZE")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format.
	// When set, the search is round-trip.
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of adult passengers (default: 1)
	Passengers int `json:"passengers"`

	// CabinClass is the optional cabin class label (Economy, PremiumEconomy,
	// Business, First)
	CabinClass string `json:"cabinClass,omitempty"`
}

// Validate checks the query's preconditions in order and fails on the first
// violated rule, before any provider call is attempted. Every failure wraps
// ErrInvalidRequest and names the offending field.
func (q *SearchQuery) Validate() error {
	if q == nil {
		return WrapInvalidRequest("search query is required")
	}

	if strings.TrimSpace(q.Origin) == "" {
		return NewValidationError("origin", "origin is required")
	}

	if strings.TrimSpace(q.Destination) == "" {
		return NewValidationError("destination", "destination is required")
	}

	if strings.EqualFold(strings.TrimSpace(q.Origin), strings.TrimSpace(q.Destination)) {
		return NewValidationError("destination", "origin and destination must be different")
	}

	if q.Passengers < 1 {
		return NewValidationError("passengers", "passengers must be at least 1")
	}

	if q.DepartureDate != "" {
		if err := validateDate("departureDate", q.DepartureDate); err != nil {
			return err
		}
	}
	if q.ReturnDate != "" {
		if err := validateDate("returnDate", q.ReturnDate); err != nil {
			return err
		}
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (q *SearchQuery) SetDefaults() {
	if q.Passengers == 0 {
		q.Passengers = 1
	}
}

// IsRoundTrip reports whether the query includes a return date.
func (q *SearchQuery) IsRoundTrip() bool {
	return strings.TrimSpace(q.ReturnDate) != ""
}

// validateDate checks that value is a real calendar date in YYYY-MM-DD form.
func validateDate(field, value string) error {
	if !dateRegex.MatchString(value) {
		return NewValidationError(field, field+" must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return NewValidationError(field, field+" is not a valid date")
	}
	return nil
}
