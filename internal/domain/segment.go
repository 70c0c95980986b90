package domain

import (
	"regexp"
	"strings"
	"time"
)

// iataCodePattern matches valid IATA airport codes (3 letters, matched after
// uppercasing the input).
var iataCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// normalizeIATACode uppercases and validates a 3-letter IATA airport code.
func normalizeIATACode(field, code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return "", NewValidationError(field, field+" is required")
	}
	if !iataCodePattern.MatchString(normalized) {
		return "", NewValidationError(field, field+" must be a valid 3-letter IATA code")
	}
	return normalized, nil
}

// FlightSegment is one non-stop leg of an itinerary. It is immutable after
// construction and has no identity beyond its attribute values.
type FlightSegment struct {
	origin       string
	destination  string
	departure    time.Time
	arrival      time.Time
	flightNumber string
	carrierCode  string
	duration     Duration
}

// NewFlightSegment creates a FlightSegment, enforcing its invariants:
// valid distinct IATA codes, arrival strictly after departure, and non-empty
// flight number and carrier code. Codes are normalized to uppercase.
func NewFlightSegment(origin, destination string, departure, arrival time.Time, flightNumber, carrierCode string, duration Duration) (FlightSegment, error) {
	normalizedOrigin, err := normalizeIATACode("origin", origin)
	if err != nil {
		return FlightSegment{}, err
	}

	normalizedDestination, err := normalizeIATACode("destination", destination)
	if err != nil {
		return FlightSegment{}, err
	}

	if normalizedOrigin == normalizedDestination {
		return FlightSegment{}, NewValidationError("destination", "origin and destination must be different")
	}

	if departure.IsZero() {
		return FlightSegment{}, NewValidationError("departure", "departure time is required")
	}
	if arrival.IsZero() {
		return FlightSegment{}, NewValidationError("arrival", "arrival time is required")
	}
	if !arrival.After(departure) {
		return FlightSegment{}, NewValidationError("arrival", "arrival must be after departure")
	}

	flightNumber = strings.TrimSpace(flightNumber)
	if flightNumber == "" {
		return FlightSegment{}, NewValidationError("flightNumber", "flight number is required")
	}

	carrierCode = strings.ToUpper(strings.TrimSpace(carrierCode))
	if carrierCode == "" {
		return FlightSegment{}, NewValidationError("carrierCode", "carrier code is required")
	}

	return FlightSegment{
		origin:       normalizedOrigin,
		destination:  normalizedDestination,
		departure:    departure,
		arrival:      arrival,
		flightNumber: flightNumber,
		carrierCode:  carrierCode,
		duration:     duration,
	}, nil
}

// Origin returns the departure airport code.
func (s FlightSegment) Origin() string {
	return s.origin
}

// Destination returns the arrival airport code.
func (s FlightSegment) Destination() string {
	return s.destination
}

// Departure returns the scheduled departure time.
func (s FlightSegment) Departure() time.Time {
	return s.departure
}

// Arrival returns the scheduled arrival time.
func (s FlightSegment) Arrival() time.Time {
	return s.arrival
}

// FlightNumber returns the airline's flight number (e.g., "JJ8064").
func (s FlightSegment) FlightNumber() string {
	return s.flightNumber
}

// CarrierCode returns the operating carrier's IATA code.
func (s FlightSegment) CarrierCode() string {
	return s.carrierCode
}

// Duration returns the segment's elapsed flight time.
func (s FlightSegment) Duration() Duration {
	return s.duration
}
