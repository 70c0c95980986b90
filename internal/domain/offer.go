package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FlightOffer is one priced itinerary option. It is read-only after
// construction and exclusively owns its segments.
//
// The ID is generated internally when the offer is built from an upstream
// record; the provider's own offer ID is never carried into the domain.
type FlightOffer struct {
	id            string
	origin        string
	destination   string
	departure     time.Time
	arrival       time.Time
	totalDuration Duration
	totalPrice    Money
	carrierCode   string
	carrierName   string
	cabinClass    string
	segments      []FlightSegment
}

// NewFlightOffer creates a FlightOffer with a freshly generated unique ID,
// enforcing the aggregate's invariants: valid distinct IATA codes, arrival
// strictly after departure, a non-empty carrier code, and at least one
// segment. The segment slice is copied so the offer owns its elements.
// Carrier name and cabin class are optional and default to empty strings.
func NewFlightOffer(origin, destination string, departure, arrival time.Time, totalDuration Duration, totalPrice Money, carrierCode, carrierName, cabinClass string, segments []FlightSegment) (FlightOffer, error) {
	normalizedOrigin, err := normalizeIATACode("origin", origin)
	if err != nil {
		return FlightOffer{}, err
	}

	normalizedDestination, err := normalizeIATACode("destination", destination)
	if err != nil {
		return FlightOffer{}, err
	}

	if normalizedOrigin == normalizedDestination {
		return FlightOffer{}, NewValidationError("destination", "origin and destination must be different")
	}

	if departure.IsZero() {
		return FlightOffer{}, NewValidationError("departure", "departure time is required")
	}
	if !arrival.After(departure) {
		return FlightOffer{}, NewValidationError("arrival", "arrival must be after departure")
	}

	carrierCode = strings.ToUpper(strings.TrimSpace(carrierCode))
	if carrierCode == "" {
		return FlightOffer{}, NewValidationError("carrierCode", "carrier code is required")
	}

	if len(segments) == 0 {
		return FlightOffer{}, NewValidationError("segments", "offer must contain at least one segment")
	}

	owned := make([]FlightSegment, len(segments))
	copy(owned, segments)

	return FlightOffer{
		id:            uuid.New().String(),
		origin:        normalizedOrigin,
		destination:   normalizedDestination,
		departure:     departure,
		arrival:       arrival,
		totalDuration: totalDuration,
		totalPrice:    totalPrice,
		carrierCode:   carrierCode,
		carrierName:   strings.TrimSpace(carrierName),
		cabinClass:    strings.TrimSpace(cabinClass),
		segments:      owned,
	}, nil
}

// ID returns the internally generated unique identifier.
func (o FlightOffer) ID() string {
	return o.id
}

// Origin returns the itinerary's departure airport code.
func (o FlightOffer) Origin() string {
	return o.origin
}

// Destination returns the itinerary's arrival airport code.
func (o FlightOffer) Destination() string {
	return o.destination
}

// Departure returns the first segment's departure time.
func (o FlightOffer) Departure() time.Time {
	return o.departure
}

// Arrival returns the last segment's arrival time.
func (o FlightOffer) Arrival() time.Time {
	return o.arrival
}

// TotalDuration returns the total itinerary duration.
func (o FlightOffer) TotalDuration() Duration {
	return o.totalDuration
}

// TotalPrice returns the total itinerary price.
func (o FlightOffer) TotalPrice() Money {
	return o.totalPrice
}

// CarrierCode returns the operating carrier's IATA code.
func (o FlightOffer) CarrierCode() string {
	return o.carrierCode
}

// CarrierName returns the carrier's display name, or "" if unknown.
func (o FlightOffer) CarrierName() string {
	return o.carrierName
}

// CabinClass returns the cabin class label, or "" if unknown.
func (o FlightOffer) CabinClass() string {
	return o.cabinClass
}

// Segments returns a copy of the offer's ordered segment collection.
func (o FlightOffer) Segments() []FlightSegment {
	out := make([]FlightSegment, len(o.segments))
	copy(out, o.segments)
	return out
}

// Stops returns the number of intermediate stops (segments minus one).
func (o FlightOffer) Stops() int {
	return len(o.segments) - 1
}
