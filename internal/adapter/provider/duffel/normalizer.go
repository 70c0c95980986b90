package duffel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/flight-search/flight-offers-gateway/internal/domain"
)

// DefaultCurrency is the fallback currency code when the provider omits or
// blanks the price currency.
const DefaultCurrency = "USD"

// normalize converts the provider's offer list into domain FlightOffers.
// A nil or empty offer list maps to an empty result, never an error.
//
// Mapping is best-effort: offers and segments the provider sent malformed are
// dropped individually instead of failing the whole batch, so one bad record
// cannot blank out an entire search result.
func normalize(offers []offerData) []domain.FlightOffer {
	result := make([]domain.FlightOffer, 0, len(offers))

	for _, o := range offers {
		offer, err := normalizeOffer(o)
		if err != nil {
			continue
		}
		result = append(result, offer)
	}

	return result
}

// normalizeOffer converts a single upstream offer into a domain FlightOffer.
//
// Only the first slice is mapped; a return slice, when present, is discarded.
// TODO: map return slices into a round-trip offer representation.
func normalizeOffer(o offerData) (domain.FlightOffer, error) {
	if len(o.Slices) == 0 {
		return domain.FlightOffer{}, fmt.Errorf("offer %s has no slices", o.ID)
	}

	slice := o.Slices[0]
	if len(slice.Segments) == 0 {
		return domain.FlightOffer{}, fmt.Errorf("offer %s has no segments in first slice", o.ID)
	}

	segments := normalizeSegments(slice.Segments)
	if len(segments) == 0 {
		return domain.FlightOffer{}, fmt.Errorf("offer %s has no valid segments", o.ID)
	}

	first := segments[0]
	last := segments[len(segments)-1]

	// An absent or malformed slice duration degrades to zero rather than
	// dropping the offer.
	duration, err := domain.ParseDuration(slice.Duration)
	if err != nil {
		duration = domain.ZeroDuration()
	}

	price, err := normalizePrice(o.TotalAmount, o.TotalCurrency)
	if err != nil {
		return domain.FlightOffer{}, fmt.Errorf("offer %s: %w", o.ID, err)
	}

	carrierCode := first.CarrierCode()
	if o.Owner.IATACode != "" {
		carrierCode = o.Owner.IATACode
	}

	// The upstream offer ID is discarded; NewFlightOffer generates its own.
	return domain.NewFlightOffer(
		first.Origin(),
		last.Destination(),
		first.Departure(),
		last.Arrival(),
		duration,
		price,
		carrierCode,
		o.Owner.Name,
		normalizeCabin(slice.Segments[0]),
		segments,
	)
}

// normalizeSegments maps each upstream segment independently, dropping the
// ones that fail entity validation.
func normalizeSegments(segments []segmentData) []domain.FlightSegment {
	result := make([]domain.FlightSegment, 0, len(segments))

	for _, s := range segments {
		segment, err := normalizeSegment(s)
		if err != nil {
			continue
		}
		result = append(result, segment)
	}

	return result
}

// normalizeSegment converts one upstream segment into a domain FlightSegment.
func normalizeSegment(s segmentData) (domain.FlightSegment, error) {
	departure, err := parseDateTime(s.DepartingAt)
	if err != nil {
		return domain.FlightSegment{}, fmt.Errorf("parse departing_at: %w", err)
	}

	arrival, err := parseDateTime(s.ArrivingAt)
	if err != nil {
		return domain.FlightSegment{}, fmt.Errorf("parse arriving_at: %w", err)
	}

	duration, err := domain.ParseDuration(s.Duration)
	if err != nil {
		duration = domain.ZeroDuration()
	}

	// Operating carrier wins; marketing carrier is the fallback.
	carrier := s.OperatingCarrier.IATACode
	if carrier == "" {
		carrier = s.MarketingCarrier.IATACode
	}

	number := s.OperatingCarrierFlightNumber
	if number == "" {
		number = s.MarketingCarrierFlightNumber
	}

	return domain.NewFlightSegment(
		s.Origin.IATACode,
		s.Destination.IATACode,
		departure,
		arrival,
		strings.ToUpper(carrier)+number,
		carrier,
		duration,
	)
}

// normalizePrice parses the provider's string decimal amount, clamping
// negative amounts to zero and defaulting a blank currency.
func normalizePrice(amount, currency string) (domain.Money, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return domain.Money{}, fmt.Errorf("parse total_amount %q: %w", amount, err)
	}

	// Negative amounts should not occur from a well-behaved provider.
	if value < 0 {
		value = 0
	}

	if strings.TrimSpace(currency) == "" {
		currency = DefaultCurrency
	}

	return domain.NewMoney(value, currency)
}

// normalizeCabin reads the cabin class from the first passenger entry of the
// slice's first segment, defaulting to Economy when absent or unrecognized.
func normalizeCabin(first segmentData) string {
	if len(first.Passengers) == 0 {
		return domain.CabinEconomy
	}
	return domain.NormalizeCabin(first.Passengers[0].CabinClass)
}

// parseDateTime parses provider timestamps. Duffel emits local times without
// a zone offset for segment times, but some payloads carry RFC 3339.
func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02T15:04:05", value)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime %q", value)
}
