package duffel

import (
	"github.com/flight-search/flight-offers-gateway/internal/domain"
)

// adultPassengerType is the passenger type used for every traveller.
// Child and infant fares are not differentiated yet.
const adultPassengerType = "adult"

// buildOfferRequest maps a validated search query into the provider's offer
// request shape. A one-way search produces a single slice; a return date adds
// a second, reversed slice. Dates go out as plain YYYY-MM-DD calendar dates.
func buildOfferRequest(query domain.SearchQuery) offerRequestBody {
	slices := []sliceRequest{
		{
			Origin:        query.Origin,
			Destination:   query.Destination,
			DepartureDate: query.DepartureDate,
		},
	}

	if query.IsRoundTrip() {
		slices = append(slices, sliceRequest{
			Origin:        query.Destination,
			Destination:   query.Origin,
			DepartureDate: query.ReturnDate,
		})
	}

	passengers := buildPassengers(query.Passengers)

	data := offerRequestData{
		Slices:     slices,
		Passengers: passengers,
	}

	// Unknown cabin labels are left out so the provider applies its default.
	if token, ok := domain.CabinToProviderToken(query.CabinClass); ok {
		data.CabinClass = token
	}

	return offerRequestBody{Data: data}
}

// buildPassengers creates one adult entry per requested passenger, with a
// minimum of one.
func buildPassengers(count int) []passengerRequest {
	if count < 1 {
		count = 1
	}

	passengers := make([]passengerRequest, count)
	for i := range passengers {
		passengers[i] = passengerRequest{Type: adultPassengerType}
	}
	return passengers
}
