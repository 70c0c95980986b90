// Package duffel implements the Duffel offers provider adapter.
// It maps the normalized search query to Duffel's offer-request wire format,
// calls the API, and normalizes the response into domain entities.
package duffel

// offerRequestBody is the envelope for POST /air/offer_requests.
type offerRequestBody struct {
	Data offerRequestData `json:"data"`
}

// offerRequestData is the payload of an offer request.
type offerRequestData struct {
	// Slices are the itinerary legs being searched (one per direction)
	Slices []sliceRequest `json:"slices"`

	// Passengers lists one entry per traveller
	Passengers []passengerRequest `json:"passengers"`

	// CabinClass is the requested cabin in Duffel's vocabulary.
	// Omitted when the caller's label is unknown so the provider default applies.
	CabinClass string `json:"cabin_class,omitempty"`
}

// sliceRequest is one requested direction of travel.
type sliceRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

// passengerRequest is one traveller entry. All passengers are currently
// requested as adults.
type passengerRequest struct {
	Type string `json:"type"`
}

// offerResponseBody is the envelope of an offer request response.
type offerResponseBody struct {
	Data offerResponseData `json:"data"`
}

// offerResponseData carries the returned offers.
type offerResponseData struct {
	ID     string      `json:"id"`
	Offers []offerData `json:"offers"`
}

// offerData is one priced itinerary option as returned by the provider.
type offerData struct {
	ID            string       `json:"id"`
	TotalAmount   string       `json:"total_amount"`
	TotalCurrency string       `json:"total_currency"`
	Owner         carrierData  `json:"owner"`
	Slices        []sliceData  `json:"slices"`
}

// sliceData is one direction of travel within an offer.
type sliceData struct {
	Origin      placeData     `json:"origin"`
	Destination placeData     `json:"destination"`
	Duration    string        `json:"duration"`
	Segments    []segmentData `json:"segments"`
}

// segmentData is one non-stop flight within a slice.
type segmentData struct {
	ID                           string               `json:"id"`
	Origin                       placeData            `json:"origin"`
	Destination                  placeData            `json:"destination"`
	DepartingAt                  string               `json:"departing_at"`
	ArrivingAt                   string               `json:"arriving_at"`
	Duration                     string               `json:"duration"`
	OperatingCarrier             carrierData          `json:"operating_carrier"`
	MarketingCarrier             carrierData          `json:"marketing_carrier"`
	OperatingCarrierFlightNumber string               `json:"operating_carrier_flight_number"`
	MarketingCarrierFlightNumber string               `json:"marketing_carrier_flight_number"`
	Passengers                   []segmentPassengerData `json:"passengers"`
}

// placeData identifies an airport.
type placeData struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
}

// carrierData identifies an airline.
type carrierData struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
}

// segmentPassengerData carries per-passenger segment details; the cabin class
// of the first entry is used for the whole offer.
type segmentPassengerData struct {
	CabinClass string `json:"cabin_class"`
}

// apiErrorBody is the provider's error response envelope.
type apiErrorBody struct {
	Errors []apiError `json:"errors"`
}

// apiError is one provider-reported error.
type apiError struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
