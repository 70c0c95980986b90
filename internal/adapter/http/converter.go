// Package http provides the HTTP handler layer for the flight offers API.
package http

import (
	"strings"

	"github.com/flight-search/flight-offers-gateway/internal/domain"
)

// ToSearchQuery converts a SearchOffersRequest to a domain.SearchQuery.
// The request is assumed to have passed Validate; defaults are still applied
// so the conversion is safe on partially filled requests.
func ToSearchQuery(req *SearchOffersRequest) domain.SearchQuery {
	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}

	cabin := ""
	if strings.TrimSpace(req.CabinClass) != "" {
		cabin = domain.NormalizeCabin(req.CabinClass)
	}

	return domain.SearchQuery{
		Origin:        strings.ToUpper(strings.TrimSpace(req.Origin)),
		Destination:   strings.ToUpper(strings.TrimSpace(req.Destination)),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    passengers,
		CabinClass:    cabin,
	}
}
