package http

import (
	"github.com/flight-search/flight-offers-gateway/internal/domain"
)

// SearchOffersResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchOffersResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Metadata       MetadataDTO       `json:"metadata"`
	Offers         []OfferDTO        `json:"offers"`
}

// SearchCriteriaDTO echoes the normalized search criteria in the response.
type SearchCriteriaDTO struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers"`
	CabinClass    string `json:"cabin_class,omitempty"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults int    `json:"total_results"`
	Provider     string `json:"provider"`
	SearchTimeMs int64  `json:"search_time_ms"`
}

// OfferDTO is the data transfer object for flight offers.
type OfferDTO struct {
	ID          string         `json:"id"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Departure   FlightPointDTO `json:"departure"`
	Arrival     FlightPointDTO `json:"arrival"`
	Duration    DurationDTO    `json:"duration"`
	Price       PriceDTO       `json:"price"`
	Carrier     CarrierDTO     `json:"carrier"`
	CabinClass  string         `json:"cabin_class,omitempty"`
	Stops       int            `json:"stops"`
	Segments    []SegmentDTO   `json:"segments"`
}

// FlightPointDTO represents a departure or arrival point in time.
type FlightPointDTO struct {
	Airport   string `json:"airport"`
	DateTime  string `json:"datetime"`
	Timestamp int64  `json:"timestamp"`
}

// DurationDTO represents an itinerary or segment duration.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes"`
	ISO8601      string `json:"iso8601"`
	Formatted    string `json:"formatted"`
}

// PriceDTO represents price information.
type PriceDTO struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CarrierDTO represents airline information.
type CarrierDTO struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// SegmentDTO represents one flight leg within an offer.
type SegmentDTO struct {
	Origin       string         `json:"origin"`
	Destination  string         `json:"destination"`
	Departure    FlightPointDTO `json:"departure"`
	Arrival      FlightPointDTO `json:"arrival"`
	FlightNumber string         `json:"flight_number"`
	CarrierCode  string         `json:"carrier_code"`
	Duration     DurationDTO    `json:"duration"`
}

// dtoTimeLayout is the wire format for datetimes in responses.
const dtoTimeLayout = "2006-01-02T15:04:05-07:00"

// ToSearchOffersResponseDTO assembles the full search response from the
// normalized query and the offers it produced.
func ToSearchOffersResponseDTO(query domain.SearchQuery, offers []domain.FlightOffer, searchTimeMs int64, provider string) *SearchOffersResponseDTO {
	dto := &SearchOffersResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Origin:        query.Origin,
			Destination:   query.Destination,
			DepartureDate: query.DepartureDate,
			ReturnDate:    query.ReturnDate,
			Passengers:    query.Passengers,
			CabinClass:    query.CabinClass,
		},
		Metadata: MetadataDTO{
			TotalResults: len(offers),
			Provider:     provider,
			SearchTimeMs: searchTimeMs,
		},
		Offers: make([]OfferDTO, len(offers)),
	}

	for i, offer := range offers {
		dto.Offers[i] = ToOfferDTO(offer)
	}

	return dto
}

// ToOfferDTO converts a domain FlightOffer to an OfferDTO.
func ToOfferDTO(offer domain.FlightOffer) OfferDTO {
	segments := offer.Segments()

	dto := OfferDTO{
		ID:          offer.ID(),
		Origin:      offer.Origin(),
		Destination: offer.Destination(),
		Departure: FlightPointDTO{
			Airport:   offer.Origin(),
			DateTime:  offer.Departure().Format(dtoTimeLayout),
			Timestamp: offer.Departure().Unix(),
		},
		Arrival: FlightPointDTO{
			Airport:   offer.Destination(),
			DateTime:  offer.Arrival().Format(dtoTimeLayout),
			Timestamp: offer.Arrival().Unix(),
		},
		Duration: toDurationDTO(offer.TotalDuration()),
		Price: PriceDTO{
			Amount:   offer.TotalPrice().Amount(),
			Currency: offer.TotalPrice().Currency(),
		},
		Carrier: CarrierDTO{
			Code: offer.CarrierCode(),
			Name: offer.CarrierName(),
		},
		CabinClass: offer.CabinClass(),
		Stops:      offer.Stops(),
		Segments:   make([]SegmentDTO, len(segments)),
	}

	for i, seg := range segments {
		dto.Segments[i] = toSegmentDTO(seg)
	}

	return dto
}

func toSegmentDTO(seg domain.FlightSegment) SegmentDTO {
	return SegmentDTO{
		Origin:      seg.Origin(),
		Destination: seg.Destination(),
		Departure: FlightPointDTO{
			Airport:   seg.Origin(),
			DateTime:  seg.Departure().Format(dtoTimeLayout),
			Timestamp: seg.Departure().Unix(),
		},
		Arrival: FlightPointDTO{
			Airport:   seg.Destination(),
			DateTime:  seg.Arrival().Format(dtoTimeLayout),
			Timestamp: seg.Arrival().Unix(),
		},
		FlightNumber: seg.FlightNumber(),
		CarrierCode:  seg.CarrierCode(),
		Duration:     toDurationDTO(seg.Duration()),
	}
}

func toDurationDTO(d domain.Duration) DurationDTO {
	return DurationDTO{
		TotalMinutes: d.Minutes(),
		ISO8601:      d.ISO8601(),
		Formatted:    d.Formatted(),
	}
}
