package duffel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-offers-gateway/internal/domain"
)

// validSegmentData returns a well-formed upstream segment for tests.
func validSegmentData() segmentData {
	return segmentData{
		ID:                           "seg_001",
		Origin:                       placeData{IATACode: "GRU", Name: "São Paulo Guarulhos"},
		Destination:                  placeData{IATACode: "EZE", Name: "Buenos Aires Ezeiza"},
		DepartingAt:                  "2025-01-10T08:55:00Z",
		ArrivingAt:                   "2025-01-10T12:05:00Z",
		Duration:                     "PT3H10M",
		OperatingCarrier:             carrierData{IATACode: "JJ", Name: "LATAM Airlines"},
		MarketingCarrier:             carrierData{IATACode: "JJ", Name: "LATAM Airlines"},
		OperatingCarrierFlightNumber: "8064",
		Passengers:                   []segmentPassengerData{{CabinClass: "economy"}},
	}
}

// validOfferData returns a well-formed upstream offer for tests.
func validOfferData() offerData {
	return offerData{
		ID:            "off_001",
		TotalAmount:   "1320.50",
		TotalCurrency: "USD",
		Owner:         carrierData{IATACode: "JJ", Name: "LATAM Airlines"},
		Slices: []sliceData{
			{
				Origin:      placeData{IATACode: "GRU"},
				Destination: placeData{IATACode: "EZE"},
				Duration:    "PT3H10M",
				Segments:    []segmentData{validSegmentData()},
			},
		},
	}
}

func TestNormalize_SingleValidOffer(t *testing.T) {
	offers := normalize([]offerData{validOfferData()})

	require.Len(t, offers, 1)
	offer := offers[0]

	assert.Equal(t, "GRU", offer.Origin())
	assert.Equal(t, "EZE", offer.Destination())
	assert.Equal(t, time.Date(2025, 1, 10, 8, 55, 0, 0, time.UTC), offer.Departure())
	assert.Equal(t, time.Date(2025, 1, 10, 12, 5, 0, 0, time.UTC), offer.Arrival())
	assert.Equal(t, 190, offer.TotalDuration().Minutes())
	assert.Equal(t, "3h 10m", offer.TotalDuration().Formatted())
	assert.Equal(t, 1320.50, offer.TotalPrice().Amount())
	assert.Equal(t, "USD", offer.TotalPrice().Currency())
	assert.Equal(t, domain.CabinEconomy, offer.CabinClass())
	assert.Equal(t, "JJ", offer.CarrierCode())
	assert.Equal(t, "LATAM Airlines", offer.CarrierName())

	require.Len(t, offer.Segments(), 1)
	segment := offer.Segments()[0]
	assert.Equal(t, "GRU", segment.Origin())
	assert.Equal(t, "EZE", segment.Destination())
	assert.Equal(t, "JJ8064", segment.FlightNumber())
	assert.Equal(t, "JJ", segment.CarrierCode())
}

func TestNormalize_GeneratesInternalIDs(t *testing.T) {
	offers := normalize([]offerData{validOfferData(), validOfferData()})

	require.Len(t, offers, 2)
	assert.NotEmpty(t, offers[0].ID())
	assert.NotEqual(t, "off_001", offers[0].ID())
	assert.NotEqual(t, offers[0].ID(), offers[1].ID())
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, normalize(nil))
	assert.NotNil(t, normalize(nil))
	assert.Empty(t, normalize([]offerData{}))
}

func TestNormalize_DropsMalformedOffers(t *testing.T) {
	noSlices := validOfferData()
	noSlices.Slices = nil

	emptyFirstSlice := validOfferData()
	emptyFirstSlice.Slices[0].Segments = nil

	badPrice := validOfferData()
	badPrice.TotalAmount = "not-a-number"

	offers := normalize([]offerData{noSlices, validOfferData(), emptyFirstSlice, badPrice})

	// Only the valid offer survives; mapping continues past the bad ones.
	require.Len(t, offers, 1)
	assert.Equal(t, "GRU", offers[0].Origin())
}

func TestNormalizeOffer_InvalidSegmentsAreDroppedIndividually(t *testing.T) {
	bad := validSegmentData()
	bad.ArrivingAt = bad.DepartingAt // arrival not after departure

	offer := validOfferData()
	offer.Slices[0].Segments = []segmentData{bad, validSegmentData()}

	mapped, err := normalizeOffer(offer)
	require.NoError(t, err)
	assert.Len(t, mapped.Segments(), 1)
}

func TestNormalizeOffer_AllSegmentsInvalidDropsOffer(t *testing.T) {
	bad := validSegmentData()
	bad.Origin.IATACode = "123"

	offer := validOfferData()
	offer.Slices[0].Segments = []segmentData{bad}

	_, err := normalizeOffer(offer)
	assert.Error(t, err)
}

func TestNormalizeOffer_DurationFallsBackToZero(t *testing.T) {
	tests := []struct {
		name     string
		duration string
	}{
		{name: "absent token", duration: ""},
		{name: "malformed token", duration: "3 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := validOfferData()
			offer.Slices[0].Duration = tt.duration

			mapped, err := normalizeOffer(offer)
			require.NoError(t, err)
			assert.True(t, mapped.TotalDuration().IsZero())
		})
	}
}

func TestNormalizeOffer_MultiSegmentUsesFirstDepartureAndLastArrival(t *testing.T) {
	second := validSegmentData()
	second.Origin = placeData{IATACode: "EZE"}
	second.Destination = placeData{IATACode: "AEP"}
	second.DepartingAt = "2025-01-10T14:00:00Z"
	second.ArrivingAt = "2025-01-10T15:00:00Z"

	offer := validOfferData()
	offer.Slices[0].Segments = append(offer.Slices[0].Segments, second)
	offer.Slices[0].Duration = "PT6H5M"

	mapped, err := normalizeOffer(offer)
	require.NoError(t, err)

	assert.Equal(t, "GRU", mapped.Origin())
	assert.Equal(t, "AEP", mapped.Destination())
	assert.Equal(t, time.Date(2025, 1, 10, 8, 55, 0, 0, time.UTC), mapped.Departure())
	assert.Equal(t, time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC), mapped.Arrival())
	assert.Equal(t, 1, mapped.Stops())
}

func TestNormalizeOffer_OnlyFirstSliceIsMapped(t *testing.T) {
	returnSegment := validSegmentData()
	returnSegment.Origin = placeData{IATACode: "EZE"}
	returnSegment.Destination = placeData{IATACode: "GRU"}
	returnSegment.DepartingAt = "2025-01-20T10:00:00Z"
	returnSegment.ArrivingAt = "2025-01-20T13:10:00Z"

	offer := validOfferData()
	offer.Slices = append(offer.Slices, sliceData{
		Origin:      placeData{IATACode: "EZE"},
		Destination: placeData{IATACode: "GRU"},
		Duration:    "PT3H10M",
		Segments:    []segmentData{returnSegment},
	})

	mapped, err := normalizeOffer(offer)
	require.NoError(t, err)

	// The return slice is currently discarded.
	assert.Equal(t, "EZE", mapped.Destination())
	assert.Len(t, mapped.Segments(), 1)
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name         string
		amount       string
		currency     string
		wantErr      bool
		wantAmount   float64
		wantCurrency string
	}{
		{
			name:         "valid amount and currency",
			amount:       "1320.50",
			currency:     "USD",
			wantAmount:   1320.50,
			wantCurrency: "USD",
		},
		{
			name:         "negative amount clamps to zero",
			amount:       "-10.00",
			currency:     "BRL",
			wantAmount:   0,
			wantCurrency: "BRL",
		},
		{
			name:         "blank currency falls back to default",
			amount:       "250.00",
			currency:     "  ",
			wantAmount:   250,
			wantCurrency: DefaultCurrency,
		},
		{
			name:    "unparseable amount fails",
			amount:  "abc",
			wantErr: true,
		},
		{
			name:    "empty amount fails",
			amount:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			money, err := normalizePrice(tt.amount, tt.currency)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, money.Amount())
			assert.Equal(t, tt.wantCurrency, money.Currency())
		})
	}
}

func TestNormalizeSegment_CarrierFallback(t *testing.T) {
	s := validSegmentData()
	s.OperatingCarrier = carrierData{}
	s.OperatingCarrierFlightNumber = ""
	s.MarketingCarrier = carrierData{IATACode: "G3", Name: "GOL"}
	s.MarketingCarrierFlightNumber = "7600"

	segment, err := normalizeSegment(s)
	require.NoError(t, err)

	assert.Equal(t, "G3", segment.CarrierCode())
	assert.Equal(t, "G37600", segment.FlightNumber())
}

func TestNormalizeCabin_DefaultsToEconomy(t *testing.T) {
	noPassengers := validSegmentData()
	noPassengers.Passengers = nil
	assert.Equal(t, domain.CabinEconomy, normalizeCabin(noPassengers))

	unknown := validSegmentData()
	unknown.Passengers = []segmentPassengerData{{CabinClass: "suite"}}
	assert.Equal(t, domain.CabinEconomy, normalizeCabin(unknown))

	business := validSegmentData()
	business.Passengers = []segmentPassengerData{{CabinClass: "business"}}
	assert.Equal(t, domain.CabinBusiness, normalizeCabin(business))
}

func TestParseDateTime(t *testing.T) {
	t.Run("RFC3339 with zone", func(t *testing.T) {
		parsed, err := parseDateTime("2025-01-10T08:55:00-03:00")
		require.NoError(t, err)
		assert.Equal(t, 8, parsed.Hour())
	})

	t.Run("local time without zone", func(t *testing.T) {
		parsed, err := parseDateTime("2025-01-10T08:55:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 10, 8, 55, 0, 0, time.UTC), parsed)
	})

	t.Run("garbage fails", func(t *testing.T) {
		_, err := parseDateTime("10/01/2025 08:55")
		assert.Error(t, err)
	})
}
