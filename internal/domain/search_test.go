package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQuery_Validate(t *testing.T) {
	tests := []struct {
		name      string
		query     SearchQuery
		wantErr   bool
		wantField string
	}{
		{
			name: "valid one-way query",
			query: SearchQuery{
				Origin:        "GRU",
				Destination:   "EZE",
				DepartureDate: "2025-01-10",
				Passengers:    1,
				CabinClass:    CabinEconomy,
			},
		},
		{
			name: "valid round-trip query",
			query: SearchQuery{
				Origin:        "GRU",
				Destination:   "EZE",
				DepartureDate: "2025-01-10",
				ReturnDate:    "2025-01-20",
				Passengers:    2,
			},
		},
		{
			name: "blank origin fails first",
			query: SearchQuery{
				Destination: "EZE",
				Passengers:  1,
			},
			wantErr:   true,
			wantField: "origin",
		},
		{
			name: "blank destination fails",
			query: SearchQuery{
				Origin:     "GRU",
				Passengers: 1,
			},
			wantErr:   true,
			wantField: "destination",
		},
		{
			name: "same origin and destination fails case-insensitively",
			query: SearchQuery{
				Origin:      "GRU",
				Destination: "gru",
				Passengers:  1,
			},
			wantErr:   true,
			wantField: "destination",
		},
		{
			name: "zero passengers fails",
			query: SearchQuery{
				Origin:      "GRU",
				Destination: "EZE",
				Passengers:  0,
			},
			wantErr:   true,
			wantField: "passengers",
		},
		{
			name: "negative passengers fails",
			query: SearchQuery{
				Origin:      "GRU",
				Destination: "EZE",
				Passengers:  -1,
			},
			wantErr:   true,
			wantField: "passengers",
		},
		{
			name: "malformed departure date fails",
			query: SearchQuery{
				Origin:        "GRU",
				Destination:   "EZE",
				Passengers:    1,
				DepartureDate: "10/01/2025",
			},
			wantErr:   true,
			wantField: "departureDate",
		},
		{
			name: "impossible return date fails",
			query: SearchQuery{
				Origin:        "GRU",
				Destination:   "EZE",
				Passengers:    1,
				DepartureDate: "2025-01-10",
				ReturnDate:    "2025-02-30",
			},
			wantErr:   true,
			wantField: "returnDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidRequest(err))

				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantField, vErr.Field)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestSearchQuery_Validate_NilQuery(t *testing.T) {
	var q *SearchQuery
	err := q.Validate()
	require.Error(t, err)
	assert.True(t, IsInvalidRequest(err))
}

func TestSearchQuery_SetDefaults(t *testing.T) {
	q := SearchQuery{Origin: "GRU", Destination: "EZE"}
	q.SetDefaults()
	assert.Equal(t, 1, q.Passengers)

	q = SearchQuery{Origin: "GRU", Destination: "EZE", Passengers: 3}
	q.SetDefaults()
	assert.Equal(t, 3, q.Passengers)
}

func TestSearchQuery_IsRoundTrip(t *testing.T) {
	oneWay := SearchQuery{Origin: "GRU", Destination: "EZE"}
	assert.False(t, oneWay.IsRoundTrip())

	roundTrip := SearchQuery{Origin: "GRU", Destination: "EZE", ReturnDate: "2025-01-20"}
	assert.True(t, roundTrip.IsRoundTrip())
}
