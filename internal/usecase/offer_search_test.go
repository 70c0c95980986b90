package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-offers-gateway/internal/domain"
)

// testLogger returns a disabled logger for tests.
func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// createTestOffer builds a valid offer for use case tests.
func createTestOffer(t *testing.T) domain.FlightOffer {
	t.Helper()

	departure := time.Date(2025, 1, 10, 8, 55, 0, 0, time.UTC)
	arrival := time.Date(2025, 1, 10, 12, 5, 0, 0, time.UTC)

	duration, err := domain.DurationFromParts(3, 10)
	require.NoError(t, err)

	price, err := domain.NewMoney(1320.50, "USD")
	require.NoError(t, err)

	segment, err := domain.NewFlightSegment("GRU", "EZE", departure, arrival, "JJ8064", "JJ", duration)
	require.NoError(t, err)

	offer, err := domain.NewFlightOffer("GRU", "EZE", departure, arrival, duration, price, "JJ", "LATAM Airlines", domain.CabinEconomy, []domain.FlightSegment{segment})
	require.NoError(t, err)

	return offer
}

func validQuery() domain.SearchQuery {
	return domain.SearchQuery{
		Origin:        "GRU",
		Destination:   "EZE",
		DepartureDate: "2025-01-10",
		Passengers:    1,
		CabinClass:    domain.CabinEconomy,
	}
}

func TestOfferSearchUseCase_Search_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	offer := createTestOffer(t)

	provider := domain.NewMockOfferProvider(ctrl)
	provider.EXPECT().Name().Return("duffel").AnyTimes()
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]domain.FlightOffer{offer}, nil)

	uc := NewOfferSearchUseCase(provider, testLogger())

	offers, err := uc.Search(context.Background(), validQuery())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, offer.ID(), offers[0].ID())
}

func TestOfferSearchUseCase_Search_AppliesPassengerDefault(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := domain.NewMockOfferProvider(ctrl)
	provider.EXPECT().Name().Return("duffel").AnyTimes()
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
			assert.Equal(t, 1, query.Passengers)
			return []domain.FlightOffer{}, nil
		},
	)

	uc := NewOfferSearchUseCase(provider, testLogger())

	query := validQuery()
	query.Passengers = 0

	_, err := uc.Search(context.Background(), query)
	require.NoError(t, err)
}

func TestOfferSearchUseCase_Search_ValidationFailureSkipsProvider(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.SearchQuery)
		wantField string
	}{
		{
			name:      "blank origin",
			mutate:    func(q *domain.SearchQuery) { q.Origin = "" },
			wantField: "origin",
		},
		{
			name:      "blank destination",
			mutate:    func(q *domain.SearchQuery) { q.Destination = " " },
			wantField: "destination",
		},
		{
			name: "origin equals destination",
			mutate: func(q *domain.SearchQuery) {
				q.Origin = "GRU"
				q.Destination = "gru"
			},
			wantField: "destination",
		},
		{
			name:      "negative passengers",
			mutate:    func(q *domain.SearchQuery) { q.Passengers = -2 },
			wantField: "passengers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			// No Search expectation: validation must abort before any
			// provider call.
			provider := domain.NewMockOfferProvider(ctrl)
			provider.EXPECT().Name().Return("duffel").AnyTimes()

			uc := NewOfferSearchUseCase(provider, testLogger())

			query := validQuery()
			tt.mutate(&query)

			_, err := uc.Search(context.Background(), query)
			require.Error(t, err)
			assert.True(t, domain.IsInvalidRequest(err))

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestOfferSearchUseCase_Search_PropagatesProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
	}{
		{
			name:    "upstream unavailable",
			err:     domain.NewUpstreamError("duffel", 502, domain.ErrUpstreamUnavailable),
			checker: domain.IsUpstreamUnavailable,
		},
		{
			name:    "upstream timeout",
			err:     domain.NewUpstreamError("duffel", 0, domain.ErrUpstreamTimeout),
			checker: domain.IsUpstreamTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			provider := domain.NewMockOfferProvider(ctrl)
			provider.EXPECT().Name().Return("duffel").AnyTimes()
			provider.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			uc := NewOfferSearchUseCase(provider, testLogger())

			_, err := uc.Search(context.Background(), validQuery())
			require.Error(t, err)
			assert.True(t, tt.checker(err))
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}

func TestOfferSearchUseCase_Search_NeverReturnsNilOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := domain.NewMockOfferProvider(ctrl)
	provider.EXPECT().Name().Return("duffel").AnyTimes()
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil)

	uc := NewOfferSearchUseCase(provider, testLogger())

	offers, err := uc.Search(context.Background(), validQuery())
	require.NoError(t, err)
	require.NotNil(t, offers)
	assert.Empty(t, offers)
}

func TestOfferSearchUseCase_Search_ContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := domain.NewMockOfferProvider(ctrl)
	provider.EXPECT().Name().Return("duffel").AnyTimes()
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	go cancel()

	uc := NewOfferSearchUseCase(provider, testLogger())

	_, err := uc.Search(ctx, validQuery())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
