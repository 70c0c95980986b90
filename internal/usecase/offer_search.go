// Package usecase contains the application-level flow for searching flight
// offers: input validation followed by a single pass-through provider call.
package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-offers-gateway/internal/domain"
)

// OfferSearchUseCase defines the search operation exposed to the front ends
// (HTTP endpoint and tool invocation surface).
type OfferSearchUseCase interface {
	// Search validates the query and forwards it to the offers provider.
	// It returns an ordered, possibly empty, never-nil offer collection.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error)
}

// offerSearchUseCase implements OfferSearchUseCase against a single provider.
type offerSearchUseCase struct {
	provider domain.OfferProvider
	log      zerolog.Logger
}

// NewOfferSearchUseCase creates an OfferSearchUseCase backed by the given
// provider.
func NewOfferSearchUseCase(provider domain.OfferProvider, log zerolog.Logger) OfferSearchUseCase {
	return &offerSearchUseCase{
		provider: provider,
		log:      log,
	}
}

// Search implements OfferSearchUseCase.Search.
// Validation failures abort the call before any provider request is made.
// Provider failures are propagated unchanged; there are no retries.
func (uc *offerSearchUseCase) Search(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	query.SetDefaults()

	if err := query.Validate(); err != nil {
		return nil, err
	}

	uc.log.Debug().
		Str("provider", uc.provider.Name()).
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Str("departure_date", query.DepartureDate).
		Bool("round_trip", query.IsRoundTrip()).
		Int("passengers", query.Passengers).
		Msg("Searching flight offers")

	offers, err := uc.provider.Search(ctx, query)
	if err != nil {
		uc.log.Warn().
			Err(err).
			Str("provider", uc.provider.Name()).
			Msg("Provider search failed")
		return nil, err
	}

	if offers == nil {
		offers = []domain.FlightOffer{}
	}

	uc.log.Info().
		Str("provider", uc.provider.Name()).
		Int("offers", len(offers)).
		Msg("Flight offers search completed")

	return offers, nil
}

// Ensure offerSearchUseCase implements OfferSearchUseCase at compile time.
var _ OfferSearchUseCase = (*offerSearchUseCase)(nil)
