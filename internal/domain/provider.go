package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// OfferProvider is the interface every flight offers provider adapter must
// implement. The gateway talks to a single upstream provider, but the core
// depends only on this boundary.
type OfferProvider interface {
	// Name returns the provider's unique identifier (e.g., "duffel").
	Name() string

	// Search queries the provider for offers matching the given query.
	// It must respect context cancellation, never return a nil slice on
	// success, and classify failures with the shared error taxonomy
	// (ErrUpstreamUnavailable, ErrUpstreamTimeout, ErrInvalidRequest).
	Search(ctx context.Context, query SearchQuery) ([]FlightOffer, error)
}
