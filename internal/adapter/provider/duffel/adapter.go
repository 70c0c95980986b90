package duffel

import (
	"context"

	"github.com/flight-search/flight-offers-gateway/internal/domain"
)

// ProviderName is the unique identifier for the Duffel offers provider.
const ProviderName = "duffel"

// Adapter implements domain.OfferProvider for the Duffel offers API.
// It owns no logic beyond sequencing: map the query, call the transport,
// normalize the response.
type Adapter struct {
	client *Client
}

// NewAdapter creates an Adapter backed by the given transport client.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

// Name returns the provider's unique identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search implements domain.OfferProvider.Search.
// Transport failures are propagated unchanged; an empty upstream result maps
// to an empty, non-nil slice.
func (a *Adapter) Search(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	request := buildOfferRequest(query)

	response, err := a.client.CreateOfferRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	return normalize(response.Data.Offers), nil
}

// Ensure Adapter implements domain.OfferProvider at compile time.
var _ domain.OfferProvider = (*Adapter)(nil)
