// Package mock provides test doubles for the flight offers gateway.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/flight-offers-gateway/internal/domain"
)

// Provider is a configurable mock implementation of domain.OfferProvider.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and upstream failures.
type Provider struct {
	name      string
	offers    []domain.FlightOffer
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name: name,
	}
}

// WithOffers configures the provider to return the given offers.
func (p *Provider) WithOffers(offers []domain.FlightOffer) *Provider {
	p.offers = offers
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.OfferProvider.Search.
// It respects context cancellation, applies the configured delay,
// and returns the configured offers or error.
func (p *Provider) Search(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.offers, nil
}

// CallCount returns the number of times Search was called.
// This is useful for verifying provider interactions.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.OfferProvider at compile time.
var _ domain.OfferProvider = (*Provider)(nil)

// SampleOffers returns a slice of valid sample offers for testing.
// Offers depart two hours apart starting (by default) on 2025-12-15 08:00 UTC
// and carry increasing prices.
func SampleOffers(count int) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, count)

	baseTime := time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		departure := baseTime.Add(time.Duration(i*2) * time.Hour)
		arrival := departure.Add(3*time.Hour + 10*time.Minute)

		duration, err := domain.DurationFromMinutes(190)
		if err != nil {
			panic(fmt.Sprintf("mock: build duration: %v", err))
		}

		price, err := domain.NewMoney(1000+float64(i*150), "USD")
		if err != nil {
			panic(fmt.Sprintf("mock: build price: %v", err))
		}

		flightNumber := fmt.Sprintf("LA%d", 8000+i)
		segment, err := domain.NewFlightSegment("GRU", "EZE", departure, arrival, flightNumber, "LA", duration)
		if err != nil {
			panic(fmt.Sprintf("mock: build segment: %v", err))
		}

		offer, err := domain.NewFlightOffer("GRU", "EZE", departure, arrival, duration, price, "LA", "LATAM Airlines", domain.CabinEconomy, []domain.FlightSegment{segment})
		if err != nil {
			panic(fmt.Sprintf("mock: build offer: %v", err))
		}

		offers[i] = offer
	}

	return offers
}
