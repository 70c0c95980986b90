package tool

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-offers-gateway/internal/domain"
	"github.com/flight-search/flight-offers-gateway/internal/usecase"
)

// SearchTool executes flight offer searches from untyped tool arguments.
type SearchTool struct {
	useCase usecase.OfferSearchUseCase
	log     zerolog.Logger
}

// NewSearchTool creates a SearchTool backed by the given use case.
func NewSearchTool(uc usecase.OfferSearchUseCase, log zerolog.Logger) *SearchTool {
	return &SearchTool{
		useCase: uc,
		log:     log.With().Str("component", "tool").Logger(),
	}
}

// Name returns the tool's registered name.
func (t *SearchTool) Name() string {
	return searchOffersToolName
}

// Definition returns the tool definition including its input schema.
func (t *SearchTool) Definition() Definition {
	return SearchOffersDefinition()
}

// OfferResult is the flattened offer representation returned to tool callers.
type OfferResult struct {
	ID            string   `json:"id"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	Departure     string   `json:"departure"`
	Arrival       string   `json:"arrival"`
	Duration      string   `json:"duration"`
	PriceAmount   float64  `json:"price_amount"`
	PriceCurrency string   `json:"price_currency"`
	Carrier       string   `json:"carrier"`
	CabinClass    string   `json:"cabin_class,omitempty"`
	Stops         int      `json:"stops"`
	FlightNumbers []string `json:"flight_numbers"`
}

// Execute parses the untyped arguments into a search query, runs the search,
// and returns flattened offer results. Argument parsing is lenient about
// numeric types since JSON decoding yields float64 for all numbers.
func (t *SearchTool) Execute(ctx context.Context, args map[string]interface{}) ([]OfferResult, error) {
	query := domain.SearchQuery{
		Origin:        stringArg(args, "origin"),
		Destination:   stringArg(args, "destination"),
		DepartureDate: stringArg(args, "departureDate"),
		ReturnDate:    stringArg(args, "returnDate"),
		Passengers:    intArg(args, "passengers"),
	}

	if cabin := stringArg(args, "cabinClass"); cabin != "" {
		query.CabinClass = domain.NormalizeCabin(cabin)
	}

	t.log.Debug().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Str("departure_date", query.DepartureDate).
		Msg("Executing offer search tool")

	offers, err := t.useCase.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]OfferResult, len(offers))
	for i, offer := range offers {
		results[i] = toOfferResult(offer)
	}
	return results, nil
}

func toOfferResult(offer domain.FlightOffer) OfferResult {
	segments := offer.Segments()
	numbers := make([]string, len(segments))
	for i, seg := range segments {
		numbers[i] = seg.FlightNumber()
	}

	return OfferResult{
		ID:            offer.ID(),
		Origin:        offer.Origin(),
		Destination:   offer.Destination(),
		Departure:     offer.Departure().Format("2006-01-02T15:04:05-07:00"),
		Arrival:       offer.Arrival().Format("2006-01-02T15:04:05-07:00"),
		Duration:      offer.TotalDuration().Formatted(),
		PriceAmount:   offer.TotalPrice().Amount(),
		PriceCurrency: offer.TotalPrice().Currency(),
		Carrier:       offer.CarrierCode(),
		CabinClass:    offer.CabinClass(),
		Stops:         offer.Stops(),
		FlightNumbers: numbers,
	}
}

// stringArg reads a trimmed string argument, or "" when absent.
func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// intArg reads an integer argument, accepting both int and float64 forms.
func intArg(args map[string]interface{}, key string) int {
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}
