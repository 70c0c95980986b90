package duffel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-offers-gateway/internal/domain"
	"github.com/flight-search/flight-offers-gateway/internal/infrastructure/timeutil"
)

// offerRequestsPath is the provider endpoint for creating offer requests.
const offerRequestsPath = "/air/offer_requests"

// apiVersion is the Duffel-Version header value this client speaks.
const apiVersion = "v2"

// Client is the HTTP transport for the Duffel offers API.
// Base address and credential token are injected explicitly at construction;
// nothing is read from ambient state.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
	log     zerolog.Logger
	clock   timeutil.Clock
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom http.Client (timeout policy lives there).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger sets the structured logger used for request diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithClock sets the clock used for latency measurement.
func WithClock(clock timeutil.Clock) Option {
	return func(c *Client) { c.clock = clock }
}

// NewClient creates a Client for the given base URL and bearer token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		hc:      http.DefaultClient,
		log:     zerolog.Nop(),
		clock:   timeutil.NewRealClock(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CreateOfferRequest posts an offer request and returns the decoded response.
// The call is a single pass-through: failures are classified through the
// domain error taxonomy and never retried here.
func (c *Client) CreateOfferRequest(ctx context.Context, body offerRequestBody) (*offerResponseBody, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: encode offer request: %v", domain.ErrInternal, err)
	}

	url := c.baseURL + offerRequestsPath + "?return_offers=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build offer request: %v", domain.ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Duffel-Version", apiVersion)

	start := c.clock.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, c.classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("provider", ProviderName).
		Str("endpoint", offerRequestsPath).
		Int("status", resp.StatusCode).
		Int64("duration_ms", c.clock.Now().Sub(start).Milliseconds()).
		Msg("Provider request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.classifyStatusError(resp)
	}

	var decoded offerResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, domain.NewUpstreamError(ProviderName, resp.StatusCode,
			fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamUnavailable, err))
	}

	return &decoded, nil
}

// classifyTransportError maps network-level failures onto the error taxonomy.
// Caller cancellation is propagated as context.Canceled, distinct from a
// provider timeout.
func (c *Client) classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) && ctx.Err() == context.Canceled {
		return ctx.Err()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewUpstreamError(ProviderName, 0,
			fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err))
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewUpstreamError(ProviderName, 0,
			fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err))
	}

	return domain.NewUpstreamError(ProviderName, 0,
		fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err))
}

// classifyStatusError maps non-success HTTP statuses onto the error taxonomy.
// Provider validation messages are allowed through to the caller since they
// describe the caller's own input; other bodies are not echoed.
func (c *Client) classifyStatusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return domain.NewUpstreamError(ProviderName, resp.StatusCode, domain.ErrUpstreamTimeout)

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if msg := readProviderError(resp.Body); msg != "" {
			return domain.WrapInvalidRequest("provider rejected request: %s", msg)
		}
		return domain.WrapInvalidRequest("provider rejected request with status %d", resp.StatusCode)

	default:
		return domain.NewUpstreamError(ProviderName, resp.StatusCode, domain.ErrUpstreamUnavailable)
	}
}

// readProviderError extracts the first error message from a provider error
// body, or "" if the body is not in the expected shape.
func readProviderError(body io.Reader) string {
	var decoded apiErrorBody
	if err := json.NewDecoder(body).Decode(&decoded); err != nil {
		return ""
	}
	if len(decoded.Errors) == 0 {
		return ""
	}
	if decoded.Errors[0].Message != "" {
		return decoded.Errors[0].Message
	}
	return decoded.Errors[0].Title
}
