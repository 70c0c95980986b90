// Package integration provides helpers and integration tests for the flight
// offers gateway. Integration tests verify that components work together
// correctly, including the HTTP handler, use case, and provider adapter.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/flight-search/flight-offers-gateway/internal/adapter/http"
	"github.com/flight-search/flight-offers-gateway/internal/domain"
	"github.com/flight-search/flight-offers-gateway/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.OfferHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.OfferSearchUseCase, providerName string) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewOfferHandler(uc, providerName)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/offers/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a search response DTO.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchOffersResponseDTO, error) {
	var resp httpAdapter.SearchOffersResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Passengers    int    `json:"passengers"`
	CabinClass    string `json:"cabinClass,omitempty"`
}

// DefaultSearchRequest returns a valid search request body for testing.
// Uses a date 30 days in the future.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "GRU",
		Destination:   "EZE",
		DepartureDate: FutureDate(),
		Passengers:    1,
	}
}

// CreateUseCase creates a use case around the given provider with a silent logger.
func CreateUseCase(provider domain.OfferProvider) usecase.OfferSearchUseCase {
	return usecase.NewOfferSearchUseCase(provider, zerolog.Nop())
}

// FutureDate returns a date string 30 days in the future in YYYY-MM-DD format.
func FutureDate() string {
	return time.Now().AddDate(0, 0, 30).Format("2006-01-02")
}

// DefaultSearchQuery returns a valid search query for exercising the use case directly.
func DefaultSearchQuery() domain.SearchQuery {
	return domain.SearchQuery{
		Origin:        "GRU",
		Destination:   "EZE",
		DepartureDate: FutureDate(),
		Passengers:    1,
	}
}
