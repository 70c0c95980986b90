package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-offers-gateway/internal/adapter/provider/duffel"
	"github.com/flight-search/flight-offers-gateway/test/testutil"
)

// newGatewayServer wires the full stack (HTTP handler -> use case -> provider
// adapter -> stubbed upstream) against a canned provider response.
func newGatewayServer(t *testing.T, upstream http.HandlerFunc) (*TestServer, *httptest.Server) {
	t.Helper()

	stub := httptest.NewServer(upstream)
	t.Cleanup(stub.Close)

	client := duffel.NewClient(stub.URL, "test_token")
	adapter := duffel.NewAdapter(client)

	return NewTestServer(CreateUseCase(adapter), adapter.Name()), stub
}

func TestGateway_EndToEnd_Success(t *testing.T) {
	fixture := testutil.LoadTestJSON(t, "duffel_offer_response.json")

	var capturedAuth, capturedVersion string
	var capturedBody map[string]interface{}

	ts, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		capturedAuth = r.Header.Get("Authorization")
		capturedVersion = r.Header.Get("Duffel-Version")
		_ = json.NewDecoder(r.Body).Decode(&capturedBody)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/air/offer_requests", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("return_offers"))

		w.Header().Set("Content-Type", "application/json")
		w.Write(fixture)
	})

	body := DefaultSearchRequest()
	body.Passengers = 2

	resp := ts.SearchRequest(body)

	require.Equal(t, http.StatusOK, resp.Code)

	// Upstream request carries credentials and versioning
	assert.Equal(t, "Bearer test_token", capturedAuth)
	assert.Equal(t, "v2", capturedVersion)

	// Two passengers become two adult entries in the outgoing request
	data, ok := capturedBody["data"].(map[string]interface{})
	require.True(t, ok)
	passengers, ok := data["passengers"].([]interface{})
	require.True(t, ok)
	assert.Len(t, passengers, 2)

	parsed, err := resp.ParseSearchResponse()
	require.NoError(t, err)

	require.Len(t, parsed.Offers, 2)
	assert.Equal(t, 2, parsed.Metadata.TotalResults)
	assert.Equal(t, duffel.ProviderName, parsed.Metadata.Provider)

	direct := parsed.Offers[0]
	assert.Equal(t, "GRU", direct.Origin)
	assert.Equal(t, "EZE", direct.Destination)
	assert.Equal(t, 1320.50, direct.Price.Amount)
	assert.Equal(t, "USD", direct.Price.Currency)
	assert.Equal(t, 190, direct.Duration.TotalMinutes)
	assert.Equal(t, "PT3H10M", direct.Duration.ISO8601)
	assert.Equal(t, "LA", direct.Carrier.Code)
	assert.Equal(t, 0, direct.Stops)
	require.Len(t, direct.Segments, 1)
	assert.Equal(t, "LA8000", direct.Segments[0].FlightNumber)

	oneStop := parsed.Offers[1]
	assert.Equal(t, 980.00, oneStop.Price.Amount)
	assert.Equal(t, 405, oneStop.Duration.TotalMinutes)
	assert.Equal(t, "AR", oneStop.Carrier.Code)
	assert.Equal(t, 1, oneStop.Stops)
	require.Len(t, oneStop.Segments, 2)
	assert.Equal(t, "AR1261", oneStop.Segments[0].FlightNumber)
	assert.Equal(t, "AR2694", oneStop.Segments[1].FlightNumber)

	// Offer IDs are regenerated internally, never the provider's
	assert.NotEqual(t, "off_0000AhGkLmNoPqRsTuVwXz", direct.ID)
	assert.NotEmpty(t, direct.ID)
}

func TestGateway_EndToEnd_UpstreamServerError(t *testing.T) {
	ts, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	resp := ts.SearchRequest(DefaultSearchRequest())

	assert.Equal(t, http.StatusBadGateway, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "upstream_error", errResp["code"])
}

func TestGateway_EndToEnd_UpstreamTimeoutStatus(t *testing.T) {
	ts, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	})

	resp := ts.SearchRequest(DefaultSearchRequest())

	assert.Equal(t, http.StatusGatewayTimeout, resp.Code)
}

func TestGateway_EndToEnd_UpstreamRejectsRequest(t *testing.T) {
	ts, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":[{"type":"validation_error","title":"Invalid departure date","message":"departure_date must not be in the past"}]}`))
	})

	resp := ts.SearchRequest(DefaultSearchRequest())

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Contains(t, errResp["message"], "departure_date must not be in the past")
}

func TestGateway_EndToEnd_MalformedUpstreamBody(t *testing.T) {
	ts, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not json`))
	})

	resp := ts.SearchRequest(DefaultSearchRequest())

	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestGateway_EndToEnd_EmptyOfferList(t *testing.T) {
	ts, _ := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"orq_1","offers":[]}}`))
	})

	resp := ts.SearchRequest(DefaultSearchRequest())

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), `"offers":[]`)
}
