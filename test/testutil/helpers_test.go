package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTestJSON(t *testing.T) {
	data := LoadTestJSON(t, "duffel_offer_response.json")
	require.NotEmpty(t, data)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body), "fixture should be valid JSON")
	assert.Contains(t, body, "data")
}

func TestMustParseTime(t *testing.T) {
	parsed := MustParseTime(t, "2025-12-15T08:55:00Z")
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.December, parsed.Month())
	assert.Equal(t, 8, parsed.Hour())
}

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2025-01-10")
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 10, parsed.Day())
}

func TestPtr(t *testing.T) {
	v := Ptr(42)
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)

	s := Ptr("GRU")
	require.NotNil(t, s)
	assert.Equal(t, "GRU", *s)
}

func TestFutureDate(t *testing.T) {
	tomorrow := FutureDate(1)
	parsed := MustParseDate(t, tomorrow)
	assert.True(t, parsed.After(time.Now()), "date should be in the future")
}
