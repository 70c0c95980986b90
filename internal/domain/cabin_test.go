package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCabin(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{token: "economy", want: CabinEconomy},
		{token: "premium_economy", want: CabinPremiumEconomy},
		{token: "business", want: CabinBusiness},
		{token: "first", want: CabinFirst},
		{token: "ECONOMY", want: CabinEconomy},
		{token: " business ", want: CabinBusiness},
		{token: "", want: CabinEconomy},
		{token: "suite", want: CabinEconomy},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCabin(tt.token))
		})
	}
}

func TestCabinToProviderToken(t *testing.T) {
	tests := []struct {
		label   string
		want    string
		wantOK  bool
	}{
		{label: CabinEconomy, want: "economy", wantOK: true},
		{label: CabinPremiumEconomy, want: "premium_economy", wantOK: true},
		{label: "business", want: "business", wantOK: true},
		{label: "FIRST", want: "first", wantOK: true},
		{label: "Suite", wantOK: false},
		{label: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			token, ok := CabinToProviderToken(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, token)
			}
		})
	}
}
