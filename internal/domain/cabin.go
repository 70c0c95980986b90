package domain

import "strings"

// Cabin class labels used throughout the domain.
const (
	CabinEconomy        = "Economy"
	CabinPremiumEconomy = "PremiumEconomy"
	CabinBusiness       = "Business"
	CabinFirst          = "First"
)

// providerCabins maps provider cabin tokens (lowercase, underscore separated)
// to domain labels.
var providerCabins = map[string]string{
	"economy":         CabinEconomy,
	"premium_economy": CabinPremiumEconomy,
	"business":        CabinBusiness,
	"first":           CabinFirst,
}

// domainCabins is the reverse mapping, from domain labels (compared
// case-insensitively) to provider tokens.
var domainCabins = map[string]string{
	"economy":        "economy",
	"premiumeconomy": "premium_economy",
	"business":       "business",
	"first":          "first",
}

// NormalizeCabin maps a provider cabin token to its domain label.
// Unrecognized or absent tokens default to Economy.
func NormalizeCabin(token string) string {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if label, ok := providerCabins[normalized]; ok {
		return label
	}
	return CabinEconomy
}

// CabinToProviderToken maps a domain cabin label to the provider's vocabulary.
// The second return value is false for unrecognized labels; callers should
// then omit the cabin from the outgoing request and let the provider default.
func CabinToProviderToken(label string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	token, ok := domainCabins[normalized]
	return token, ok
}
