// Package tool exposes the offer search as a callable tool for agent
// runtimes. The definition carries a JSON schema so a caller can validate
// arguments before invoking the executor.
package tool

// Definition describes a callable tool.
type Definition struct {
	// Name uniquely identifies the tool within its host.
	Name string `json:"name"`

	// Description tells the caller what the tool does and which
	// arguments it accepts.
	Description string `json:"description"`

	// InputSchema defines the structure of the expected arguments,
	// in JSON Schema format.
	InputSchema SchemaProps `json:"input_schema"`
}

// SchemaProps is a simplified JSON Schema node, sufficient for describing
// the flat argument objects the tools here accept.
type SchemaProps struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]SchemaProps `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
	Enum        []interface{}          `json:"enum,omitempty"`
}

// searchOffersToolName is the registered name of the offer search tool.
const searchOffersToolName = "flights-search-offers"

// SearchOffersDefinition returns the tool definition for flight offer search.
func SearchOffersDefinition() Definition {
	return Definition{
		Name: searchOffersToolName,
		Description: "Searches for flight offers between two airports. " +
			"Arguments: origin (IATA code), destination (IATA code), " +
			"departureDate (YYYY-MM-DD), returnDate (optional, YYYY-MM-DD), " +
			"passengers (int, default 1), cabinClass (optional).",
		InputSchema: SchemaProps{
			Type: "object",
			Properties: map[string]SchemaProps{
				"origin": {
					Type:        "string",
					Description: "IATA code of the departure airport, e.g. GRU",
				},
				"destination": {
					Type:        "string",
					Description: "IATA code of the arrival airport, e.g. EZE",
				},
				"departureDate": {
					Type:        "string",
					Description: "Outbound date in YYYY-MM-DD format",
				},
				"returnDate": {
					Type:        "string",
					Description: "Optional return date in YYYY-MM-DD format",
				},
				"passengers": {
					Type:        "integer",
					Description: "Number of adult passengers (1-9, default 1)",
				},
				"cabinClass": {
					Type:        "string",
					Description: "Requested cabin",
					Enum:        []interface{}{"economy", "premium_economy", "business", "first"},
				},
			},
			Required: []string{"origin", "destination", "departureDate"},
		},
	}
}
