package types

// PlaceInfo is the normalized point-of-interest representation produced
// by the places service from Google Places responses. Immutable once built.
type PlaceInfo struct {
	Name         string   `json:"name"`
	Address      string   `json:"address,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	TotalRatings int      `json:"total_ratings,omitempty"`
	PriceLevel   *int     `json:"price_level,omitempty"`
	Types        []string `json:"types,omitempty"`
	PhotoURL     string   `json:"photo_url,omitempty"`
	PlaceID      string   `json:"place_id,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	OpeningHours []string `json:"opening_hours,omitempty"`
	Website      string   `json:"website,omitempty"`
}

// DestinationData bundles the three POI lists fetched for a destination.
// Built fresh per request; only the underlying queries are cached.
type DestinationData struct {
	Destination string      `json:"destination"`
	Budget      string      `json:"budget"`
	Restaurants []PlaceInfo `json:"restaurants"`
	Attractions []PlaceInfo `json:"attractions"`
	Hotels      []PlaceInfo `json:"hotels"`
}

// AutocompleteSuggestion is one entry returned by the autocomplete endpoint.
type AutocompleteSuggestion struct {
	Description   string `json:"description"`
	PlaceID       string `json:"place_id"`
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

type PlaceSearchRequest struct {
	Query      string  `json:"query"`
	Location   string  `json:"location,omitempty"`
	Radius     int     `json:"radius,omitempty"`
	Type       string  `json:"type,omitempty"`
	MinRating  float64 `json:"min_rating,omitempty"`
	MaxResults int     `json:"max_results,omitempty"`
}

type AutocompleteRequest struct {
	Input string `json:"input"`
	Types string `json:"types,omitempty"`
}
