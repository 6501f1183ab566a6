package types

// Wire shapes for the Google Places Web Service. Field names mirror the
// upstream JSON exactly; do not rename.

type GooglePlacesSearchResponse struct {
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message,omitempty"`
	Results      []GooglePlaceResult `json:"results"`
}

type GooglePlaceResult struct {
	Name             string             `json:"name"`
	FormattedAddress string             `json:"formatted_address"`
	Rating           float64            `json:"rating"`
	UserRatingsTotal int                `json:"user_ratings_total"`
	PriceLevel       *int               `json:"price_level,omitempty"`
	Types            []string           `json:"types"`
	Photos           []GooglePlacePhoto `json:"photos,omitempty"`
	PlaceID          string             `json:"place_id"`
	Geometry         GoogleGeometry     `json:"geometry"`
}

type GooglePlacePhoto struct {
	PhotoReference string `json:"photo_reference"`
	Height         int    `json:"height"`
	Width          int    `json:"width"`
}

type GoogleGeometry struct {
	Location *GoogleLatLng `json:"location,omitempty"`
}

type GoogleLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GooglePlaceDetailsResponse carries the extended field set requested via
// the details field mask. The result blob is cached and returned as-is.
type GooglePlaceDetailsResponse struct {
	Status string                 `json:"status"`
	Result map[string]interface{} `json:"result"`
}

type GoogleAutocompleteResponse struct {
	Status      string             `json:"status"`
	Predictions []GooglePrediction `json:"predictions"`
}

type GooglePrediction struct {
	Description          string                     `json:"description"`
	PlaceID              string                     `json:"place_id"`
	StructuredFormatting GoogleStructuredFormatting `json:"structured_formatting"`
}

type GoogleStructuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}
