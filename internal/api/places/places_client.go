package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/FACorreiaa/ai-trip-planner/internal/types"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// GoogleClient is a thin HTTP client for the Google Places Web Service.
// It only shapes requests and decodes responses; status interpretation and
// filtering live in the service layer.
type GoogleClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewGoogleClientWithBaseURL is used by tests to point the client at a fake
// upstream server.
func NewGoogleClientWithBaseURL(apiKey, baseURL string) *GoogleClient {
	c := NewGoogleClient(apiKey)
	c.baseURL = baseURL
	return c
}

func (c *GoogleClient) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", types.ErrUpstream, err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrUpstream, err)
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", types.ErrUpstream, err)
	}
	return nil
}

// TextSearch issues one Places text-search request. location and placeType
// are optional; radius only applies alongside location.
func (c *GoogleClient) TextSearch(ctx context.Context, query, location string, radius int, placeType string) (*types.GooglePlacesSearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	if location != "" {
		params.Set("location", location)
		params.Set("radius", strconv.Itoa(radius))
	}
	if placeType != "" {
		params.Set("type", placeType)
	}

	var resp types.GooglePlacesSearchResponse
	if err := c.get(ctx, "/textsearch/json", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// detailsFieldMask is the extended field set requested for place details.
const detailsFieldMask = "name,formatted_address,rating,user_ratings_total,price_level," +
	"types,photos,geometry,opening_hours,website,formatted_phone_number," +
	"reviews,url"

func (c *GoogleClient) Details(ctx context.Context, placeID string) (*types.GooglePlaceDetailsResponse, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFieldMask)

	var resp types.GooglePlaceDetailsResponse
	if err := c.get(ctx, "/details/json", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *GoogleClient) Autocomplete(ctx context.Context, input, typeFilter string) (*types.GoogleAutocompleteResponse, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("types", typeFilter)

	var resp types.GoogleAutocompleteResponse
	if err := c.get(ctx, "/autocomplete/json", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PhotoURL builds the public photo URL for a photo reference.
func (c *GoogleClient) PhotoURL(photoReference string) string {
	if photoReference == "" {
		return ""
	}
	return fmt.Sprintf("%s/photo?maxwidth=800&photo_reference=%s&key=%s", c.baseURL, photoReference, c.apiKey)
}
