package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/FACorreiaa/ai-trip-planner/internal/types"
)

// cleanJSONResponse strips markdown code fences and surrounding prose from a
// model response, leaving the bare JSON object.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	if strings.HasSuffix(response, "```") {
		response = strings.TrimSuffix(response, "```")
	}
	response = strings.TrimSpace(response)

	// The model occasionally wraps the object in explanatory text. Extract
	// from the first { to the last }.
	firstBrace := strings.Index(response, "{")
	lastBrace := strings.LastIndex(response, "}")
	if firstBrace == -1 || lastBrace == -1 || lastBrace < firstBrace {
		return response
	}
	return response[firstBrace : lastBrace+1]
}

// parseItinerary parses the model's text response into a TripItinerary.
// A response that does not decode into the expected object shape yields
// ErrModelOutput, distinct from transport failures.
func parseItinerary(response string) (*types.TripItinerary, error) {
	jsonStr := cleanJSONResponse(response)

	var itinerary types.TripItinerary
	if err := json.Unmarshal([]byte(jsonStr), &itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrModelOutput, err)
	}
	return &itinerary, nil
}
