package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/ai-trip-planner/internal/types"
)

const minimalItineraryJSON = `{
	"destination": "Lisbon",
	"summary": "Three days of food and history.",
	"total_days": 1,
	"days": [{"day": 1, "date": "2026-09-01", "theme": "Arrival", "activities": []}]
}`

func TestParseItinerary_BareJSON(t *testing.T) {
	itinerary, err := parseItinerary(minimalItineraryJSON)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", itinerary.Destination)
	assert.Equal(t, 1, itinerary.TotalDays)
	require.Len(t, itinerary.Days, 1)
	assert.Equal(t, "Arrival", itinerary.Days[0].Theme)
}

func TestParseItinerary_StripsCodeFences(t *testing.T) {
	for name, wrapped := range map[string]string{
		"json fence":  "```json\n" + minimalItineraryJSON + "\n```",
		"plain fence": "```\n" + minimalItineraryJSON + "\n```",
		"whitespace":  "\n\n  " + minimalItineraryJSON + "  \n",
	} {
		t.Run(name, func(t *testing.T) {
			itinerary, err := parseItinerary(wrapped)
			require.NoError(t, err)
			assert.Equal(t, "Lisbon", itinerary.Destination)
		})
	}
}

func TestParseItinerary_ExtractsObjectFromProse(t *testing.T) {
	response := "Here is your itinerary:\n" + minimalItineraryJSON + "\nEnjoy your trip!"
	itinerary, err := parseItinerary(response)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", itinerary.Destination)
}

func TestParseItinerary_MalformedJSON(t *testing.T) {
	for name, response := range map[string]string{
		"not json":     "I could not generate an itinerary, sorry.",
		"truncated":    `{"destination": "Lisbon", "summary":`,
		"wrong shape":  `{"destination": ["Lisbon"]}`,
		"empty string": "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseItinerary(response)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrModelOutput)
		})
	}
}

func TestCleanJSONResponse_NoBraces(t *testing.T) {
	assert.Equal(t, "no json here", cleanJSONResponse("no json here"))
}
