package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/ai-trip-planner/internal/types"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func sampleRequest() *types.TripRequest {
	return &types.TripRequest{
		Destination:         "Lisbon",
		StartDate:           "2026-09-01",
		EndDate:             "2026-09-03",
		Travelers:           2,
		Budget:              types.BudgetModerate,
		TravelStyle:         []types.TravelStyle{types.StyleFoodie, types.StyleCultural},
		Interests:           []string{"food", "history"},
		SpecialRequirements: "vegetarian options",
	}
}

func sampleDestinationData() *types.DestinationData {
	return &types.DestinationData{
		Destination: "Lisbon",
		Budget:      types.BudgetModerate,
		Restaurants: []types.PlaceInfo{
			{
				Name:         "Taberna do Mar",
				Address:      "Rua Azul 1, Lisboa",
				Rating:       4.7,
				TotalRatings: 321,
				PriceLevel:   intPtr(2),
				Types:        []string{"restaurant", "food", "point_of_interest", "establishment"},
				Latitude:     floatPtr(38.7),
				Longitude:    floatPtr(-9.1),
			},
		},
		Attractions: []types.PlaceInfo{
			{Name: "Castelo de S. Jorge", Rating: 4.6, TotalRatings: 8000},
		},
		Hotels: nil,
	}
}

func TestBuildTripPrompt_Deterministic(t *testing.T) {
	req := sampleRequest()
	data := sampleDestinationData()

	first := buildTripPrompt(req, data, 3)
	second := buildTripPrompt(req, data, 3)
	assert.Equal(t, first, second, "identical input must yield byte-identical prompts")
}

func TestBuildTripPrompt_IncludesParametersAndData(t *testing.T) {
	prompt := buildTripPrompt(sampleRequest(), sampleDestinationData(), 3)

	assert.Contains(t, prompt, "**Destination:** Lisbon")
	assert.Contains(t, prompt, "**Dates:** 2026-09-01 to 2026-09-03 (3 days)")
	assert.Contains(t, prompt, "**Travelers:** 2 person(s)")
	assert.Contains(t, prompt, "**Budget Level:** moderate")
	assert.Contains(t, prompt, "**Travel Style:** foodie, cultural")
	assert.Contains(t, prompt, "**Interests:** food, history")
	assert.Contains(t, prompt, "**Special Requirements:** vegetarian options")

	assert.Contains(t, prompt, "1. Taberna do Mar (Rating: 4.7⭐, 321 reviews)")
	assert.Contains(t, prompt, "Address: Rua Azul 1, Lisboa")
	assert.Contains(t, prompt, "Price: $$")
	assert.Contains(t, prompt, "Type: restaurant, food, point_of_interest")
	assert.NotContains(t, prompt, "establishment", "types beyond the first three are dropped")
	assert.Contains(t, prompt, "Coords: 38.7, -9.1")

	// Empty hotel list renders the placeholder, not an empty block.
	assert.Contains(t, prompt, "Hotels:\nNo data available")

	// The schema is embedded verbatim.
	assert.Contains(t, prompt, `"destination": "string - destination name"`)
	assert.Contains(t, prompt, `"emergency_contacts"`)
}

func TestBuildTripPrompt_Defaults(t *testing.T) {
	req := &types.TripRequest{
		Destination: "Porto",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-01",
		Travelers:   1,
	}
	prompt := buildTripPrompt(req, &types.DestinationData{Destination: "Porto"}, 1)

	assert.Contains(t, prompt, "**Budget Level:** moderate")
	assert.Contains(t, prompt, "**Travel Style:** cultural")
	assert.Contains(t, prompt, "**Interests:** general sightseeing")
	assert.Contains(t, prompt, "**Special Requirements:** none")
}

func TestFormatPlacesForPrompt_OmitsAbsentFields(t *testing.T) {
	out := formatPlacesForPrompt([]types.PlaceInfo{
		{Name: "Nameless Cafe"},
	})

	assert.Equal(t, "1. Nameless Cafe", out)
	assert.NotContains(t, out, "Rating")
	assert.NotContains(t, out, "Address")
	assert.NotContains(t, out, "Price")
	assert.NotContains(t, out, "Coords")
}

func TestFormatPlacesForPrompt_NumbersEntries(t *testing.T) {
	out := formatPlacesForPrompt([]types.PlaceInfo{
		{Name: "First", Rating: 4.5},
		{Name: "Second", Rating: 4.2},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "1. First"))
	assert.True(t, strings.HasPrefix(lines[1], "2. Second"))
}

func TestFormatPlacesForPrompt_PriceLevelFloor(t *testing.T) {
	out := formatPlacesForPrompt([]types.PlaceInfo{
		{Name: "Free Spot", PriceLevel: intPtr(0)},
	})
	assert.Contains(t, out, "Price: $")
	assert.NotContains(t, out, "Price: $$")
}

func TestFormatPlacesForPrompt_Empty(t *testing.T) {
	assert.Equal(t, "No data available", formatPlacesForPrompt(nil))
	assert.Equal(t, "No data available", formatPlacesForPrompt([]types.PlaceInfo{}))
}
