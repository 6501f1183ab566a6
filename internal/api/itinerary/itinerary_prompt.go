package itinerary

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/ai-trip-planner/internal/types"
)

// systemInstruction is the fixed persona and rule set sent as the system
// turn on every generation call.
const systemInstruction = `You are TripStellar AI, an expert travel planner. You create detailed,
personalized travel itineraries using real place data provided to you.

IMPORTANT RULES:
1. Use the REAL restaurant and attraction data provided — include their actual names, ratings, and addresses.
2. Create a day-by-day itinerary with specific times, activities, restaurant recommendations, and travel tips.
3. Be practical with timing — account for travel between locations.
4. Match the travel style and budget preferences of the traveler.
5. Include local tips, cultural notes, and money-saving advice.
6. Always respond with valid JSON matching the exact schema specified.`

// itinerarySchema is the exact output contract embedded in the human turn.
// Field names and nesting must match types.TripItinerary.
const itinerarySchema = `{
    "destination": "string - destination name",
    "summary": "string - 2-3 sentence trip summary",
    "total_days": number,
    "best_time_to_visit": "string",
    "currency": "string - local currency",
    "language": "string - primary language",
    "travel_tips": ["string array of 5-8 travel tips"],
    "packing_list": ["string array of 8-12 packing items"],
    "estimated_total_budget": "string - total estimated cost",
    "emergency_contacts": {"police": "number", "ambulance": "number", "tourist_helpline": "number"},
    "days": [
        {
            "day": 1,
            "date": "YYYY-MM-DD",
            "theme": "string - theme for the day",
            "activities": [
                {
                    "time": "09:00 AM",
                    "title": "string",
                    "description": "string - detailed description",
                    "duration": "string - e.g. 2 hours",
                    "place": {
                        "name": "string - actual place name from data",
                        "address": "string",
                        "rating": number,
                        "latitude": number,
                        "longitude": number
                    },
                    "tips": "string - insider tip",
                    "estimated_cost": "string"
                }
            ],
            "meals": [
                {
                    "time": "12:30 PM",
                    "title": "Lunch at [Restaurant Name]",
                    "description": "string",
                    "place": {
                        "name": "string - actual restaurant name from data",
                        "address": "string",
                        "rating": number,
                        "latitude": number,
                        "longitude": number
                    },
                    "estimated_cost": "string"
                }
            ],
            "accommodation_tip": "string"
        }
    ],
    "top_restaurants": [
        {
            "name": "string",
            "address": "string",
            "rating": number,
            "total_ratings": number,
            "latitude": number,
            "longitude": number
        }
    ],
    "top_attractions": [
        {
            "name": "string",
            "address": "string",
            "rating": number,
            "total_ratings": number,
            "latitude": number,
            "longitude": number
        }
    ]
}`

// formatPlacesForPrompt renders a POI list into the numbered human-readable
// block fed to the model. Absent optional fields are omitted, never rendered
// as empty placeholders. Output is deterministic for identical input.
func formatPlacesForPrompt(places []types.PlaceInfo) string {
	if len(places) == 0 {
		return "No data available"
	}

	var lines []string
	for i, place := range places {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s", i+1, place.Name)
		if place.Rating > 0 {
			fmt.Fprintf(&b, " (Rating: %g⭐", place.Rating)
			if place.TotalRatings > 0 {
				fmt.Fprintf(&b, ", %d reviews", place.TotalRatings)
			}
			b.WriteString(")")
		}
		if place.Address != "" {
			fmt.Fprintf(&b, "\n   Address: %s", place.Address)
		}
		if place.PriceLevel != nil {
			level := *place.PriceLevel
			if level < 1 {
				level = 1
			}
			fmt.Fprintf(&b, "\n   Price: %s", strings.Repeat("$", level))
		}
		if len(place.Types) > 0 {
			placeTypes := place.Types
			if len(placeTypes) > 3 {
				placeTypes = placeTypes[:3]
			}
			fmt.Fprintf(&b, "\n   Type: %s", strings.Join(placeTypes, ", "))
		}
		if place.Latitude != nil && place.Longitude != nil {
			fmt.Fprintf(&b, "\n   Coords: %g, %g", *place.Latitude, *place.Longitude)
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}

// buildTripPrompt renders the full human turn: trip parameters, the three
// formatted POI blocks and the output schema. Pure function; identical input
// yields byte-identical output.
func buildTripPrompt(req *types.TripRequest, data *types.DestinationData, totalDays int) string {
	budget := req.Budget
	if budget == "" {
		budget = types.BudgetModerate
	}

	styles := make([]string, 0, len(req.TravelStyle))
	for _, s := range req.TravelStyle {
		styles = append(styles, string(s))
	}
	travelStyle := strings.Join(styles, ", ")
	if travelStyle == "" {
		travelStyle = "cultural"
	}

	interests := strings.Join(req.Interests, ", ")
	if interests == "" {
		interests = "general sightseeing"
	}

	specialRequirements := req.SpecialRequirements
	if specialRequirements == "" {
		specialRequirements = "none"
	}

	return fmt.Sprintf(`Plan a trip with the following details:

**Destination:** %s
**Dates:** %s to %s (%d days)
**Travelers:** %d person(s)
**Budget Level:** %s
**Travel Style:** %s
**Interests:** %s
**Special Requirements:** %s

**REAL DATA FROM GOOGLE PLACES API:**

Top-Rated Restaurants:
%s

Top Tourist Attractions:
%s

Hotels:
%s

---

Generate a complete travel itinerary as JSON with this EXACT structure:
%s

Use the REAL place data provided above. Include 3-5 activities and 2-3 meals per day.
Respond with ONLY the JSON, no markdown formatting or code blocks.`,
		req.Destination,
		req.StartDate,
		req.EndDate,
		totalDays,
		req.Travelers,
		budget,
		travelStyle,
		interests,
		specialRequirements,
		formatPlacesForPrompt(data.Restaurants),
		formatPlacesForPrompt(data.Attractions),
		formatPlacesForPrompt(data.Hotels),
		itinerarySchema,
	)
}
