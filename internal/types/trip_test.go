package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTripRequest() TripRequest {
	return TripRequest{
		Destination: "Lisbon",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-03",
		Travelers:   2,
	}
}

func TestTripRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TripRequest)
		wantErr string
	}{
		{"valid", func(r *TripRequest) {}, ""},
		{"destination too short", func(r *TripRequest) { r.Destination = "A" }, "destination"},
		{"destination whitespace only", func(r *TripRequest) { r.Destination = "   " }, "destination"},
		{"destination too long", func(r *TripRequest) { r.Destination = strings.Repeat("x", 201) }, "destination"},
		{"bad start date", func(r *TripRequest) { r.StartDate = "01/09/2026" }, "start_date"},
		{"bad end date", func(r *TripRequest) { r.EndDate = "next week" }, "end_date"},
		{"end before start", func(r *TripRequest) { r.EndDate = "2026-08-30" }, "end_date must not be before"},
		{"zero travelers", func(r *TripRequest) { r.Travelers = 0 }, "travelers"},
		{"too many travelers", func(r *TripRequest) { r.Travelers = 21 }, "travelers"},
		{"unknown budget", func(r *TripRequest) { r.Budget = "extravagant" }, "budget"},
		{"unknown travel style", func(r *TripRequest) { r.TravelStyle = []TravelStyle{"spelunking"} }, "travel style"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTripRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTripRequest_ValidateAcceptsAllBudgetsAndStyles(t *testing.T) {
	for _, budget := range []string{"", BudgetLow, BudgetModerate, BudgetLuxury} {
		req := validTripRequest()
		req.Budget = budget
		assert.NoError(t, req.Validate(), "budget %q", budget)
	}

	req := validTripRequest()
	req.TravelStyle = []TravelStyle{
		StyleAdventure, StyleCultural, StyleRelaxation, StyleFoodie,
		StyleFamily, StyleRomantic, StyleBudget, StyleLuxury,
	}
	assert.NoError(t, req.Validate())
}

func TestTripRequest_TotalDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2026-09-01", "2026-09-01", 1},
		{"inclusive span", "2026-01-01", "2026-01-05", 5},
		{"two days", "2026-09-01", "2026-09-02", 2},
		{"across month boundary", "2026-08-30", "2026-09-02", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTripRequest()
			req.StartDate = tt.start
			req.EndDate = tt.end
			require.NoError(t, req.Validate())
			assert.Equal(t, tt.want, req.TotalDays())
		})
	}
}

func TestTripItinerary_Validate(t *testing.T) {
	valid := func() TripItinerary {
		return TripItinerary{
			Destination: "Lisbon",
			Summary:     "A trip.",
			TotalDays:   2,
			Days: []DayPlan{
				{Day: 1, Date: "2026-09-01", Theme: "Arrival"},
				{Day: 2, Date: "2026-09-02", Theme: "Museums"},
			},
		}
	}

	assert.NoError(t, func() error { it := valid(); return it.Validate() }())

	it := valid()
	it.Destination = ""
	assert.ErrorIs(t, it.Validate(), ErrItineraryInvalid)

	it = valid()
	it.Summary = ""
	assert.ErrorIs(t, it.Validate(), ErrItineraryInvalid)

	it = valid()
	it.Days = nil
	assert.ErrorIs(t, it.Validate(), ErrItineraryInvalid)

	it = valid()
	it.TotalDays = 3
	assert.ErrorIs(t, it.Validate(), ErrItineraryInvalid)

	it = valid()
	it.Days[1].Day = 5
	assert.ErrorIs(t, it.Validate(), ErrItineraryInvalid)

	// Construction failures carry their own sentinel, not the parse one.
	it = valid()
	it.Summary = ""
	assert.NotErrorIs(t, it.Validate(), ErrModelOutput)
}
