package types

import (
	"fmt"
	"strings"
	"time"
)

// TravelStyle enumerates the supported travel style tags.
type TravelStyle string

const (
	StyleAdventure  TravelStyle = "adventure"
	StyleCultural   TravelStyle = "cultural"
	StyleRelaxation TravelStyle = "relaxation"
	StyleFoodie     TravelStyle = "foodie"
	StyleFamily     TravelStyle = "family"
	StyleRomantic   TravelStyle = "romantic"
	StyleBudget     TravelStyle = "budget"
	StyleLuxury     TravelStyle = "luxury"
)

func (s TravelStyle) Valid() bool {
	switch s {
	case StyleAdventure, StyleCultural, StyleRelaxation, StyleFoodie,
		StyleFamily, StyleRomantic, StyleBudget, StyleLuxury:
		return true
	}
	return false
}

const (
	BudgetLow      = "budget"
	BudgetModerate = "moderate"
	BudgetLuxury   = "luxury"
)

const dateLayout = "2006-01-02"

// TripRequest is the caller's input to itinerary generation.
type TripRequest struct {
	Destination         string        `json:"destination"`
	StartDate           string        `json:"start_date"`
	EndDate             string        `json:"end_date"`
	Travelers           int           `json:"travelers"`
	Budget              string        `json:"budget,omitempty"`
	TravelStyle         []TravelStyle `json:"travel_style,omitempty"`
	Interests           []string      `json:"interests,omitempty"`
	SpecialRequirements string        `json:"special_requirements,omitempty"`
}

// Validate checks the structural invariants of the request. It runs before
// any upstream call so bad input never costs a network round trip.
func (r *TripRequest) Validate() error {
	if l := len(strings.TrimSpace(r.Destination)); l < 2 || l > 200 {
		return fmt.Errorf("%w: destination must be 2-200 characters", ErrValidation)
	}
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return fmt.Errorf("%w: invalid start_date %q: %v", ErrValidation, r.StartDate, err)
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return fmt.Errorf("%w: invalid end_date %q: %v", ErrValidation, r.EndDate, err)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end_date must not be before start_date", ErrValidation)
	}
	if r.Travelers < 1 || r.Travelers > 20 {
		return fmt.Errorf("%w: travelers must be between 1 and 20", ErrValidation)
	}
	if r.Budget != "" && r.Budget != BudgetLow && r.Budget != BudgetModerate && r.Budget != BudgetLuxury {
		return fmt.Errorf("%w: unknown budget level %q", ErrValidation, r.Budget)
	}
	for _, s := range r.TravelStyle {
		if !s.Valid() {
			return fmt.Errorf("%w: unknown travel style %q", ErrValidation, s)
		}
	}
	return nil
}

// TotalDays computes the inclusive day count of the trip, floored at 1 so a
// same-day trip still yields one day. Validate must have succeeded first.
func (r *TripRequest) TotalDays() int {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// Activity is a single itinerary entry. Meals reuse the same shape.
type Activity struct {
	Time          string     `json:"time"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Duration      string     `json:"duration,omitempty"`
	Place         *PlaceInfo `json:"place,omitempty"`
	Tips          string     `json:"tips,omitempty"`
	EstimatedCost string     `json:"estimated_cost,omitempty"`
}

type DayPlan struct {
	Day              int        `json:"day"`
	Date             string     `json:"date"`
	Theme            string     `json:"theme"`
	Activities       []Activity `json:"activities"`
	Meals            []Activity `json:"meals,omitempty"`
	AccommodationTip string     `json:"accommodation_tip,omitempty"`
}

// TripItinerary is the generated travel plan returned to the caller. It owns
// all nested values exclusively.
type TripItinerary struct {
	Destination          string            `json:"destination"`
	Summary              string            `json:"summary"`
	TotalDays            int               `json:"total_days"`
	BestTimeToVisit      string            `json:"best_time_to_visit,omitempty"`
	Currency             string            `json:"currency,omitempty"`
	Language             string            `json:"language,omitempty"`
	TravelTips           []string          `json:"travel_tips,omitempty"`
	PackingList          []string          `json:"packing_list,omitempty"`
	EstimatedTotalBudget string            `json:"estimated_total_budget,omitempty"`
	EmergencyContacts    map[string]string `json:"emergency_contacts,omitempty"`
	Days                 []DayPlan         `json:"days"`
	TopRestaurants       []PlaceInfo       `json:"top_restaurants,omitempty"`
	TopAttractions       []PlaceInfo       `json:"top_attractions,omitempty"`
}

// Validate checks the reconciled itinerary before it is handed back:
// required fields present, day indices sequential from 1, and total_days
// consistent with the day list. Failures are model output defects, not
// caller input problems.
func (it *TripItinerary) Validate() error {
	if it.Destination == "" {
		return fmt.Errorf("%w: missing destination", ErrItineraryInvalid)
	}
	if it.Summary == "" {
		return fmt.Errorf("%w: missing summary", ErrItineraryInvalid)
	}
	if len(it.Days) == 0 {
		return fmt.Errorf("%w: no days", ErrItineraryInvalid)
	}
	if it.TotalDays != len(it.Days) {
		return fmt.Errorf("%w: total_days %d does not match %d day plans", ErrItineraryInvalid, it.TotalDays, len(it.Days))
	}
	for i, day := range it.Days {
		if day.Day != i+1 {
			return fmt.Errorf("%w: day %d has index %d, expected %d", ErrItineraryInvalid, i, day.Day, i+1)
		}
	}
	return nil
}
