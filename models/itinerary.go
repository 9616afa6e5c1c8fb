// models/itinerary.go
package models

// PlannedActivity is the display subset of an ActivityRecord that ends
// up in a day plan. JSON tags match the column names of the catalog so
// the front-end sees the same field names the dataset uses.
type PlannedActivity struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	CostUSD         float64 `json:"cost_usd"`
	Address         string  `json:"address"`
	Notes           string  `json:"notes"`
	DurationHours   float64 `json:"duration_hours"`
	OpeningHours    string  `json:"opening_hours"`
	BestTimeToVisit string  `json:"best_time_to_visit"`
}

// DayPlan is one day's schedule within an itinerary.
type DayPlan struct {
	Day        int               `json:"day"`
	Activities []PlannedActivity `json:"activities"`
}

// Summary aggregates cost and duration across the whole trip.
// TotalDistanceKm is always 0 — there is no real distance model; the
// per-record distance field only feeds scoring.
type Summary struct {
	TotalCostUSD       float64 `json:"total_cost_usd"`
	TotalDistanceKm    float64 `json:"total_distance_km"`
	TotalDurationHours float64 `json:"total_duration_hours"`
}

// ItineraryResult is the engine's full answer for one request.
type ItineraryResult struct {
	Itinerary []DayPlan `json:"itinerary"`
	Summary   Summary   `json:"summary"`
}
