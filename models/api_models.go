// models/api_models.go
package models

// SuggestItineraryRequest is the expected JSON body for the
// /api/itinerary/suggest endpoint. Days and Budget are pointers so the
// handler can tell "absent" from zero and apply the defaults (1 day,
// $100 budget).
type SuggestItineraryRequest struct {
	Location    string   `json:"location"`
	Interests   []string `json:"interests"`
	Days        *int     `json:"days"`
	Budget      *float64 `json:"budget"`
	SuitableFor string   `json:"suitable_for"`
}

// ResponseMetadata is attached to every successful suggestion response.
type ResponseMetadata struct {
	NumActivities    int     `json:"num_activities"`
	ProcessingTimeMs float64 `json:"processing_time_ms"`
}

// SuggestItineraryResponse is the full JSON payload for a successful
// suggestion request.
type SuggestItineraryResponse struct {
	Itinerary []DayPlan        `json:"itinerary"`
	Summary   Summary          `json:"summary"`
	Metadata  ResponseMetadata `json:"metadata"`
}

// DatasetInfo reports catalog load statistics for the admin endpoint.
type DatasetInfo struct {
	Path          string `json:"path"`
	RowsRead      int    `json:"rows_read"`
	RowsDropped   int    `json:"rows_dropped"`
	Activities    int    `json:"activities"`
	Attractions   int    `json:"attractions"`
	Restaurants   int    `json:"restaurants"`
	Uncategorized int    `json:"uncategorized"`
}
