package response_models

// PlanActivity mirrors the JSON shape the planning model is asked to return.
type PlanActivity struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Notes    string `json:"notes"`
}

type DayPlan struct {
	Day        int            `json:"day"`
	Activities []PlanActivity `json:"activities"`
}

type ItineraryResponse struct {
	TripID     string    `json:"trip_id"`
	RouteNames []string  `json:"route_names"`
	Transit    []string  `json:"transit"`
	MapsURL    string    `json:"maps_url,omitempty"`
	Days       []DayPlan `json:"days"`
}

type ItineraryItemResponse struct {
	DayNumber int    `json:"day_number"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes"`
}
