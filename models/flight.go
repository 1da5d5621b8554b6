package models

// Badge is a quality label assigned by the upstream search provider.
// At most one per itinerary; never recomputed locally.
type Badge string

const (
	BadgeFastest  Badge = "fastest"
	BadgeCheapest Badge = "cheapest"
	BadgeBest     Badge = "best"
)

// FlightLeg is a single segment of an itinerary.
type FlightLeg struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	Departure       string `json:"departure"`
	Arrival         string `json:"arrival"`
	DurationMinutes int    `json:"duration_minutes"`
	Airline         string `json:"airline"`
	FlightNumber    string `json:"flight_number,omitempty"`
	Stops           int    `json:"stops"`
}

// FlightItinerary is one bookable flight option. Inbound is present only
// for round trips. Airlines is deduplicated across all legs.
type FlightItinerary struct {
	ID                   string      `json:"id"`
	Price                Price       `json:"price"`
	Outbound             []FlightLeg `json:"outbound"`
	Inbound              []FlightLeg `json:"inbound,omitempty"`
	TotalDurationMinutes int         `json:"total_duration_minutes"`
	Airlines             []string    `json:"airlines"`
	DeepLink             string      `json:"deep_link"`
	Badge                Badge       `json:"badge,omitempty"`
}
