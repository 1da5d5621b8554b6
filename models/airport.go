package models

// Airport is a searchable origin or destination. SkyID and EntityID are the
// upstream identifiers; IATA is the 3-letter display code.
type Airport struct {
	SkyID    string `json:"sky_id"`
	EntityID string `json:"entity_id"`
	Name     string `json:"name"`
	IATA     string `json:"iata"`
	City     string `json:"city"`
	Country  string `json:"country"`
}
