package models

// Hotel is one bookable stay option. Price is per night.
type Hotel struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Rating    float64  `json:"rating"`
	Stars     int      `json:"stars"`
	Price     Price    `json:"price"`
	Image     string   `json:"image,omitempty"`
	Address   string   `json:"address,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
	Distance  string   `json:"distance,omitempty"`
	DeepLink  string   `json:"deep_link"`
}
